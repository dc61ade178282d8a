package assistant

import (
	"strings"

	"inclusivehub/models"
)

// Gazetteer resolves a free-text place mention to coordinates. Implementations
// return false when the mention is unknown; substituting a regional default is
// the caller's responsibility.
type Gazetteer interface {
	Lookup(mention string) (models.GeoPoint, bool)
}

// DefaultRegion is the last-resort coordinate when neither GPS nor the
// gazetteer can place the user (Chennai city centroid).
var DefaultRegion = models.GeoPoint{Lat: 13.0827, Lng: 80.2707}

type gazetteerEntry struct {
	name  string
	coord models.GeoPoint
}

// staticGazetteer holds a small fixed table of known place names. Matching is
// lower-cased substring containment, first entry wins; no fuzzy matching.
type staticGazetteer struct {
	entries []gazetteerEntry
}

// NewStaticGazetteer returns the built-in gazetteer for the Chennai region.
func NewStaticGazetteer() Gazetteer {
	return &staticGazetteer{entries: []gazetteerEntry{
		{"vel tech avadi college", models.GeoPoint{Lat: 13.1106, Lng: 80.1026}},
		{"avadi", models.GeoPoint{Lat: 13.1106, Lng: 80.1026}},
		{"chennai", models.GeoPoint{Lat: 13.0827, Lng: 80.2707}},
		{"anna university", models.GeoPoint{Lat: 13.0067, Lng: 80.2206}},
		{"iit madras", models.GeoPoint{Lat: 12.9915, Lng: 80.2337}},
		{"tambaram", models.GeoPoint{Lat: 12.9249, Lng: 80.1000}},
		{"chrompet", models.GeoPoint{Lat: 12.9516, Lng: 80.1462}},
	}}
}

func (g *staticGazetteer) Lookup(mention string) (models.GeoPoint, bool) {
	lower := strings.ToLower(mention)
	for _, e := range g.entries {
		if strings.Contains(lower, e.name) {
			return e.coord, true
		}
	}
	return models.GeoPoint{}, false
}
