package models

import "time"

// Place is an entry in the accessible-place directory.
type Place struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"` // "hospital", "restaurant", "park", ...
	Address     string    `bson:"address" json:"address"`
	Location    *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Features    []string  `bson:"features" json:"features"` // accessibility features
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Verified    bool      `bson:"verified" json:"verified"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PlaceFilter narrows directory listings.
type PlaceFilter struct {
	Type     string
	Features []string
}
