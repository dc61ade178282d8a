package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// mapGeoStore is an in-memory geoStore for tests.
type mapGeoStore struct {
	entries map[string]*GeoLocation
}

func newMapGeoStore() *mapGeoStore {
	return &mapGeoStore{entries: make(map[string]*GeoLocation)}
}

func (s *mapGeoStore) Get(ctx context.Context, ip string) (*GeoLocation, bool) {
	geo, ok := s.entries[ip]
	return geo, ok
}

func (s *mapGeoStore) Set(ctx context.Context, ip string, geo *GeoLocation) {
	s.entries[ip] = geo
}

func newTestResolver(store geoStore, baseURL string) *GeoResolver {
	return &GeoResolver{
		store:   store,
		http:    &http.Client{Timeout: 2 * time.Second},
		baseURL: baseURL,
	}
}

func TestResolvePrivateIP(t *testing.T) {
	store := newMapGeoStore()
	resolver := newTestResolver(store, "http://unreachable.invalid")

	geo := resolver.Resolve(context.Background(), "192.168.1.10", zap.NewNop())
	if geo.Country != "Unknown" {
		t.Errorf("expected Unknown country for private IP, got %q", geo.Country)
	}
	if _, ok := store.entries["192.168.1.10"]; !ok {
		t.Error("expected private IP result to be cached")
	}
}

func TestResolveUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"city":"Chennai","country_name":"India","latitude":13.0827,"longitude":80.2707}`))
	}))
	defer srv.Close()

	store := newMapGeoStore()
	store.Set(context.Background(), "8.8.8.8", &GeoLocation{IP: "8.8.8.8", City: "Cached", Country: "India"})
	resolver := newTestResolver(store, srv.URL)

	geo := resolver.Resolve(context.Background(), "8.8.8.8", zap.NewNop())
	if geo.City != "Cached" {
		t.Errorf("expected cached entry, got city %q", geo.City)
	}
	if calls != 0 {
		t.Errorf("expected no API call on cache hit, got %d", calls)
	}
}

func TestResolveLookupAndCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city":"Chennai","region":"Tamil Nadu","country_name":"India","latitude":13.0827,"longitude":80.2707}`))
	}))
	defer srv.Close()

	store := newMapGeoStore()
	resolver := newTestResolver(store, srv.URL)

	geo := resolver.Resolve(context.Background(), "1.2.3.4", zap.NewNop())
	if geo.City != "Chennai" || geo.Country != "India" {
		t.Errorf("unexpected geolocation: %+v", geo)
	}
	if cached, ok := store.entries["1.2.3.4"]; !ok || cached.City != "Chennai" {
		t.Error("expected successful lookup to be cached")
	}
}

func TestResolveFailureNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	store := newMapGeoStore()
	resolver := newTestResolver(store, srv.URL)

	geo := resolver.Resolve(context.Background(), "1.2.3.4", zap.NewNop())
	if geo.Country != "Unknown" {
		t.Errorf("expected Unknown country on lookup failure, got %q", geo.Country)
	}
	if _, ok := store.entries["1.2.3.4"]; ok {
		t.Error("expected failed lookup not to be cached")
	}
}

func TestGeolocationMiddlewareAttachesGeoAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	store := newMapGeoStore()
	store.Set(context.Background(), "203.0.113.7", &GeoLocation{IP: "203.0.113.7", City: "Chennai", Country: "India"})
	resolver := newTestResolver(store, "http://unreachable.invalid")

	router := gin.New()
	router.Use(GeolocationMiddleware(resolver))
	router.GET("/ping", func(c *gin.Context) {
		geo := GeoFromContext(c)
		if geo == nil {
			t.Fatal("expected geolocation in context")
		}
		if geo.City != "Chennai" {
			t.Errorf("expected resolved city, got %q", geo.City)
		}
		if l, exists := c.Get("logger"); exists {
			l.(*zap.Logger).Info("handled")
		} else {
			t.Error("expected request-scoped logger in context")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entries := logs.FilterMessage("handled").All()
	if len(entries) != 1 {
		t.Fatalf("expected one handler log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["clientCity"] != "Chennai" || fields["clientCountry"] != "India" {
		t.Errorf("expected client region fields on handler logs, got %v", fields)
	}
}
