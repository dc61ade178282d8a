// File: middleware/geolocation.go
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GeoLocation represents the approximate geolocation information for an IP.
// It is advisory context only: the assistant pipeline always prefers the
// device GPS coordinate supplied in the request body.
type GeoLocation struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// geoStore caches resolved geolocations so lookups survive restarts and are
// shared across instances.
type geoStore interface {
	Get(ctx context.Context, ip string) (*GeoLocation, bool)
	Set(ctx context.Context, ip string, geo *GeoLocation)
}

const (
	geoCachePrefix = "geo:"
	geoCacheTTL    = 24 * time.Hour
)

// redisGeoStore backs geoStore with the shared Redis cache.
type redisGeoStore struct {
	client *redis.Client
}

func (s redisGeoStore) Get(ctx context.Context, ip string) (*GeoLocation, bool) {
	raw, err := s.client.Get(ctx, geoCachePrefix+ip).Result()
	if err != nil {
		return nil, false
	}
	var geo GeoLocation
	if err := json.Unmarshal([]byte(raw), &geo); err != nil {
		return nil, false
	}
	return &geo, true
}

func (s redisGeoStore) Set(ctx context.Context, ip string, geo *GeoLocation) {
	raw, err := json.Marshal(geo)
	if err != nil {
		return
	}
	s.client.Set(ctx, geoCachePrefix+ip, raw, geoCacheTTL)
}

// GeoResolver resolves client IPs to approximate geolocations via ipapi.co,
// caching results in Redis.
type GeoResolver struct {
	store   geoStore
	http    *http.Client
	baseURL string
}

// NewGeoResolver creates a resolver backed by the given Redis cache client.
func NewGeoResolver(cache *redis.Client) *GeoResolver {
	return &GeoResolver{
		store:   redisGeoStore{client: cache},
		http:    &http.Client{Timeout: 5 * time.Second},
		baseURL: "https://ipapi.co",
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Resolve returns the geolocation for the IP, consulting the cache first.
// Private IPs and lookup failures resolve to an "Unknown" placeholder;
// failures are not cached so a later request can retry.
func (r *GeoResolver) Resolve(ctx context.Context, ip string, logger *zap.Logger) *GeoLocation {
	if geo, ok := r.store.Get(ctx, ip); ok {
		return geo
	}

	if isPrivateIP(ip) {
		geo := &GeoLocation{IP: ip, Country: "Unknown"}
		r.store.Set(ctx, ip, geo)
		return geo
	}

	unknown := &GeoLocation{IP: ip, Country: "Unknown"}

	url := fmt.Sprintf("%s/%s/json/", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Error("Failed to build geolocation request", zap.String("ip", ip), zap.Error(err))
		return unknown
	}
	resp, err := r.http.Do(req)
	if err != nil {
		logger.Error("Failed to query external geolocation API", zap.String("ip", ip), zap.Error(err))
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("External geolocation API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return unknown
	}

	var geo GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		logger.Error("Failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return unknown
	}

	if geo.Country == "" {
		geo.Country = "Unknown"
	}

	r.store.Set(ctx, ip, &geo)
	return &geo
}

// GeoFromContext returns the geolocation the middleware attached to the
// request, or nil when the middleware is not installed.
func GeoFromContext(c *gin.Context) *GeoLocation {
	if v, exists := c.Get("geoLocation"); exists {
		if geo, ok := v.(*GeoLocation); ok {
			return geo
		}
	}
	return nil
}

// GeolocationMiddleware resolves the client's approximate geolocation and
// attaches it to the request, along with a request-scoped logger carrying the
// client region so every handler log line is tagged with it.
func GeolocationMiddleware(resolver *GeoResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		geo := &GeoLocation{Country: "Unknown"}
		if clientIP := c.ClientIP(); clientIP != "" {
			geo = resolver.Resolve(c.Request.Context(), clientIP, logger)
		}

		c.Set("geoLocation", geo)
		c.Set("logger", logger.With(
			zap.String("clientCity", geo.City),
			zap.String("clientCountry", geo.Country),
		))
		c.Next()
	}
}
