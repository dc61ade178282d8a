package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLimiterKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", "203.0.113.7, 10.0.0.1", "", "10.0.0.2:1234", "203.0.113.7"},
		{"real ip header", "", "203.0.113.9", "10.0.0.2:1234", "203.0.113.9"},
		{"socket address", "", "", "198.51.100.4:5678", "198.51.100.4"},
		{"socket address without port", "", "", "198.51.100.4", "198.51.100.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				c.Request.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tc.realIP)
			}
			if got := limiterKey(c); got != tc.want {
				t.Errorf("limiterKey() = %q, want %q", got, tc.want)
			}
		})
	}
}
