package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/naijatax/paye-calculator/internal/requestctx"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen, "expected request id in context")
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		user   string
		tier   string
		expect requestctx.Identity
	}{
		{"Anonymous", "", "", requestctx.Identity{}},
		{"Free tier", "u1", "free", requestctx.Identity{UserID: "u1"}},
		{"Pro tier", " u2 ", "PRO", requestctx.Identity{UserID: "u2", IsPro: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got requestctx.Identity
			handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = requestctx.GetIdentity(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != "" {
				req.Header.Set(UserIDHeader, tt.user)
			}
			if tt.tier != "" {
				req.Header.Set(TierHeader, tt.tier)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	log, hook := test.NewNullLogger()
	handler := RequestID(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/v1/tax", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/v1/tax", entry.Data["path"])
	assert.NotEmpty(t, entry.Data["requestId"])
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := Identity(RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	send := func(user, ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5000"
		if user != "" {
			req.Header.Set(UserIDHeader, user)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("u1", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("u1", "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("u1", "10.0.0.3"), "burst is shared across IPs for one user")

	assert.Equal(t, http.StatusOK, send("u2", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("", "10.0.0.9"))
}

func TestRateLimitDisabled(t *testing.T) {
	handler := RateLimit(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name    string
		remote  string
		xff     string
		trusted []netip.Prefix
		want    string
	}{
		{"Direct peer", "192.0.2.7:1234", "", nil, "192.0.2.7"},
		{"Forwarded header ignored without trusted proxies", "192.0.2.7:1234", "203.0.113.5", nil, "192.0.2.7"},
		{"Forwarded header ignored from untrusted peer", "192.0.2.7:1234", "203.0.113.5", proxies, "192.0.2.7"},
		{"Trusted proxy", "10.1.2.3:443", "203.0.113.5", proxies, "203.0.113.5"},
		{"Spoofed leftmost hop skipped", "10.1.2.3:443", "1.2.3.4, 203.0.113.5, 10.9.9.9", proxies, "203.0.113.5"},
		{"Trusted proxy without header", "10.1.2.3:443", "", proxies, "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trusted))
		})
	}
}

func TestRateLimitIgnoresRotatingForwardedFor(t *testing.T) {
	handler := Identity(RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	codes := make([]int, 0, 3)
	for _, fwd := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.4:5000"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestKeyedRateLimiterEvictsIdleCallers(t *testing.T) {
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	k := NewKeyedRateLimiter(1, 1, time.Minute)
	k.now = func() time.Time { return clock }

	for i := 0; i < 100; i++ {
		k.Limiter("ip:" + strconv.Itoa(i))
	}
	assert.Equal(t, 100, k.Len())

	clock = clock.Add(30 * time.Second)
	k.Limiter("ip:0")
	assert.Equal(t, 100, k.Len(), "no sweep before the TTL elapses")

	clock = clock.Add(45 * time.Second)
	k.Limiter("ip:new")
	assert.Equal(t, 2, k.Len(), "only the recently seen and the new caller remain")
}
