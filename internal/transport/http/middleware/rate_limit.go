package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/naijatax/paye-calculator/internal/requestctx"
	"github.com/naijatax/paye-calculator/internal/transport/http/api"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter hands out one token bucket per caller key and forgets
// callers that stay idle longer than the idle TTL
type KeyedRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	r         rate.Limit // requests per second
	b         int        // burst
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int, idleTTL time.Duration) *KeyedRateLimiter {
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (k *KeyedRateLimiter) Limiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len reports how many callers are currently tracked
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedRateLimiter) sweep(now time.Time) {
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) >= k.idleTTL {
			delete(k.entries, key)
		}
	}
	k.lastSweep = now
}

type rateLimitOptions struct {
	trusted []netip.Prefix
	idleTTL time.Duration
}

type RateLimitOption func(*rateLimitOptions)

// WithTrustedProxies makes X-Forwarded-For count only when the peer is one of these networks
func WithTrustedProxies(prefixes ...netip.Prefix) RateLimitOption {
	return func(o *rateLimitOptions) { o.trusted = append(o.trusted, prefixes...) }
}

// WithIdleTTL sets how long an idle caller's bucket is kept
func WithIdleTTL(d time.Duration) RateLimitOption {
	return func(o *rateLimitOptions) { o.idleTTL = d }
}

// RateLimit throttles each caller, keyed by user id when known and client IP otherwise.
// Must run after Identity. A non-positive limit disables throttling.
func RateLimit(r rate.Limit, b int, opts ...RateLimitOption) func(http.Handler) http.Handler {
	var o rateLimitOptions
	for _, opt := range opts {
		opt(&o)
	}
	limiter := NewKeyedRateLimiter(r, b, o.idleTTL)
	return func(next http.Handler) http.Handler {
		if r <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.Limiter(callerKey(req, o.trusted)).Allow() {
				w.Header().Set("Retry-After", "1")
				api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(req.Context()))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func callerKey(r *http.Request, trusted []netip.Prefix) string {
	if id := requestctx.GetIdentity(r.Context()); id.UserID != "" {
		return "user:" + id.UserID
	}
	return "ip:" + clientIP(r, trusted)
}

// clientIP returns the peer address, or the nearest untrusted hop in
// X-Forwarded-For when the peer itself is a trusted proxy
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(peer); err == nil && host != "" {
		peer = host
	}
	if !isTrusted(peer, trusted) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !isTrusted(hop, trusted) {
			return hop
		}
	}
	return peer
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
