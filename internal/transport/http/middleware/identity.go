package middleware

import (
	"net/http"
	"strings"

	"github.com/naijatax/paye-calculator/internal/requestctx"
)

const (
	UserIDHeader = "X-User-ID"
	TierHeader   = "X-Subscription-Tier"
)

// Identity reads the caller identity set by the upstream auth gateway.
// Authentication itself happens before requests reach this service.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestctx.Identity{
			UserID: strings.TrimSpace(r.Header.Get(UserIDHeader)),
			IsPro:  strings.EqualFold(strings.TrimSpace(r.Header.Get(TierHeader)), "pro"),
		}
		next.ServeHTTP(w, r.WithContext(requestctx.WithIdentity(r.Context(), id)))
	})
}
