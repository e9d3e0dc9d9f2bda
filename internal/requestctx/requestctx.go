package requestctx

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	identityKey  ctxKey = "identity"
)

// Identity is the caller as seen by the payroll features: a user id and a subscription tier
type Identity struct {
	UserID string
	IsPro  bool
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) Identity {
	if value, ok := ctx.Value(identityKey).(Identity); ok {
		return value
	}
	return Identity{}
}
