package adminauth

import "context"

type contextKey string

const identityKey contextKey = "admin_identity"

type Identity struct {
	AdminID int64
	SID     string
	Email   string
	Role    string
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
