package access

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from the session.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the caller's identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller's identity, if the request has one.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	if !ok || id == nil || id.UserID == uuid.Nil {
		return nil, false
	}
	return id, true
}
