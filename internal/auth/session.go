package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Session is the identity an identity provider vouches for.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// SessionResolver turns request headers into a session. It returns (nil, nil)
// when the request carries no valid session and an error only when the
// provider itself failed.
type SessionResolver interface {
	Resolve(ctx context.Context, header http.Header) (*Session, error)
}
