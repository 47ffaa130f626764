package contracts

import "context"

// TokenProvider supplies the admin bearer credential. A missing token is a
// normal state reported through the boolean, not an error.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, bool)
}

type TokenInspector interface {
	IsExpired(token string) bool
}
