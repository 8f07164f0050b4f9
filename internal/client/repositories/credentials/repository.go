// Package credentials persists the client's bearer credential between runs.
//
// The store holds at most one credential: every Save overwrites the
// previous one, and Clear removes it. Callers treat the token as opaque.
package credentials

import "context"

type Repository interface {
	// Load returns the stored token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	// Save stores token, replacing any previous one.
	Save(ctx context.Context, token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
