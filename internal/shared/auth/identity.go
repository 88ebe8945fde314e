package auth

import (
	"context"
	"errors"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// ErrUnresolved is returned when a token maps to no known identity.
var ErrUnresolved = errors.New("no identity resolved")

// Resolver turns a bearer token into an Identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// Chain tries each resolver in order and returns the first identity found.
// Generation endpoints sit behind one chain: hosted-provider tokens are
// tried first, then locally issued session tokens.
type Chain []Resolver

func (ch Chain) Resolve(ctx context.Context, token string) (Identity, error) {
	for _, r := range ch {
		if r == nil {
			continue
		}
		id, err := r.Resolve(ctx, token)
		if err == nil {
			return id, nil
		}
	}
	return Identity{}, ErrUnresolved
}
