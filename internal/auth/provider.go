package auth

import "context"

// Provider resolves a bearer token to the account email the round
// tracker keys its storage by. Account creation and credential checks
// belong to the account service; this side only needs the mapping.
type Provider interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}
