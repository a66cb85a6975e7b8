package auth

import (
	"context"
	"errors"

	"github.com/speedscore/roundtracker/internal"
)

// LocalProvider accepts a single configured token and resolves it to a
// configured email. Development and test use only.
type LocalProvider struct {
	token  string
	email  string
	logger internal.Logger
}

func NewLocalProvider(token, email string, logger internal.Logger) *LocalProvider {
	return &LocalProvider{token: token, email: email, logger: logger}
}

func (p *LocalProvider) ResolveToken(ctx context.Context, token string) (string, error) {
	if token == p.token {
		return p.email, nil
	}
	p.logger.Warnf("auth: invalid token")
	return "", errors.New("invalid token")
}

var _ Provider = (*LocalProvider)(nil)
