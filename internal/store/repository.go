package store

import (
	"context"
	"errors"

	"github.com/speedscore/roundtracker/internal"
)

var (
	ErrAccountNotFound = errors.New("store: account not found")
	ErrRoundNotFound   = errors.New("store: round not found")
)

// UserDataRepository is the durable-storage contract: one UserData object
// per account, keyed by email, rewritten whole on every save. No partial
// or delta updates.
type UserDataRepository interface {
	Load(ctx context.Context, email string) (*internal.UserData, error)
	Save(ctx context.Context, email string, data *internal.UserData) error
}
