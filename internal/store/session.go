package store

import (
	"context"
	"errors"

	"github.com/speedscore/roundtracker/internal"
)

// Session owns one account's UserData for the lifetime of a login. All
// round mutations go through it; nothing else touches Rounds or
// RoundCount. Every mutation rewrites the whole object in the repository
// before returning, so the durable copy never trails the in-memory one.
// Single-writer: the surrounding application serializes calls.
type Session struct {
	email  string
	data   *internal.UserData
	repo   UserDataRepository
	logger internal.Logger
}

// Open loads the account's UserData and takes ownership of it. An account
// with no stored data starts from an empty container.
func Open(ctx context.Context, repo UserDataRepository, email string, logger internal.Logger) (*Session, error) {
	data, err := repo.Load(ctx, email)
	if errors.Is(err, ErrAccountNotFound) {
		data = internal.NewUserData(email)
	} else if err != nil {
		return nil, err
	}
	return &Session{email: email, data: data, repo: repo, logger: logger}, nil
}

func (s *Session) Email() string { return s.email }

// RoundCount is the number of rounds ever created, not the number
// currently stored; it is never decremented on delete.
func (s *Session) RoundCount() int { return s.data.RoundCount }

// Rounds returns the round history in creation order.
func (s *Session) Rounds() []internal.Round {
	return append([]internal.Round(nil), s.data.Rounds...)
}

// Append assigns the next round number, inserts the round at the end of
// the history, and synchronously persists the whole UserData object. On a
// write failure the in-memory state is rolled back and the assigned
// number is not consumed.
func (s *Session) Append(ctx context.Context, r internal.Round) (int, error) {
	r.RoundNum = s.data.RoundCount + 1
	s.data.RoundCount++
	s.data.Rounds = append(s.data.Rounds, r)
	if err := s.repo.Save(ctx, s.email, s.data); err != nil {
		s.data.Rounds = s.data.Rounds[:len(s.data.Rounds)-1]
		s.data.RoundCount--
		s.logger.Errorf("store: failed to persist round for %s: %v", s.email, err)
		return 0, err
	}
	s.logger.Infof("store: logged round %d for %s", r.RoundNum, s.email)
	return r.RoundNum, nil
}

// FindIndexByRoundNum locates a round in the history by its number.
func (s *Session) FindIndexByRoundNum(num int) (int, error) {
	for i, r := range s.data.Rounds {
		if r.RoundNum == num {
			return i, nil
		}
	}
	return 0, ErrRoundNotFound
}

// RemoveAt deletes the round at the given index and persists. Remaining
// rounds keep their numbers and the counter never goes back down.
func (s *Session) RemoveAt(ctx context.Context, idx int) error {
	if idx < 0 || idx >= len(s.data.Rounds) {
		return ErrRoundNotFound
	}
	prev := s.data.Rounds
	next := make([]internal.Round, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.data.Rounds = next
	if err := s.repo.Save(ctx, s.email, s.data); err != nil {
		s.data.Rounds = prev
		s.logger.Errorf("store: failed to persist removal for %s: %v", s.email, err)
		return err
	}
	return nil
}

// Update replaces the round identified by num, preserving its number and
// position in the history, and persists.
func (s *Session) Update(ctx context.Context, num int, r internal.Round) error {
	idx, err := s.FindIndexByRoundNum(num)
	if err != nil {
		return err
	}
	prev := s.data.Rounds[idx]
	r.RoundNum = num
	s.data.Rounds[idx] = r
	if err := s.repo.Save(ctx, s.email, s.data); err != nil {
		s.data.Rounds[idx] = prev
		s.logger.Errorf("store: failed to persist update for %s: %v", s.email, err)
		return err
	}
	return nil
}

// Close discards the in-memory copy. The durable copy persists.
func (s *Session) Close() {
	s.data = nil
}
