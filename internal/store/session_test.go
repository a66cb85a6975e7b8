package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/speedscore/roundtracker/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRound(course string) internal.Round {
	return internal.Round{
		Date:    "2026-09-01",
		Course:  course,
		Type:    internal.RoundPractice,
		Holes:   18,
		Strokes: 80,
		Minutes: 35,
		Seconds: "20",
		SGS:     "115:20",
	}
}

func openTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewFileRepository(path, internal.NopLogger{})
	require.NoError(t, err)
	s, err := Open(context.Background(), repo, "test@speedscore.org", internal.NopLogger{})
	require.NoError(t, err)
	return s, path
}

func TestAppendAssignsMonotonicNumbers(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		num, err := s.Append(ctx, testRound("Course"))
		require.NoError(t, err)
		assert.Equal(t, i, num)
	}
	rounds := s.Rounds()
	require.Len(t, rounds, 5)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.RoundNum)
	}
	assert.Equal(t, 5, s.RoundCount())
}

func TestRemoveNeverReusesNumbers(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	_, err := s.Append(ctx, testRound("A"))
	require.NoError(t, err)
	_, err = s.Append(ctx, testRound("B"))
	require.NoError(t, err)

	idx, err := s.FindIndexByRoundNum(2)
	require.NoError(t, err)
	require.NoError(t, s.RemoveAt(ctx, idx))

	// Counter stays at 2, so the next round gets 3.
	assert.Equal(t, 2, s.RoundCount())
	num, err := s.Append(ctx, testRound("C"))
	require.NoError(t, err)
	assert.Equal(t, 3, num)

	// Round 1 kept its number.
	rounds := s.Rounds()
	require.Len(t, rounds, 2)
	assert.Equal(t, 1, rounds[0].RoundNum)
	assert.Equal(t, 3, rounds[1].RoundNum)
}

func TestFindIndexByRoundNum(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	_, err := s.Append(ctx, testRound("A"))
	require.NoError(t, err)

	idx, err := s.FindIndexByRoundNum(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = s.FindIndexByRoundNum(42)
	assert.ErrorIs(t, err, ErrRoundNotFound)
}

func TestMutationsPersistSynchronously(t *testing.T) {
	s, path := openTestSession(t)
	ctx := context.Background()

	_, err := s.Append(ctx, testRound("Pebble Beach"))
	require.NoError(t, err)

	// The durable copy is already on disk when Append returns.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var accounts map[string]*internal.UserData
	require.NoError(t, json.Unmarshal(raw, &accounts))
	data := accounts["test@speedscore.org"]
	require.NotNil(t, data)
	require.Len(t, data.Rounds, 1)
	assert.Equal(t, "Pebble Beach", data.Rounds[0].Course)
	assert.Equal(t, "115:20", data.Rounds[0].SGS)
	assert.Equal(t, 1, data.RoundCount)
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	ctx := context.Background()

	repo, err := NewFileRepository(path, internal.NopLogger{})
	require.NoError(t, err)
	s, err := Open(ctx, repo, "test@speedscore.org", internal.NopLogger{})
	require.NoError(t, err)
	_, err = s.Append(ctx, testRound("A"))
	require.NoError(t, err)
	s.Close()

	// Fresh repository instance reads the same file.
	repo2, err := NewFileRepository(path, internal.NopLogger{})
	require.NoError(t, err)
	s2, err := Open(ctx, repo2, "test@speedscore.org", internal.NopLogger{})
	require.NoError(t, err)
	assert.Equal(t, 1, s2.RoundCount())
	require.Len(t, s2.Rounds(), 1)
	assert.Equal(t, "A", s2.Rounds()[0].Course)
}

func TestUpdatePreservesRoundNum(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	_, err := s.Append(ctx, testRound("A"))
	require.NoError(t, err)
	_, err = s.Append(ctx, testRound("B"))
	require.NoError(t, err)

	edited := testRound("B Revised")
	require.NoError(t, s.Update(ctx, 2, edited))

	rounds := s.Rounds()
	assert.Equal(t, 2, rounds[1].RoundNum)
	assert.Equal(t, "B Revised", rounds[1].Course)
	assert.Equal(t, 2, s.RoundCount())
}

func TestOpenUnknownAccountStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewFileRepository(path, internal.NopLogger{})
	require.NoError(t, err)
	s, err := Open(context.Background(), repo, "new@speedscore.org", internal.NopLogger{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.RoundCount())
	assert.Empty(t, s.Rounds())
}
