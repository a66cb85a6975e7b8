package table

import (
	"testing"

	"github.com/speedscore/roundtracker/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func round(num int, course string) internal.Round {
	return internal.Round{
		RoundNum: num,
		Date:     "2026-09-01",
		Course:   course,
		Strokes:  80,
		Minutes:  35,
		Seconds:  "20",
		SGS:      "115:20",
	}
}

func TestNewRendererShowsPlaceholder(t *testing.T) {
	rows := NewMemoryRows()
	NewRenderer(rows)
	require.Equal(t, 1, rows.Len())
	assert.Equal(t, PlaceholderID, rows.At(0).ID)
}

func TestAddRowReplacesPlaceholderAndInsertsOnTop(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)

	r.AddRow(round(1, "First"))
	require.Equal(t, 1, rows.Len())
	assert.Equal(t, "r-1", rows.At(0).ID)

	r.AddRow(round(2, "Second"))
	require.Equal(t, 2, rows.Len())
	// Most recently logged round is the top row.
	assert.Equal(t, "r-2", rows.At(0).ID)
	assert.Equal(t, "r-1", rows.At(1).ID)
}

func TestRowProjection(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.AddRow(round(7, "Pebble Beach"))

	row := rows.At(0)
	assert.Equal(t, "r-7", row.ID)
	assert.Equal(t, "2026-09-01", row.Date)
	assert.Equal(t, "Pebble Beach", row.Course)
	assert.Equal(t, "115:20 (80 in 35:20)", row.Score)
	assert.Equal(t, 7, row.EditRef)
	assert.Equal(t, 7, row.DeleteRef)
}

func TestScoreCellPadsSeconds(t *testing.T) {
	r := round(1, "X")
	r.Seconds = "5"
	r.SGS = "115:05"
	assert.Equal(t, "115:05 (80 in 35:05)", ScoreCell(r))
}

func TestAddRowIdempotentProjection(t *testing.T) {
	a := NewRenderer(NewMemoryRows())
	b := NewRenderer(NewMemoryRows())
	a.AddRow(round(1, "Same"))
	b.AddRow(round(1, "Same"))
	assert.Equal(t, a.rows.At(0), b.rows.At(0))
}

func TestRemoveRow(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.AddRow(round(1, "A"))
	r.AddRow(round(2, "B"))

	require.NoError(t, r.RemoveRow(1))
	require.Equal(t, 1, rows.Len())
	assert.Equal(t, "r-2", rows.At(0).ID)

	assert.ErrorIs(t, r.RemoveRow(99), ErrRowNotFound)
}

func TestRemoveLastRowRestoresPlaceholder(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.AddRow(round(1, "A"))
	require.NoError(t, r.RemoveRow(1))
	require.Equal(t, 1, rows.Len())
	assert.Equal(t, PlaceholderID, rows.At(0).ID)
}

func TestUpdateRowRewritesInPlace(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.AddRow(round(1, "A"))
	r.AddRow(round(2, "B"))

	edited := round(1, "A Revised")
	require.NoError(t, r.UpdateRow(edited))
	assert.Equal(t, "A Revised", rows.At(1).Course)
	assert.Equal(t, "r-1", rows.At(1).ID)
	// Position unchanged.
	assert.Equal(t, "r-2", rows.At(0).ID)
}

func TestRenderNewestFirst(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.Render([]internal.Round{round(1, "A"), round(2, "B"), round(3, "C")})

	require.Equal(t, 3, rows.Len())
	assert.Equal(t, "r-3", rows.At(0).ID)
	assert.Equal(t, "r-2", rows.At(1).ID)
	assert.Equal(t, "r-1", rows.At(2).ID)
}

func TestRenderEmptyShowsPlaceholder(t *testing.T) {
	rows := NewMemoryRows()
	r := NewRenderer(rows)
	r.AddRow(round(1, "A"))
	r.Render(nil)
	require.Equal(t, 1, rows.Len())
	assert.Equal(t, PlaceholderID, rows.At(0).ID)
}
