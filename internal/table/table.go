// Package table projects the round history into the rounds table. The
// table itself is an external collaborator exposed as an ordered list of
// rows; the renderer only decides what the rows contain and where they go.
package table

import (
	"errors"
	"fmt"

	"github.com/speedscore/roundtracker/internal"
	"github.com/speedscore/roundtracker/internal/score"
)

var ErrRowNotFound = errors.New("table: row not found")

// PlaceholderID marks the "no rounds logged" row shown in an empty table.
const PlaceholderID = "empty"

// Row is one rendered table row. ID is "r-<roundNum>" so edit and delete
// actions can find the row later. EditRef and DeleteRef carry the round
// number the two action controls reference.
type Row struct {
	ID        string
	Date      string
	Course    string
	Score     string
	EditRef   int
	DeleteRef int
}

// RowList is the ordered collaborator the renderer draws into.
type RowList interface {
	InsertAt(pos int, row Row)
	DeleteAt(pos int)
	Len() int
	At(pos int) Row
}

// RowID derives the row identifier for a round number.
func RowID(roundNum int) string { return fmt.Sprintf("r-%d", roundNum) }

// ScoreCell formats the score column: "SGS (strokes in minutes:seconds)".
func ScoreCell(r internal.Round) string {
	return fmt.Sprintf("%s (%d in %d:%s)", r.SGS, r.Strokes, r.Minutes, score.PadSeconds(r.Seconds))
}

// Renderer keeps the visible table consistent with the round history:
// most recently logged round on top.
type Renderer struct {
	rows RowList
}

func NewRenderer(rows RowList) *Renderer {
	r := &Renderer{rows: rows}
	if rows.Len() == 0 {
		rows.InsertAt(0, Row{ID: PlaceholderID})
	}
	return r
}

func (r *Renderer) project(round internal.Round) Row {
	return Row{
		ID:        RowID(round.RoundNum),
		Date:      round.Date,
		Course:    round.Course,
		Score:     ScoreCell(round),
		EditRef:   round.RoundNum,
		DeleteRef: round.RoundNum,
	}
}

func (r *Renderer) indexOf(id string) int {
	for i := 0; i < r.rows.Len(); i++ {
		if r.rows.At(i).ID == id {
			return i
		}
	}
	return -1
}

// AddRow inserts the round as the first row, removing the empty
// placeholder first if it is showing.
func (r *Renderer) AddRow(round internal.Round) {
	if i := r.indexOf(PlaceholderID); i >= 0 {
		r.rows.DeleteAt(i)
	}
	r.rows.InsertAt(0, r.project(round))
}

// RemoveRow deletes the row tagged with the round's identifier. Removing
// the last real row restores the placeholder.
func (r *Renderer) RemoveRow(roundNum int) error {
	i := r.indexOf(RowID(roundNum))
	if i < 0 {
		return ErrRowNotFound
	}
	r.rows.DeleteAt(i)
	if r.rows.Len() == 0 {
		r.rows.InsertAt(0, Row{ID: PlaceholderID})
	}
	return nil
}

// UpdateRow rewrites the row for an edited round in place.
func (r *Renderer) UpdateRow(round internal.Round) error {
	i := r.indexOf(RowID(round.RoundNum))
	if i < 0 {
		return ErrRowNotFound
	}
	r.rows.DeleteAt(i)
	r.rows.InsertAt(i, r.project(round))
	return nil
}

// Render replaces the table contents with the full history, newest first.
func (r *Renderer) Render(rounds []internal.Round) {
	for r.rows.Len() > 0 {
		r.rows.DeleteAt(0)
	}
	if len(rounds) == 0 {
		r.rows.InsertAt(0, Row{ID: PlaceholderID})
		return
	}
	for _, round := range rounds {
		r.rows.InsertAt(0, r.project(round))
	}
}

// MemoryRows is an in-memory RowList used by the server and tests.
type MemoryRows struct {
	rows []Row
}

func NewMemoryRows() *MemoryRows { return &MemoryRows{} }

func (m *MemoryRows) InsertAt(pos int, row Row) {
	m.rows = append(m.rows, Row{})
	copy(m.rows[pos+1:], m.rows[pos:])
	m.rows[pos] = row
}

func (m *MemoryRows) DeleteAt(pos int) {
	m.rows = append(m.rows[:pos], m.rows[pos+1:]...)
}

func (m *MemoryRows) Len() int        { return len(m.rows) }
func (m *MemoryRows) At(pos int) Row  { return m.rows[pos] }
func (m *MemoryRows) Rows() []Row     { return append([]Row(nil), m.rows...) }

var _ RowList = (*MemoryRows)(nil)
