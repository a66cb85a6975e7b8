package validate

import (
	"strings"
	"testing"

	"github.com/speedscore/roundtracker/internal/form"
	"github.com/stretchr/testify/assert"
)

func validInput() RoundInput {
	return RoundInput{
		Date:    "2026-09-01",
		Course:  "Pebble Beach",
		Strokes: "80",
		Minutes: "60",
		Seconds: "00",
		Notes:   "",
	}
}

func TestRoundValid(t *testing.T) {
	res := Round(validInput())
	assert.True(t, res.Valid)
	assert.Empty(t, res.FieldErrors)
}

func TestRoundFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RoundInput)
		field  string
		reason form.Violation
	}{
		{"missing date", func(in *RoundInput) { in.Date = "" }, FieldDate, form.MissingValue},
		{"missing course", func(in *RoundInput) { in.Course = "" }, FieldCourse, form.MissingValue},
		{"course too long", func(in *RoundInput) { in.Course = strings.Repeat("x", 51) }, FieldCourse, form.TooLong},
		{"missing strokes", func(in *RoundInput) { in.Strokes = "" }, FieldStrokes, form.MissingValue},
		{"strokes not numeric", func(in *RoundInput) { in.Strokes = "eighty" }, FieldStrokes, form.TypeMismatch},
		{"strokes under", func(in *RoundInput) { in.Strokes = "5" }, FieldStrokes, form.RangeUnderflow},
		{"strokes over", func(in *RoundInput) { in.Strokes = "250" }, FieldStrokes, form.RangeOverflow},
		{"missing minutes", func(in *RoundInput) { in.Minutes = "" }, FieldMinutes, form.MissingValue},
		{"minutes over", func(in *RoundInput) { in.Minutes = "500" }, FieldMinutes, form.RangeOverflow},
		{"seconds over", func(in *RoundInput) { in.Seconds = "75" }, FieldSeconds, form.RangeOverflow},
		{"seconds negative", func(in *RoundInput) { in.Seconds = "-1" }, FieldSeconds, form.RangeUnderflow},
		{"notes too long", func(in *RoundInput) { in.Notes = strings.Repeat("n", 501) }, FieldNotes, form.TooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			res := Round(in)
			assert.False(t, res.Valid)
			assert.Equal(t, tc.reason, res.FieldErrors[tc.field])
			assert.Len(t, res.FieldErrors, 1)
		})
	}
}

// One invalid field never marks another field invalid, and no check
// short-circuits: every invalid field is reported at once.
func TestRoundFieldIndependence(t *testing.T) {
	in := validInput()
	in.Date = ""
	in.Course = strings.Repeat("x", 51)
	in.Seconds = "99"
	res := Round(in)

	assert.False(t, res.Valid)
	assert.Len(t, res.FieldErrors, 3)
	assert.False(t, res.FieldValid(FieldDate))
	assert.False(t, res.FieldValid(FieldCourse))
	assert.False(t, res.FieldValid(FieldSeconds))
	assert.True(t, res.FieldValid(FieldStrokes))
	assert.True(t, res.FieldValid(FieldMinutes))
	assert.True(t, res.FieldValid(FieldNotes))
}

func TestRoundOptionalNotes(t *testing.T) {
	in := validInput()
	in.Notes = strings.Repeat("n", 500)
	assert.True(t, Round(in).Valid)
}
