// Package validate checks a candidate round against the declared field
// constraints of the log-round form. All six validated fields are checked
// independently so every invalid field can be reported in a single pass.
package validate

import "github.com/speedscore/roundtracker/internal/form"

// Field names, matching the form control names.
const (
	FieldDate    = "date"
	FieldCourse  = "course"
	FieldStrokes = "strokes"
	FieldMinutes = "minutes"
	FieldSeconds = "seconds"
	FieldNotes   = "notes"
)

// Declared constraints of the log-round form controls.
var (
	DateConstraints    = form.Constraints{Kind: form.Date, Required: true}
	CourseConstraints  = form.Constraints{Kind: form.Text, Required: true, MaxLength: 50}
	StrokesConstraints = form.Constraints{Kind: form.Number, Required: true, Min: form.IntPtr(9), Max: form.IntPtr(200)}
	MinutesConstraints = form.Constraints{Kind: form.Number, Required: true, Min: form.IntPtr(0), Max: form.IntPtr(400)}
	SecondsConstraints = form.Constraints{Kind: form.Number, Required: true, Min: form.IntPtr(0), Max: form.IntPtr(59)}
	NotesConstraints   = form.Constraints{Kind: form.Text, MaxLength: 500}
)

// RoundInput is the raw field values of a candidate round, exactly as
// entered. Type and holes are select controls and cannot be invalid.
type RoundInput struct {
	Date    string
	Course  string
	Strokes string
	Minutes string
	Seconds string
	Notes   string
}

// Result is the structured outcome of validating a candidate round.
// FieldErrors holds the first violated constraint per invalid field;
// fields absent from the map are individually valid.
type Result struct {
	Valid       bool
	FieldErrors map[string]form.Violation
}

// FieldValid reports whether the named field passed validation.
func (r Result) FieldValid(name string) bool {
	_, bad := r.FieldErrors[name]
	return !bad
}

// Round validates every field of the candidate independently. No
// short-circuiting: one invalid field never hides or taints another.
func Round(in RoundInput) Result {
	checks := []struct {
		name        string
		constraints form.Constraints
		value       string
	}{
		{FieldDate, DateConstraints, in.Date},
		{FieldCourse, CourseConstraints, in.Course},
		{FieldStrokes, StrokesConstraints, in.Strokes},
		{FieldMinutes, MinutesConstraints, in.Minutes},
		{FieldSeconds, SecondsConstraints, in.Seconds},
		{FieldNotes, NotesConstraints, in.Notes},
	}

	res := Result{Valid: true, FieldErrors: map[string]form.Violation{}}
	for _, c := range checks {
		if violations := c.constraints.Check(c.value); len(violations) > 0 {
			res.Valid = false
			res.FieldErrors[c.name] = violations[0]
		}
	}
	return res
}
