package dialog

import "github.com/speedscore/roundtracker/internal/validate"

// Focusable control identifiers. Error message elements are focusable
// too and are named "<field>-err". CancelControl is the last focusable
// item in the dialog's tab order.
const CancelControl = "cancel"

// ErrElem is the identifier of a field's error message element.
func ErrElem(field string) string { return field + "-err" }

// errorCheckOrder is the fixed order invalid fields are processed in.
// Each invalid field takes focus as it is processed, so the last invalid
// entry here ends up focused: date outranks course outranks strokes, and
// so on down to notes.
var errorCheckOrder = []string{
	validate.FieldNotes,
	validate.FieldSeconds,
	validate.FieldMinutes,
	validate.FieldStrokes,
	validate.FieldCourse,
	validate.FieldDate,
}

// FocusTarget resolves which error element receives focus for a failed
// validation. The second return is false when the result has no invalid
// fields.
func FocusTarget(res validate.Result) (string, bool) {
	target, found := "", false
	for _, f := range errorCheckOrder {
		if !res.FieldValid(f) {
			target = ErrElem(f)
			found = true
		}
	}
	return target, found
}

// applyErrorFocus walks the fixed order, revealing messages for invalid
// fields and hiding them for valid ones, then parks focus on the
// resolved target. The focused error element also becomes the first
// focusable item so the keyboard trap wraps to it.
func (c *Controller) applyErrorFocus(res validate.Result) {
	for _, f := range errorCheckOrder {
		c.visibleErrors[f] = !res.FieldValid(f)
	}
	if target, ok := FocusTarget(res); ok {
		c.focus = target
		c.firstFocusable = target
	}
}

// Key is one keyboard event as the binding layer reports it.
type Key struct {
	Code  string // "Escape", "Tab", ...
	Shift bool
}

// SetFocus records where the binding layer moved focus. The trap needs
// to know the current position to decide wrapping.
func (c *Controller) SetFocus(name string) error {
	if !c.open() {
		return ErrNotOpen
	}
	c.focus = name
	return nil
}

// HandleKey implements the modal keyboard contract: Escape cancels; Tab
// from the last focusable control wraps to the first; Shift+Tab from the
// first wraps to the last. It returns true when the event was consumed
// (the binding layer must then suppress the default move). The trap
// holds in every open state, error elements included.
func (c *Controller) HandleKey(k Key) (bool, error) {
	if !c.open() {
		return false, ErrNotOpen
	}
	if k.Code == "Escape" {
		return true, c.Cancel()
	}
	if k.Code != "Tab" {
		return false, nil
	}
	if !k.Shift && c.focus == CancelControl {
		c.focus = c.firstFocusable
		return true, nil
	}
	if k.Shift && c.focus == c.firstFocusable {
		c.focus = CancelControl
		return true, nil
	}
	return false, nil
}
