// Package form abstracts the input controls of the log-round form. Each
// field carries the declared constraints of its control; checking a value
// against them yields the same validity flags a native control would
// report, so validation needs no rendering environment.
package form

import (
	"strconv"
	"strings"
)

// Violation mirrors the native field validity flags.
type Violation string

const (
	MissingValue   Violation = "valueMissing"
	TooLong        Violation = "tooLong"
	TypeMismatch   Violation = "typeMismatch"
	RangeUnderflow Violation = "rangeUnderflow"
	RangeOverflow  Violation = "rangeOverflow"
)

// Kind is the declared input type of a control.
type Kind int

const (
	Text Kind = iota
	Number
	Date
)

// Constraints are the declared limits of one input control.
// Min and Max apply to Number fields only; nil means unbounded on that
// side. MaxLength zero means unlimited.
type Constraints struct {
	Kind      Kind
	Required  bool
	Min       *int
	Max       *int
	MaxLength int
}

// Check reports every constraint the value violates. An empty optional
// field violates nothing; an empty required field violates only
// MissingValue, never the length or range constraints.
func (c Constraints) Check(value string) []Violation {
	var out []Violation
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if c.Required {
			out = append(out, MissingValue)
		}
		return out
	}
	if c.MaxLength > 0 && len([]rune(value)) > c.MaxLength {
		out = append(out, TooLong)
	}
	if c.Kind == Number {
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			out = append(out, TypeMismatch)
			return out
		}
		if c.Min != nil && n < *c.Min {
			out = append(out, RangeUnderflow)
		}
		if c.Max != nil && n > *c.Max {
			out = append(out, RangeOverflow)
		}
	}
	return out
}

// Validity is the full native-style flag set for one value.
type Validity struct {
	ValueMissing   bool
	TooLong        bool
	TypeMismatch   bool
	RangeUnderflow bool
	RangeOverflow  bool
}

// Valid reports whether no flag is raised.
func (v Validity) Valid() bool {
	return !v.ValueMissing && !v.TooLong && !v.TypeMismatch &&
		!v.RangeUnderflow && !v.RangeOverflow
}

// ValidityOf evaluates a value against constraints and expands the result
// into individual flags.
func ValidityOf(c Constraints, value string) Validity {
	var v Validity
	for _, violation := range c.Check(value) {
		switch violation {
		case MissingValue:
			v.ValueMissing = true
		case TooLong:
			v.TooLong = true
		case TypeMismatch:
			v.TypeMismatch = true
		case RangeUnderflow:
			v.RangeUnderflow = true
		case RangeOverflow:
			v.RangeOverflow = true
		}
	}
	return v
}

// IntPtr is a convenience for declaring Min/Max bounds.
func IntPtr(n int) *int { return &n }
