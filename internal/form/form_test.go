package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequired(t *testing.T) {
	c := Constraints{Kind: Text, Required: true, MaxLength: 10}
	assert.Equal(t, []Violation{MissingValue}, c.Check(""))
	assert.Equal(t, []Violation{MissingValue}, c.Check("   "))
	assert.Empty(t, c.Check("Pebble"))
}

func TestCheckOptionalEmpty(t *testing.T) {
	c := Constraints{Kind: Text, MaxLength: 5}
	assert.Empty(t, c.Check(""))
}

func TestCheckMaxLength(t *testing.T) {
	c := Constraints{Kind: Text, MaxLength: 5}
	assert.Equal(t, []Violation{TooLong}, c.Check("abcdef"))
	assert.Empty(t, c.Check("abcde"))
}

func TestCheckNumber(t *testing.T) {
	c := Constraints{Kind: Number, Required: true, Min: IntPtr(0), Max: IntPtr(59)}
	cases := []struct {
		value string
		want  []Violation
	}{
		{"30", nil},
		{"0", nil},
		{"59", nil},
		{"75", []Violation{RangeOverflow}},
		{"-1", []Violation{RangeUnderflow}},
		{"abc", []Violation{TypeMismatch}},
		{"", []Violation{MissingValue}},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got := c.Check(tc.value)
			if tc.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestValidityOf(t *testing.T) {
	c := Constraints{Kind: Number, Required: true, Min: IntPtr(9), Max: IntPtr(200)}

	v := ValidityOf(c, "80")
	assert.True(t, v.Valid())

	v = ValidityOf(c, "300")
	assert.False(t, v.Valid())
	assert.True(t, v.RangeOverflow)
	assert.False(t, v.RangeUnderflow)
	assert.False(t, v.ValueMissing)

	v = ValidityOf(c, "")
	assert.True(t, v.ValueMissing)
	assert.False(t, v.TypeMismatch)
}

func TestCheckTooLongUnicode(t *testing.T) {
	c := Constraints{Kind: Text, MaxLength: 3}
	// Length counts runes, not bytes.
	assert.Empty(t, c.Check("äöü"))
	assert.Equal(t, []Violation{TooLong}, c.Check(strings.Repeat("ä", 4)))
}
