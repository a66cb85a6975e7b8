package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSGS(t *testing.T) {
	cases := []struct {
		name    string
		strokes int
		minutes int
		seconds string
		want    string
	}{
		{"defaults", 80, 60, "00", "140:00"},
		{"fast round", 80, 35, "20", "115:20"},
		{"single digit seconds padded", 75, 42, "5", "117:05"},
		{"zero minutes", 90, 0, "59", "90:59"},
		{"nine holes", 45, 30, "10", "75:10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SGS(tc.strokes, tc.minutes, tc.seconds))
		})
	}
}

func TestSGSIdempotent(t *testing.T) {
	first := SGS(80, 35, "20")
	second := SGS(80, 35, "20")
	assert.Equal(t, first, second)
}

func TestPadSeconds(t *testing.T) {
	assert.Equal(t, "05", PadSeconds("5"))
	assert.Equal(t, "00", PadSeconds("00"))
	assert.Equal(t, "59", PadSeconds("59"))
	// Already padded values never grow.
	assert.Equal(t, "05", PadSeconds(PadSeconds("5")))
}
