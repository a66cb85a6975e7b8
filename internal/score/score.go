// Package score derives the speedgolf score (SGS) from a round's raw
// stroke and time inputs.
package score

import "strconv"

// PadSeconds left-pads a single-digit seconds value with a zero. Values
// already two or more characters long come back unchanged.
func PadSeconds(seconds string) string {
	if len(seconds) < 2 {
		return "0" + seconds
	}
	return seconds
}

// SGS computes "<strokes+minutes>:<seconds>" with seconds zero-padded to
// two digits. It is a pure function of its inputs and must be re-invoked
// whenever any of the three changes.
func SGS(strokes, minutes int, seconds string) string {
	return strconv.Itoa(strokes+minutes) + ":" + PadSeconds(seconds)
}
