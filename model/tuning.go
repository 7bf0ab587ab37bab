package model

import (
	"fmt"
	"strings"
)

const NumStrings = 6

// Tuning holds the open pitch of every string, lowest string first.
type Tuning [NumStrings]Pitch

var StandardTuning = Tuning{
	{Class: E, Octave: 2},
	{Class: A, Octave: 2},
	{Class: D, Octave: 3},
	{Class: G, Octave: 3},
	{Class: B, Octave: 3},
	{Class: E, Octave: 4},
}

func (t Tuning) String() string {
	names := make([]string, 0, NumStrings)
	for _, p := range t {
		names = append(names, p.String())
	}
	return strings.Join(names, " ")
}

func (t Tuning) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tuning) UnmarshalText(text []byte) error {
	parsed, err := ParseTuning(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTuning reads six pitches, lowest string first, e.g. "E2 A2 D3 G3 B3 E4".
func ParseTuning(s string) (Tuning, error) {
	var t Tuning
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) != NumStrings {
		return t, fmt.Errorf("%w: tuning needs %d pitches, got %d", ErrInvalidPitch, NumStrings, len(fields))
	}
	for i, f := range fields {
		p, err := ParsePitch(f)
		if err != nil {
			return t, err
		}
		t[i] = p
	}
	return t, nil
}
