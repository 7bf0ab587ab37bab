package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NumPitchClasses = 12

var pitchClassNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatEquivalents = map[string]PitchClass{
	"Db": CSharp,
	"Eb": DSharp,
	"Fb": E,
	"Gb": FSharp,
	"Ab": GSharp,
	"Bb": ASharp,
	"Cb": B,
}

var ErrInvalidPitch = errors.New("invalid pitch")

func (pc PitchClass) String() string {
	return pitchClassNames[pc%NumPitchClasses]
}

// Transpose moves the pitch class up n semitones; n may be negative.
func (pc PitchClass) Transpose(n int) PitchClass {
	return PitchClass(mod(int(pc)+n, NumPitchClasses))
}

func (pc PitchClass) MarshalText() ([]byte, error) {
	return []byte(pc.String()), nil
}

func (pc *PitchClass) UnmarshalText(text []byte) error {
	parsed, err := ParsePitchClass(string(text))
	if err != nil {
		return err
	}
	*pc = parsed
	return nil
}

// ParsePitchClass accepts sharp ("C#") and flat ("Db") spellings.
func ParsePitchClass(s string) (PitchClass, error) {
	s = strings.TrimSpace(s)
	for i, name := range pitchClassNames {
		if name == s {
			return PitchClass(i), nil
		}
	}
	if pc, ok := flatEquivalents[s]; ok {
		return pc, nil
	}
	return 0, fmt.Errorf("%w: unknown pitch class %q", ErrInvalidPitch, s)
}

// ParsePitchClasses parses a comma or whitespace separated list like "C,E,G".
func ParsePitchClasses(s string) ([]PitchClass, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	res := make([]PitchClass, 0, len(fields))
	for _, f := range fields {
		pc, err := ParsePitchClass(f)
		if err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

type Pitch struct {
	Class  PitchClass
	Octave int
}

func (p Pitch) String() string {
	return p.Class.String() + strconv.Itoa(p.Octave)
}

// Transpose moves the pitch n semitones, carrying into the octave.
func (p Pitch) Transpose(n int) Pitch {
	sum := int(p.Class) + n
	return Pitch{
		Class:  PitchClass(mod(sum, NumPitchClasses)),
		Octave: p.Octave + floorDiv(sum, NumPitchClasses),
	}
}

// MIDI returns the MIDI note number, with C4 = 60.
func (p Pitch) MIDI() uint8 {
	return uint8((p.Octave+1)*NumPitchClasses + int(p.Class))
}

func PitchFromMIDI(key uint8) Pitch {
	return Pitch{Class: PitchClass(key % NumPitchClasses), Octave: int(key)/NumPitchClasses - 1}
}

func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

var pitchPattern = regexp.MustCompile(`^([A-G][#b]?)(-?\d+)$`)

// ParsePitch parses a pitch name like "E4" or "Bb3".
func ParsePitch(s string) (Pitch, error) {
	match := pitchPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	pc, err := ParsePitchClass(match[1])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(match[2])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	p := Pitch{Class: pc, Octave: octave}
	if n := (octave+1)*NumPitchClasses + int(pc); n < 0 || n > 127 {
		return Pitch{}, fmt.Errorf("%w: %q is outside the midi range", ErrInvalidPitch, s)
	}
	return p, nil
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}
