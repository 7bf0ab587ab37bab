package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type StringKind uint8

const (
	Muted StringKind = iota
	Open
	Fretted
)

type Placement struct {
	Fret        int  `json:"fret"`
	PartOfBarre bool `json:"part_of_barre"`
}

// StringState is what one string does in a grip. Placements is only
// meaningful for Fretted strings; more than one placement records several
// fingers landing on the same string, the highest fret sounds.
type StringState struct {
	Kind       StringKind
	Placements []Placement
}

func MutedString() StringState {
	return StringState{Kind: Muted}
}

func OpenString() StringState {
	return StringState{Kind: Open}
}

func FrettedString(placements ...Placement) StringState {
	return StringState{Kind: Fretted, Placements: placements}
}

// SoundingFret returns -1 for a muted string and 0 for an open one.
func (s StringState) SoundingFret() int {
	switch s.Kind {
	case Open:
		return 0
	case Fretted:
		fret := 0
		for _, p := range s.Placements {
			if p.Fret > fret {
				fret = p.Fret
			}
		}
		return fret
	default:
		return -1
	}
}

func (s StringState) IsBarre() bool {
	if s.Kind != Fretted {
		return false
	}
	for _, p := range s.Placements {
		if p.PartOfBarre {
			return true
		}
	}
	return false
}

func (s StringState) String() string {
	switch s.Kind {
	case Muted:
		return "x"
	case Open:
		return "o"
	}
	fret := s.SoundingFret()
	for _, p := range s.Placements {
		if p.Fret == fret {
			if p.PartOfBarre {
				return strconv.Itoa(fret) + "b"
			}
			break
		}
	}
	return strconv.Itoa(fret)
}

func (s StringState) clone() StringState {
	if s.Placements == nil {
		return s
	}
	placements := make([]Placement, len(s.Placements))
	copy(placements, s.Placements)
	return StringState{Kind: s.Kind, Placements: placements}
}

// Grip holds one StringState per string, lowest string first.
type Grip [NumStrings]StringState

// Clone copies the grip including its placement slices.
func (g Grip) Clone() Grip {
	var res Grip
	for i, s := range g {
		res[i] = s.clone()
	}
	return res
}

func (g Grip) Played() int {
	var n int
	for _, s := range g {
		if s.Kind != Muted {
			n++
		}
	}
	return n
}

// LowestPlayed returns the index of the lowest non-muted string, or -1.
func (g Grip) LowestPlayed() int {
	for i, s := range g {
		if s.Kind != Muted {
			return i
		}
	}
	return -1
}

func (g Grip) HasBarre() bool {
	for _, s := range g {
		if s.IsBarre() {
			return true
		}
	}
	return false
}

// String renders the grip as "x|3|2|o|1|o", barre placements suffixed with "b".
func (g Grip) String() string {
	parts := make([]string, 0, NumStrings)
	for _, s := range g {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "|")
}

func (g Grip) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Grip) UnmarshalText(text []byte) error {
	parsed, err := ParseGrip(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

var ErrInvalidGrip = errors.New("invalid grip")

func ParseGrip(s string) (Grip, error) {
	var g Grip
	parts := strings.Split(s, "|")
	if len(parts) != NumStrings {
		return g, fmt.Errorf("%w: expected %d strings in %q", ErrInvalidGrip, NumStrings, s)
	}
	for i, part := range parts {
		switch part {
		case "x":
			g[i] = MutedString()
		case "o":
			g[i] = OpenString()
		default:
			barre := strings.HasSuffix(part, "b")
			fret, err := strconv.Atoi(strings.TrimSuffix(part, "b"))
			if err != nil || fret < 1 {
				return g, fmt.Errorf("%w: bad fret %q", ErrInvalidGrip, part)
			}
			g[i] = FrettedString(Placement{Fret: fret, PartOfBarre: barre})
		}
	}
	return g, nil
}

type Inversion uint8

const (
	InversionNone Inversion = iota
	InversionRoot
	InversionFirst
	InversionSecond
)

var inversionNames = map[Inversion]string{
	InversionNone:   "none",
	InversionRoot:   "root",
	InversionFirst:  "1st",
	InversionSecond: "2nd",
}

func (inv Inversion) String() string {
	return inversionNames[inv]
}

func (inv Inversion) MarshalText() ([]byte, error) {
	return []byte(inv.String()), nil
}

func (inv *Inversion) UnmarshalText(text []byte) error {
	for k, v := range inversionNames {
		if v == string(text) {
			*inv = k
			return nil
		}
	}
	return fmt.Errorf("unknown inversion %q", text)
}

// TunedGrip is a grip resolved against a tuning. Notes[i] is nil where the
// string is muted.
type TunedGrip struct {
	Grip      Grip               `json:"grip"`
	Notes     [NumStrings]*Pitch `json:"notes"`
	Inversion Inversion          `json:"inversion"`
}

// Lowest returns the pitch of the lowest sounding string.
func (tg TunedGrip) Lowest() (Pitch, bool) {
	for _, n := range tg.Notes {
		if n != nil {
			return *n, true
		}
	}
	return Pitch{}, false
}

// Pitches returns the sounding pitches, lowest string first.
func (tg TunedGrip) Pitches() []Pitch {
	var res []Pitch
	for _, n := range tg.Notes {
		if n != nil {
			res = append(res, *n)
		}
	}
	return res
}

// NoteNames renders Notes as strings, "" for muted strings.
func (tg TunedGrip) NoteNames() []string {
	res := make([]string, NumStrings)
	for i, n := range tg.Notes {
		if n != nil {
			res[i] = n.String()
		}
	}
	return res
}
