package grip

import (
	"errors"
	"fmt"

	"github.com/jsphweid/gripdex/model"
)

var (
	ErrInvalidFretRange = errors.New("invalid fret range")
	ErrInvalidWindow    = errors.New("invalid window configuration")
	ErrOptionsTooLarge  = errors.New("options exceed search limits")
)

// Limits bound the search for callers that take options from untrusted
// input.
const (
	LimitMaxFret      = 24
	LimitWindowSpan   = 5
	LimitFingerBudget = 6
)

type Options struct {
	MinFret                 int
	MaxFret                 int
	MinimalPlayableStrings  int
	AllowBarre              bool
	AllowInversions         bool
	AllowIncompleteChords   bool
	AllowMutedStringsInside bool
	AllowDuplicateNotes     bool

	// WindowSpan is how many frets are searched together, starting at the
	// window's base fret.
	WindowSpan int
	// FingerBudget caps the placements (barres count once) of one grip.
	FingerBudget int
	// RootForcedVariant also offers a copy of every candidate with all
	// strings below the first root muted. Only used when the chord has no
	// explicit bass.
	RootForcedVariant bool
}

func DefaultOptions() Options {
	return Options{
		MinFret:                1,
		MaxFret:                12,
		MinimalPlayableStrings: 3,
		AllowBarre:             true,
		AllowInversions:        true,
		WindowSpan:             3,
		FingerBudget:           4,
		RootForcedVariant:      true,
	}
}

func (o Options) Validate() error {
	if o.MinFret < 1 || o.MaxFret < o.MinFret {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidFretRange, o.MinFret, o.MaxFret)
	}
	if o.WindowSpan < 1 || o.FingerBudget < 1 {
		return fmt.Errorf("%w: span %d, fingers %d", ErrInvalidWindow, o.WindowSpan, o.FingerBudget)
	}
	return nil
}

// WithinLimits reports ErrOptionsTooLarge when the options would make the
// search grow past the Limit constants.
func (o Options) WithinLimits() error {
	if o.MaxFret > LimitMaxFret || o.WindowSpan > LimitWindowSpan || o.FingerBudget > LimitFingerBudget {
		return fmt.Errorf("%w: max fret %d (limit %d), span %d (limit %d), fingers %d (limit %d)",
			ErrOptionsTooLarge,
			o.MaxFret, LimitMaxFret,
			o.WindowSpan, LimitWindowSpan,
			o.FingerBudget, LimitFingerBudget)
	}
	return nil
}

// Override returns a copy of o with every field set in overrides replaced.
func (o Options) Override(overrides *model.GripOptions) Options {
	if overrides == nil {
		return o
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&o.MinFret, overrides.MinFret)
	setInt(&o.MaxFret, overrides.MaxFret)
	setInt(&o.MinimalPlayableStrings, overrides.MinimalPlayableStrings)
	setInt(&o.WindowSpan, overrides.WindowSpan)
	setInt(&o.FingerBudget, overrides.FingerBudget)
	setBool(&o.AllowBarre, overrides.AllowBarre)
	setBool(&o.AllowInversions, overrides.AllowInversions)
	setBool(&o.AllowIncompleteChords, overrides.AllowIncompleteChords)
	setBool(&o.AllowMutedStringsInside, overrides.AllowMutedStringsInside)
	setBool(&o.AllowDuplicateNotes, overrides.AllowDuplicateNotes)
	setBool(&o.RootForcedVariant, overrides.RootForcedVariant)
	return o
}
