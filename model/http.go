package model

// GripOptions overrides generator defaults; nil fields keep the default.
type GripOptions struct {
	MinFret                 *int  `json:"min_fret,omitempty" toml:"min_fret,omitempty"`
	MaxFret                 *int  `json:"max_fret,omitempty" toml:"max_fret,omitempty"`
	MinimalPlayableStrings  *int  `json:"minimal_playable_strings,omitempty" toml:"minimal_playable_strings,omitempty"`
	AllowBarre              *bool `json:"allow_barre,omitempty" toml:"allow_barre,omitempty"`
	AllowInversions         *bool `json:"allow_inversions,omitempty" toml:"allow_inversions,omitempty"`
	AllowIncompleteChords   *bool `json:"allow_incomplete_chords,omitempty" toml:"allow_incomplete_chords,omitempty"`
	AllowMutedStringsInside *bool `json:"allow_muted_strings_inside,omitempty" toml:"allow_muted_strings_inside,omitempty"`
	AllowDuplicateNotes     *bool `json:"allow_duplicate_notes,omitempty" toml:"allow_duplicate_notes,omitempty"`
	WindowSpan              *int  `json:"window_span,omitempty" toml:"window_span,omitempty"`
	FingerBudget            *int  `json:"finger_budget,omitempty" toml:"finger_budget,omitempty"`
	RootForcedVariant       *bool `json:"root_forced_variant,omitempty" toml:"root_forced_variant,omitempty"`
}

type GripsRequestBody struct {
	Root    string       `json:"root"`
	Notes   []string     `json:"notes"`
	Bass    string       `json:"bass,omitempty"`
	Tuning  string       `json:"tuning,omitempty"`
	Options *GripOptions `json:"options,omitempty"`
	Limit   int          `json:"limit,omitempty"`
}

type GripResult struct {
	Grip      string   `json:"grip"`
	Notes     []string `json:"notes"`
	Inversion string   `json:"inversion"`
	Score     float64  `json:"score"`
}

type GripsResponse struct {
	NumGrips int          `json:"num_grips"`
	Results  []GripResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type TuningResponse struct {
	Tuning  string   `json:"tuning"`
	Pitches []string `json:"pitches"`
	MIDI    []int    `json:"midi"`
}
