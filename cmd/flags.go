package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/model"
	"github.com/spf13/cobra"
)

type chordFlags struct {
	root    string
	notes   string
	quality string
	bass    string
	tuning  string
}

func (f *chordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "root pitch class, e.g. C or Bb")
	cmd.Flags().StringVar(&f.notes, "notes", "", "chord tones root first, e.g. C,E,G")
	cmd.Flags().StringVar(&f.quality, "quality", "", "build the chord tones from a quality instead of --notes (maj, min, 7, ...)")
	cmd.Flags().StringVar(&f.bass, "bass", "", "pitch class that must sound lowest")
	cmd.Flags().StringVar(&f.tuning, "tuning", "", "six pitches lowest string first (default from config)")
	cmd.MarkFlagRequired("root")
}

func (f *chordFlags) spec() (model.ChordSpec, error) {
	var spec model.ChordSpec
	root, err := model.ParsePitchClass(f.root)
	if err != nil {
		return spec, fmt.Errorf("--root: %w", err)
	}

	switch {
	case f.notes != "":
		notes, err := model.ParsePitchClasses(f.notes)
		if err != nil {
			return spec, fmt.Errorf("--notes: %w", err)
		}
		spec = model.ChordSpec{Root: root, Notes: notes}
	case f.quality != "":
		q, ok := qualityByName(f.quality)
		if !ok {
			return spec, fmt.Errorf("--quality: unknown quality %q", f.quality)
		}
		spec = chord.FromQuality(root, q)
	default:
		return spec, errors.New("one of --notes or --quality is required")
	}

	if f.bass != "" {
		bass, err := model.ParsePitchClass(f.bass)
		if err != nil {
			return spec, fmt.Errorf("--bass: %w", err)
		}
		spec.Bass = &bass
	}
	return spec, nil
}

func (f *chordFlags) resolvedTuning() (model.Tuning, error) {
	if f.tuning != "" {
		return model.ParseTuning(f.tuning)
	}
	return cfg.ResolvedTuning()
}

func qualityByName(name string) (chord.Quality, bool) {
	for _, q := range chord.Qualities {
		if q.Name == name {
			return q, true
		}
	}
	return chord.Quality{}, false
}

type generatorFlags struct {
	minFret          int
	maxFret          int
	minStrings       int
	noBarre          bool
	noInversions     bool
	allowIncomplete  bool
	allowMutedInside bool
	allowDuplicates  bool
}

func (f *generatorFlags) register(cmd *cobra.Command) {
	defaults := grip.DefaultOptions()
	cmd.Flags().IntVar(&f.minFret, "min-fret", defaults.MinFret, "lowest window base fret")
	cmd.Flags().IntVar(&f.maxFret, "max-fret", defaults.MaxFret, "highest fret")
	cmd.Flags().IntVar(&f.minStrings, "min-strings", defaults.MinimalPlayableStrings, "minimum number of sounding strings")
	cmd.Flags().BoolVar(&f.noBarre, "no-barre", false, "reject grips with a barre")
	cmd.Flags().BoolVar(&f.noInversions, "no-inversions", false, "only root position grips")
	cmd.Flags().BoolVar(&f.allowIncomplete, "allow-incomplete", false, "allow grips missing chord tones")
	cmd.Flags().BoolVar(&f.allowMutedInside, "allow-muted-inside", false, "allow muted strings between sounding ones")
	cmd.Flags().BoolVar(&f.allowDuplicates, "allow-duplicates", false, "allow the same pitch on two strings")
}

// options layers the flags the user actually set over the configured
// generator options.
func (f *generatorFlags) options(cmd *cobra.Command) (grip.Options, error) {
	opts := cfg.GeneratorOptions()
	changed := cmd.Flags().Changed
	if changed("min-fret") {
		opts.MinFret = f.minFret
	}
	if changed("max-fret") {
		opts.MaxFret = f.maxFret
	}
	if changed("min-strings") {
		opts.MinimalPlayableStrings = f.minStrings
	}
	if changed("no-barre") {
		opts.AllowBarre = !f.noBarre
	}
	if changed("no-inversions") {
		opts.AllowInversions = !f.noInversions
	}
	if changed("allow-incomplete") {
		opts.AllowIncompleteChords = f.allowIncomplete
	}
	if changed("allow-muted-inside") {
		opts.AllowMutedStringsInside = f.allowMutedInside
	}
	if changed("allow-duplicates") {
		opts.AllowDuplicateNotes = f.allowDuplicates
	}
	return opts, opts.Validate()
}
