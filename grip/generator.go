package grip

import (
	"context"
	"iter"
	"runtime"

	"github.com/jsphweid/gripdex/fretboard"
	"github.com/jsphweid/gripdex/model"
	"golang.org/x/sync/errgroup"
)

type generator struct {
	chord  model.ChordSpec
	opts   Options
	matrix fretboard.Matrix
}

func newGenerator(chord model.ChordSpec, tuning model.Tuning, opts Options) (*generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &generator{
		chord:  chord,
		opts:   opts,
		matrix: fretboard.Build(tuning, opts.MaxFret),
	}, nil
}

// Generate returns every accepted, deduplicated grip for the chord, in
// enumeration order. An empty result is not an error.
func Generate(chord model.ChordSpec, tuning model.Tuning, opts Options) ([]model.TunedGrip, error) {
	g, err := newGenerator(chord, tuning, opts)
	if err != nil {
		return nil, err
	}

	var accepted Set
	for base := opts.MinFret; base <= opts.MaxFret; base++ {
		for tg := range g.window(base) {
			accepted.Add(tg)
		}
	}
	return settle(accepted.Grips()), nil
}

// GenerateConcurrent searches the windows in parallel and merges their
// candidates in window order, so the result equals Generate's.
func GenerateConcurrent(ctx context.Context, chord model.ChordSpec, tuning model.Tuning, opts Options) ([]model.TunedGrip, error) {
	g, err := newGenerator(chord, tuning, opts)
	if err != nil {
		return nil, err
	}

	windows := make([][]model.TunedGrip, opts.MaxFret-opts.MinFret+1)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range windows {
		base := opts.MinFret + i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var res []model.TunedGrip
			for tg := range g.window(base) {
				if err := ctx.Err(); err != nil {
					return err
				}
				res = append(res, tg)
			}
			windows[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var accepted Set
	for _, candidates := range windows {
		for _, tg := range candidates {
			accepted.Add(tg)
		}
	}
	return settle(accepted.Grips()), nil
}

// window yields the accepted candidates of the window starting at base.
func (g *generator) window(base int) iter.Seq[model.TunedGrip] {
	end := min(base+g.opts.WindowSpan, g.opts.MaxFret+1)
	frets := candidatePositions(g.matrix, g.chord, base, end)

	return func(yield func(model.TunedGrip) bool) {
		for combo := range combinations(frets, g.opts.FingerBudget) {
			v := g.materialize(combo)
			if !g.opts.AllowMutedStringsInside {
				v.closeGaps()
			}
			for _, variant := range g.bassVariants(v) {
				tg, ok := g.accept(variant)
				if !ok {
					continue
				}
				if !yield(tg) {
					return
				}
			}
		}
	}
}
