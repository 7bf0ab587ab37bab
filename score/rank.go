package score

import (
	"context"

	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/model"
)

// Rank generates every grip for the chord and orders them best first.
func Rank(ctx context.Context, chord model.ChordSpec, tuning model.Tuning, opts grip.Options) ([]model.TunedGrip, error) {
	grips, err := grip.GenerateConcurrent(ctx, chord, tuning, opts)
	if err != nil {
		return nil, err
	}
	return Sort(grips), nil
}
