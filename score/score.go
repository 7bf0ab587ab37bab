package score

import (
	"cmp"
	"slices"

	"github.com/jsphweid/gripdex/model"
)

const (
	highPositionFret    = 5
	highPositionPenalty = 5
	inversionPenalty    = 5
	mutedPenalty        = 2
	barrePenalty        = 3
	openBonus           = 0.75
)

// Breakdown holds the individual penalties of a grip. Lower totals are
// easier to play.
type Breakdown struct {
	FretSpan  float64 `json:"fret_span"`
	Position  float64 `json:"position"`
	Inversion float64 `json:"inversion"`
	Muted     float64 `json:"muted"`
	MutedArea float64 `json:"muted_area"`
	Barre     float64 `json:"barre"`
	OpenBonus float64 `json:"open_bonus"`
}

func (b Breakdown) Total() float64 {
	return b.FretSpan + b.Position + b.Inversion + b.Muted + b.MutedArea + b.Barre - b.OpenBonus
}

func Explain(tg model.TunedGrip) Breakdown {
	var b Breakdown

	var frets []int
	var muted, open int
	for _, s := range tg.Grip {
		switch s.Kind {
		case model.Muted:
			muted++
		case model.Open:
			open++
		case model.Fretted:
			frets = append(frets, s.SoundingFret())
		}
	}

	if len(frets) > 0 {
		lo, hi := slices.Min(frets), slices.Max(frets)
		b.FretSpan = float64(hi - lo)
		if lo > highPositionFret {
			b.Position = highPositionPenalty
		} else if lo > 1 {
			b.Position = float64(lo - 1)
		}
		if hasDuplicate(frets) {
			b.Barre = barrePenalty
		}
	}

	if tg.Inversion != model.InversionRoot {
		b.Inversion = inversionPenalty
	}

	b.Muted = float64(muted * mutedPenalty)
	b.MutedArea = mutedArea(tg.Grip, muted)
	b.OpenBonus = float64(open) * openBonus
	return b
}

func Score(tg model.TunedGrip) float64 {
	return Explain(tg).Total()
}

// Sort returns the grips ordered by ascending score. Equal scores keep their
// generation order and the input slice is left untouched.
func Sort(grips []model.TunedGrip) []model.TunedGrip {
	type scored struct {
		tg    model.TunedGrip
		score float64
	}
	all := make([]scored, len(grips))
	for i, tg := range grips {
		all[i] = scored{tg: tg, score: Score(tg)}
	}
	slices.SortStableFunc(all, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})

	res := make([]model.TunedGrip, len(all))
	for i, s := range all {
		res[i] = s.tg
	}
	return res
}

// mutedArea prefers a single run of mutes on the low strings. Runs on both
// ends with more mutes in between cost the most.
func mutedArea(g model.Grip, muted int) float64 {
	var leading, trailing int
	for i := 0; i < len(g) && g[i].Kind == model.Muted; i++ {
		leading++
	}
	for i := len(g) - 1; i >= 0 && g[i].Kind == model.Muted; i-- {
		trailing++
	}

	switch {
	case leading > 0 && trailing > 0 && leading+trailing < muted:
		return 4
	case trailing > 0:
		return 2
	case leading > 0:
		return 1
	}
	return 0
}

func hasDuplicate(frets []int) bool {
	seen := make(map[int]bool, len(frets))
	for _, f := range frets {
		if seen[f] {
			return true
		}
		seen[f] = true
	}
	return false
}
