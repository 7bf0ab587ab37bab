package grip

import (
	"iter"

	"github.com/jsphweid/gripdex/fretboard"
	"github.com/jsphweid/gripdex/model"
)

// placement is one finger on the fretboard. Covering more than one string
// makes it a barre.
type placement struct {
	fret    int
	strings []int
}

func (p placement) isBarre() bool {
	return len(p.strings) > 1
}

func (p placement) covers(str int) bool {
	for _, s := range p.strings {
		if s == str {
			return true
		}
	}
	return false
}

// fretCandidates lists the strings that sound a chord tone at one fret,
// lowest string first.
type fretCandidates struct {
	fret    int
	strings []int
}

// candidatePositions scans frets [base, end). Frets without any candidate
// are left out.
func candidatePositions(m fretboard.Matrix, chord model.ChordSpec, base, end int) []fretCandidates {
	var res []fretCandidates
	for fret := base; fret < end; fret++ {
		var strs []int
		for str := 0; str < model.NumStrings; str++ {
			if chord.Requires(m.At(str, fret).Class) {
				strs = append(strs, str)
			}
		}
		if len(strs) > 0 {
			res = append(res, fretCandidates{fret: fret, strings: strs})
		}
	}
	return res
}

// options yields what a hand can do at this fret: the barre on its own
// (only with two or more candidates), then every non-empty subset of single
// finger placements.
func (fc fretCandidates) options() iter.Seq[[]placement] {
	return func(yield func([]placement) bool) {
		if len(fc.strings) > 1 {
			// a barre lies flat from the lowest candidate to the highest string
			barre := placement{fret: fc.fret}
			for str := fc.strings[0]; str < model.NumStrings; str++ {
				barre.strings = append(barre.strings, str)
			}
			if !yield([]placement{barre}) {
				return
			}
		}

		singles := make([]placement, 0, len(fc.strings))
		for _, str := range fc.strings {
			singles = append(singles, placement{fret: fc.fret, strings: []int{str}})
		}
		for subset := range subsets(singles) {
			if !yield(subset) {
				return
			}
		}
	}
}

// subsets yields every non-empty subset of items in depth-first order:
// [a], [a b], [a b c], [a c], [b], [b c], [c]. Each yielded slice is fresh.
func subsets[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var walk func(current []T, start int) bool
		walk = func(current []T, start int) bool {
			for i := start; i < len(items); i++ {
				next := append(current[:len(current):len(current)], items[i])
				if !yield(next) || !walk(next, i+1) {
					return false
				}
			}
			return true
		}
		walk(nil, 0)
	}
}

// combinations yields the placement sets of one window. The sequence for the
// first k frets is the sequence for the first k-1 frets followed by every
// valid extension of it with an option from fret k. It is recomputed on
// every range, so nothing but the current combination is held in memory.
func combinations(frets []fretCandidates, budget int) iter.Seq[[]placement] {
	if len(frets) == 0 {
		return func(func([]placement) bool) {}
	}

	last := len(frets) - 1
	if last == 0 {
		return func(yield func([]placement) bool) {
			for opt := range frets[0].options() {
				if len(opt) > budget {
					continue
				}
				if !yield(opt) {
					return
				}
			}
		}
	}

	prev := combinations(frets[:last], budget)
	return func(yield func([]placement) bool) {
		for combo := range prev {
			if !yield(combo) {
				return
			}
		}
		for combo := range prev {
			for opt := range frets[last].options() {
				merged := make([]placement, 0, len(combo)+len(opt))
				merged = append(merged, combo...)
				merged = append(merged, opt...)
				if !playable(merged, budget) {
					continue
				}
				if !yield(merged) {
					return
				}
			}
		}
	}
}

// playable rejects sets that need too many fingers, put two single fingers
// on one string, or press a barre over a lower single finger, which would
// hide it.
func playable(placements []placement, budget int) bool {
	if len(placements) > budget {
		return false
	}

	seen := make(map[int]bool)
	for _, p := range placements {
		if p.isBarre() {
			continue
		}
		if seen[p.strings[0]] {
			return false
		}
		seen[p.strings[0]] = true
	}

	for _, barre := range placements {
		if !barre.isBarre() {
			continue
		}
		for _, single := range placements {
			if single.isBarre() {
				continue
			}
			if barre.fret > single.fret && barre.covers(single.strings[0]) {
				return false
			}
		}
	}
	return true
}
