package grip

import "github.com/jsphweid/gripdex/model"

// Relation describes how a new grip relates to one that was already accepted.
type Relation uint8

const (
	Unrelated Relation = iota
	Match
	// Subset: the new grip mutes strings the accepted one plays and is
	// otherwise the same.
	Subset
	// Superset: the new grip plays strings the accepted one mutes and is
	// otherwise the same.
	Superset
	Conflict
)

var relationNames = map[Relation]string{
	Unrelated: "unrelated",
	Match:     "match",
	Subset:    "subset",
	Superset:  "superset",
	Conflict:  "conflict",
}

func (r Relation) String() string {
	return relationNames[r]
}

// Compare walks both grips string by string. Fretted strings only match on
// the same sounding fret. A grip may only gain or lose strings below its own
// lowest played string when both grips keep the same lowest pitch class.
func Compare(next, accepted model.TunedGrip) Relation {
	rel := Unrelated
	nextLow := next.Grip.LowestPlayed()
	acceptedLow := accepted.Grip.LowestPlayed()
	sameBass := sameLowestClass(next, accepted)

	for str := 0; str < model.NumStrings; str++ {
		a, b := next.Grip[str], accepted.Grip[str]
		switch {
		case a.Kind == b.Kind && a.Kind != model.Fretted:
			if rel == Unrelated {
				rel = Match
			}
		case a.Kind == model.Fretted && b.Kind == model.Fretted:
			if a.SoundingFret() != b.SoundingFret() {
				return Conflict
			}
			if rel == Unrelated {
				rel = Match
			}
		case a.Kind == model.Muted:
			if rel != Unrelated && rel != Match && rel != Subset {
				return Conflict
			}
			if str < nextLow && !sameBass {
				return Conflict
			}
			rel = Subset
		case b.Kind == model.Muted:
			if str < acceptedLow && !sameBass {
				return Conflict
			}
			if rel != Unrelated && rel != Match && rel != Superset {
				return Conflict
			}
			rel = Superset
		default:
			return Conflict
		}
	}
	return rel
}

func sameLowestClass(a, b model.TunedGrip) bool {
	pa, okA := a.Lowest()
	pb, okB := b.Lowest()
	if okA != okB {
		return false
	}
	return !okA || pa.Class == pb.Class
}

// Set accumulates accepted grips in arrival order. The outcome depends on
// that order, since a later superset replaces an earlier grip in place.
type Set struct {
	grips []model.TunedGrip
}

// Add merges tg into the set and reports whether the set changed.
func (s *Set) Add(tg model.TunedGrip) bool {
	for i, other := range s.grips {
		switch Compare(tg, other) {
		case Match, Subset:
			return false
		case Superset:
			s.grips[i] = tg
			return true
		}
	}
	s.grips = append(s.grips, tg)
	return true
}

func (s *Set) Grips() []model.TunedGrip {
	return s.grips
}

// Dedup runs one merge pass over grips, in order.
func Dedup(grips []model.TunedGrip) []model.TunedGrip {
	var s Set
	for _, tg := range grips {
		s.Add(tg)
	}
	return s.Grips()
}

// settle repeats Dedup until a pass changes nothing. A pass that neither
// drops nor replaces returns its input unchanged and every other pass
// shrinks the list, so this terminates.
func settle(grips []model.TunedGrip) []model.TunedGrip {
	for {
		next := Dedup(grips)
		if len(next) == len(grips) {
			return next
		}
		grips = next
	}
}
