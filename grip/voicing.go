package grip

import (
	"github.com/jsphweid/gripdex/fretboard"
	"github.com/jsphweid/gripdex/model"
)

// voicing is a grip under construction together with what each string sounds.
type voicing struct {
	grip  model.Grip
	notes [model.NumStrings]*model.Pitch
}

func (v *voicing) mute(str int) {
	v.grip[str] = model.MutedString()
	v.notes[str] = nil
}

func (v *voicing) muteRange(from, to int) {
	for str := from; str < to; str++ {
		v.mute(str)
	}
}

func (v voicing) played(from, to int) int {
	var n int
	for str := from; str < to; str++ {
		if v.grip[str].Kind != model.Muted {
			n++
		}
	}
	return n
}

func (v voicing) firstSounding(pc model.PitchClass) int {
	for str, n := range v.notes {
		if n != nil && n.Class == pc {
			return str
		}
	}
	return -1
}

func (v voicing) clone() voicing {
	return voicing{grip: v.grip.Clone(), notes: v.notes}
}

// materialize lays the placements onto six open strings and mutes every
// string that does not sound a chord tone.
func (g *generator) materialize(combo []placement) voicing {
	var v voicing
	for str := range v.grip {
		v.grip[str] = model.OpenString()
	}
	for _, p := range combo {
		for _, str := range p.strings {
			v.grip[str].Kind = model.Fretted
			v.grip[str].Placements = append(v.grip[str].Placements, model.Placement{
				Fret:        p.fret,
				PartOfBarre: p.isBarre(),
			})
		}
	}

	for str := range v.grip {
		pitch := g.matrix.At(str, v.grip[str].SoundingFret())
		if !g.chord.Requires(pitch.Class) {
			v.mute(str)
			continue
		}
		v.notes[str] = &pitch
	}
	return v
}

// closeGaps removes muted strings between played ones. Strings are visited
// low to high; for every muted string the side with fewer played strings is
// muted, on a tie the higher side goes.
func (v *voicing) closeGaps() {
	for str := range v.grip {
		if v.grip[str].Kind != model.Muted {
			continue
		}
		before := v.played(0, str)
		after := v.played(str+1, model.NumStrings)
		if before < after {
			v.muteRange(0, str)
		} else {
			v.muteRange(str+1, model.NumStrings)
		}
	}
}

// bassVariants applies the bass policy. An explicit bass that no string
// sounds discards the voicing. Without one, the root-forced variant comes
// first when it differs in where the root sits.
func (g *generator) bassVariants(v voicing) []voicing {
	if g.chord.Bass != nil {
		str := v.firstSounding(*g.chord.Bass)
		if str < 0 {
			return nil
		}
		v.muteRange(0, str)
		return []voicing{v}
	}

	if g.opts.RootForcedVariant {
		if str := v.firstSounding(g.chord.Root); str > 0 {
			forced := v.clone()
			forced.muteRange(0, str)
			return []voicing{forced, v}
		}
	}
	return []voicing{v}
}

// dropLoneBarres clears the barre flag where muting left a barre on a single
// string; that string is held by an ordinary finger.
func (v *voicing) dropLoneBarres() {
	perFret := make(map[int]int)
	for _, s := range v.grip {
		if s.Kind != model.Fretted {
			continue
		}
		for _, p := range s.Placements {
			if p.PartOfBarre {
				perFret[p.Fret]++
			}
		}
	}
	for str := range v.grip {
		for i, p := range v.grip[str].Placements {
			if p.PartOfBarre && perFret[p.Fret] < 2 {
				v.grip[str].Placements[i].PartOfBarre = false
			}
		}
	}
}

func (g *generator) accept(v voicing) (model.TunedGrip, bool) {
	var empty model.TunedGrip

	v.dropLoneBarres()

	if v.grip.Played() < g.opts.MinimalPlayableStrings {
		return empty, false
	}
	if !g.opts.AllowBarre && v.grip.HasBarre() {
		return empty, false
	}
	if !g.opts.AllowIncompleteChords {
		for _, pc := range g.chord.Required() {
			if v.firstSounding(pc) < 0 {
				return empty, false
			}
		}
	}
	if !g.opts.AllowDuplicateNotes {
		seen := make(map[model.Pitch]bool)
		for _, n := range v.notes {
			if n == nil {
				continue
			}
			if seen[*n] {
				return empty, false
			}
			seen[*n] = true
		}
	}

	inversion := ClassifyInversion(g.chord, v.notes)
	if !g.opts.AllowInversions && inversion != model.InversionRoot {
		return empty, false
	}

	return model.TunedGrip{Grip: v.grip, Notes: v.notes, Inversion: inversion}, true
}

// ClassifyInversion looks at the lowest sounding string: the root makes it
// a root position voicing, the second or third chord tone a first or second
// inversion.
func ClassifyInversion(chord model.ChordSpec, notes [model.NumStrings]*model.Pitch) model.Inversion {
	for _, n := range notes {
		if n == nil {
			continue
		}
		if n.Class == chord.Root {
			return model.InversionRoot
		}
		for i, pc := range chord.Notes {
			if pc != n.Class {
				continue
			}
			switch i {
			case 1:
				return model.InversionFirst
			case 2:
				return model.InversionSecond
			}
			return model.InversionNone
		}
		return model.InversionNone
	}
	return model.InversionNone
}

// Tune resolves a grip against a tuning. The inversion is only classified
// when a chord is given.
func Tune(g model.Grip, tuning model.Tuning, chord *model.ChordSpec) model.TunedGrip {
	tg := model.TunedGrip{Grip: g}
	for str, s := range g {
		if s.Kind == model.Muted {
			continue
		}
		pitch := fretboard.PitchAt(tuning[str], s.SoundingFret())
		tg.Notes[str] = &pitch
	}
	if chord != nil {
		tg.Inversion = ClassifyInversion(*chord, tg.Notes)
	}
	return tg
}
