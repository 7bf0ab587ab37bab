package model

// ChordSpec is what the grip generator needs to know about a chord. Notes is
// ordered root first, then third, fifth and so on; the order decides which
// inversion a voicing is in.
type ChordSpec struct {
	Root  PitchClass   `json:"root"`
	Bass  *PitchClass  `json:"bass,omitempty"`
	Notes []PitchClass `json:"notes"`
}

// Required returns the chord tones plus the bass note, without duplicates.
func (c ChordSpec) Required() []PitchClass {
	var res []PitchClass
	seen := make(map[PitchClass]bool)
	add := func(pc PitchClass) {
		if !seen[pc] {
			seen[pc] = true
			res = append(res, pc)
		}
	}
	for _, pc := range c.Notes {
		add(pc)
	}
	if c.Bass != nil {
		add(*c.Bass)
	}
	return res
}

func (c ChordSpec) Requires(pc PitchClass) bool {
	if c.Bass != nil && *c.Bass == pc {
		return true
	}
	for _, n := range c.Notes {
		if n == pc {
			return true
		}
	}
	return false
}
