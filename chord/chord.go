package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/gripdex/model"
	"github.com/jsphweid/gripdex/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type OnNotes = map[uint8]bool

// Quality is a chord shape as semitone intervals above the root, root first.
type Quality struct {
	Name      string
	Intervals []int
}

var (
	Major      = Quality{"maj", []int{0, 4, 7}}
	Minor      = Quality{"min", []int{0, 3, 7}}
	Diminished = Quality{"dim", []int{0, 3, 6}}
	Augmented  = Quality{"aug", []int{0, 4, 8}}
	Sus2       = Quality{"sus2", []int{0, 2, 7}}
	Sus4       = Quality{"sus4", []int{0, 5, 7}}
	Dominant7  = Quality{"7", []int{0, 4, 7, 10}}
	Major7     = Quality{"maj7", []int{0, 4, 7, 11}}
	Minor7     = Quality{"min7", []int{0, 3, 7, 10}}
)

// Qualities is the order in which held keys are matched against shapes.
var Qualities = []Quality{Major, Minor, Dominant7, Major7, Minor7, Diminished, Augmented, Sus4, Sus2}

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// Key identifies a chord spec, e.g. "C:C-E-G/G".
func Key(spec model.ChordSpec) string {
	names := make([]string, len(spec.Notes))
	for i, pc := range spec.Notes {
		names[i] = pc.String()
	}
	key := spec.Root.String() + ":" + strings.Join(names, "-")
	if spec.Bass != nil {
		key += "/" + spec.Bass.String()
	}
	return key
}

func FromIntervals(root model.PitchClass, intervals ...int) model.ChordSpec {
	spec := model.ChordSpec{Root: root}
	for _, interval := range intervals {
		spec.Notes = append(spec.Notes, root.Transpose(interval))
	}
	return spec
}

func FromQuality(root model.PitchClass, q Quality) model.ChordSpec {
	return FromIntervals(root, q.Intervals...)
}

// FromKeys names the chord sounded by held MIDI keys. Each held pitch class is
// tried as root against the known qualities; the lowest key becomes the bass
// when it is not the root. Unknown shapes fall back to the lowest key as root
// with the remaining pitch classes ordered by their interval above it.
func FromKeys(keys []uint8) (model.ChordSpec, bool) {
	if len(keys) == 0 {
		return model.ChordSpec{}, false
	}
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var classes []model.PitchClass
	held := make(map[model.PitchClass]bool)
	for _, key := range sorted {
		pc := model.PitchFromMIDI(key).Class
		if !held[pc] {
			held[pc] = true
			classes = append(classes, pc)
		}
	}
	lowest := classes[0]

	for _, root := range classes {
		for _, q := range Qualities {
			if !matches(root, q, held) {
				continue
			}
			spec := FromQuality(root, q)
			if lowest != root {
				bass := lowest
				spec.Bass = &bass
			}
			return spec, true
		}
	}

	spec := model.ChordSpec{Root: lowest}
	intervals := make([]int, 0, len(classes))
	for _, pc := range classes {
		intervals = append(intervals, int(pc.Transpose(-int(lowest))))
	}
	sort.Ints(intervals)
	for _, interval := range intervals {
		spec.Notes = append(spec.Notes, lowest.Transpose(interval))
	}
	return spec, true
}

func matches(root model.PitchClass, q Quality, held map[model.PitchClass]bool) bool {
	if len(q.Intervals) != len(held) {
		return false
	}
	for _, interval := range q.Intervals {
		if !held[root.Transpose(interval)] {
			return false
		}
	}
	return true
}

// Change is the set of keys held from Offset (microseconds) on.
type Change struct {
	Offset int64
	Keys   []uint8
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// GetChanges lists every moment the set of held keys changes in the file, in
// time order. Moments where nothing is held are skipped.
func GetChanges(s *smf.SMF) (changes []Change, err error) {
	// the decoder may panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading midi events: %v", r)
		}
	}()

	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				reducedEvents = append(reducedEvents, reducedEvent{offset: absTime, note: key})
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{offset: absTime, isNoteOff: true, note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	timestampToKeys := make(map[int64][]uint8)
	pressed := make(OnNotes)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		timestampToKeys[evt.offset] = util.SortedKeys(pressed)
	}

	for _, offset := range util.SortedKeys(timestampToKeys) {
		keys := timestampToKeys[offset]
		if len(keys) == 0 {
			continue
		}
		if n := len(changes); n > 0 && CreateChordKey(changes[n-1].Keys) == CreateChordKey(keys) {
			continue
		}
		changes = append(changes, Change{Offset: offset, Keys: keys})
	}
	return changes, nil
}
