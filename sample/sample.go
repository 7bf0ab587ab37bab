package sample

import (
	"github.com/jsphweid/gripdex/constants"
	"github.com/jsphweid/gripdex/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type StrumOptions struct {
	Channel  uint8
	Velocity uint8
	BPM      float64
	// StrumTicks separates the attacks of neighbouring strings.
	StrumTicks uint32
	// HoldTicks is how long a grip rings after its last attack.
	HoldTicks uint32
}

func DefaultStrumOptions() StrumOptions {
	return StrumOptions{
		Velocity:   90,
		BPM:        90,
		StrumTicks: constants.TicksPerQuarter / 32,
		HoldTicks:  constants.TicksPerQuarter * 2,
	}
}

// Strum renders a grip as a single down strum, lowest string first.
func Strum(tg model.TunedGrip, opts StrumOptions) (*smf.SMF, error) {
	return Progression([]model.TunedGrip{tg}, opts)
}

// Progression strums the grips one after another on a single track.
func Progression(grips []model.TunedGrip, opts StrumOptions) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.BPM))

	var rest uint32
	for _, tg := range grips {
		pitches := tg.Pitches()
		if len(pitches) == 0 {
			rest += opts.HoldTicks
			continue
		}
		for i, p := range pitches {
			delta := opts.StrumTicks
			if i == 0 {
				delta = rest
			}
			track.Add(delta, midi.NoteOn(opts.Channel, p.MIDI(), opts.Velocity))
		}
		for i, p := range pitches {
			var delta uint32
			if i == 0 {
				delta = opts.HoldTicks
			}
			track.Add(delta, midi.NoteOff(opts.Channel, p.MIDI()))
		}
		rest = 0
	}
	track.Close(rest)

	if err := res.Add(track); err != nil {
		return nil, err
	}
	return res, nil
}
