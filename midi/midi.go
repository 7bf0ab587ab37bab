package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/gripdex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

func WriteFile(path string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding midi file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}

// Pitches lists the pitch of every note start, track by track in file order.
func Pitches(s *smf.SMF) []model.Pitch {
	var res []model.Pitch
	for _, track := range s.Tracks {
		for _, evt := range track {
			var channel, key, velocity uint8
			if evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, model.PitchFromMIDI(key))
			}
		}
	}
	return res
}
