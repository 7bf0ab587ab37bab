package sample

import (
	"testing"

	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/midi"
	"github.com/jsphweid/gripdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tuned(t *testing.T, notation string) model.TunedGrip {
	t.Helper()
	g, err := model.ParseGrip(notation)
	require.NoError(t, err)
	return grip.Tune(g, model.StandardTuning, nil)
}

func TestStrumPlaysLowToHigh(t *testing.T) {
	s, err := Strum(tuned(t, "x|3|2|o|1|o"), DefaultStrumOptions())
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var names []string
	for _, p := range midi.Pitches(s) {
		names = append(names, p.String())
	}
	assert.Equal(t, []string{"C3", "E3", "G3", "C4", "E4"}, names)
}

func TestStrumOfMutedGripIsSilent(t *testing.T) {
	s, err := Strum(tuned(t, "x|x|x|x|x|x"), DefaultStrumOptions())
	require.NoError(t, err)
	assert.Empty(t, midi.Pitches(s))
}

func TestProgression(t *testing.T) {
	grips := []model.TunedGrip{
		tuned(t, "x|3|2|o|1|o"),
		tuned(t, "x|x|x|x|x|x"),
		tuned(t, "x|o|2|2|1|o"),
	}
	s, err := Progression(grips, DefaultStrumOptions())
	require.NoError(t, err)

	pitches := midi.Pitches(s)
	require.Len(t, pitches, 10)
	assert.Equal(t, "A2", pitches[5].String())
	assert.Equal(t, "E4", pitches[9].String())
}
