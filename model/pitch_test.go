package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchTransposeCarriesOctave(t *testing.T) {
	cases := []struct {
		from     Pitch
		n        int
		expected Pitch
	}{
		{Pitch{E, 2}, 3, Pitch{G, 2}},
		{Pitch{B, 3}, 1, Pitch{C, 4}},
		{Pitch{E, 4}, 12, Pitch{E, 5}},
		{Pitch{C, 4}, -1, Pitch{B, 3}},
		{Pitch{A, 2}, 0, Pitch{A, 2}},
		{Pitch{D, 3}, 25, Pitch{DSharp, 5}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v+%d", c.from, c.n), func(t *testing.T) {
			assert.Equal(t, c.expected, c.from.Transpose(c.n))
		})
	}
}

func TestPitchClassTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Transpose(1))
	assert.Equal(ASharp, C.Transpose(-2))
	assert.Equal(E, E.Transpose(24))
}

func TestParsePitchClassNormalizesFlats(t *testing.T) {
	assert := assert.New(t)

	pc, err := ParsePitchClass("Bb")
	assert.NoError(err)
	assert.Equal(ASharp, pc)

	pc, err = ParsePitchClass("Cb")
	assert.NoError(err)
	assert.Equal(B, pc)

	pc, err = ParsePitchClass("F#")
	assert.NoError(err)
	assert.Equal(FSharp, pc)

	_, err = ParsePitchClass("H")
	assert.True(errors.Is(err, ErrInvalidPitch))
}

func TestParsePitchClasses(t *testing.T) {
	pcs, err := ParsePitchClasses("C, E,G")
	require.NoError(t, err)
	assert.Equal(t, []PitchClass{C, E, G}, pcs)
}

func TestParsePitch(t *testing.T) {
	assert := assert.New(t)

	p, err := ParsePitch("E2")
	assert.NoError(err)
	assert.Equal(Pitch{E, 2}, p)

	p, err = ParsePitch("Db4")
	assert.NoError(err)
	assert.Equal(Pitch{CSharp, 4}, p)

	_, err = ParsePitch("E")
	assert.Error(err)

	p, err = ParsePitch("G9")
	assert.NoError(err)
	assert.Equal(uint8(127), p.MIDI())

	p, err = ParsePitch("C-1")
	assert.NoError(err)
	assert.Equal(uint8(0), p.MIDI())

	for _, s := range []string{"G#9", "E20", "C-2", "B-3"} {
		_, err = ParsePitch(s)
		assert.ErrorIs(err, ErrInvalidPitch, s)
	}
}

func TestPitchMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(40), Pitch{E, 2}.MIDI())
	assert.Equal(uint8(60), Pitch{C, 4}.MIDI())
	assert.Equal(uint8(64), Pitch{E, 4}.MIDI())
	assert.Equal(Pitch{G, 3}, PitchFromMIDI(55))
}

func TestParseTuning(t *testing.T) {
	tuning, err := ParseTuning("E2 A2 D3 G3 B3 E4")
	require.NoError(t, err)
	assert.Equal(t, StandardTuning, tuning)
	assert.Equal(t, "E2 A2 D3 G3 B3 E4", tuning.String())

	_, err = ParseTuning("E2 A2 D3")
	assert.Error(t, err)
}
