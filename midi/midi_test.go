package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestWriteThenRead(t *testing.T) {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 40, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(480, midi.NoteOff(0, 40))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	path := filepath.Join(t.TempDir(), "grip.mid")
	require.NoError(t, WriteFile(path, s))

	read, err := ReadMidiFile(path)
	require.NoError(t, err)

	var names []string
	for _, p := range Pitches(read) {
		names = append(names, p.String())
	}
	assert.Equal(t, []string{"E2", "E4"}, names)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(garbage, []byte("not a midi file"), 0644))
	_, err = ReadMidiFile(garbage)
	assert.Error(t, err)
}
