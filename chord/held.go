package chord

import (
	"sync"

	"github.com/jsphweid/gripdex/util"
	"gitlab.com/gomidi/midi/v2"
)

// Held tracks the keys currently pressed on a live input. It is safe for
// use from the midi listener goroutine and readers at the same time.
type Held struct {
	mu      sync.Mutex
	onNotes OnNotes
}

func NewHeld() *Held {
	return &Held{onNotes: make(OnNotes)}
}

// Controllers that release every key on the channel.
const (
	ccAllSoundOff = 120
	ccAllNotesOff = 123
)

// Handle applies a note start or end, or an all-notes-off controller, and
// reports whether the held set changed.
func (h *Held) Handle(msg midi.Message) bool {
	var ch, key, vel uint8
	if msg.GetControlChange(&ch, &key, &vel) {
		if key == ccAllNotesOff || key == ccAllSoundOff {
			return h.Reset()
		}
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if h.onNotes[key] {
			return false
		}
		h.onNotes[key] = true
		return true
	case msg.GetNoteEnd(&ch, &key):
		if !h.onNotes[key] {
			return false
		}
		delete(h.onNotes, key)
		return true
	}
	return false
}

// Keys returns the held keys, lowest first.
func (h *Held) Keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.SortedKeys(h.onNotes)
}

// Reset releases every held key and reports whether any were held.
func (h *Held) Reset() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	changed := len(h.onNotes) > 0
	clear(h.onNotes)
	return changed
}
