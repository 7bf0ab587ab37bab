package fretboard

import (
	"fmt"

	"github.com/jsphweid/gripdex/model"
)

// Matrix holds the pitch of every (fret, string) pair, Matrix[fret][string].
type Matrix [][model.NumStrings]model.Pitch

func PitchAt(open model.Pitch, fret int) model.Pitch {
	if fret < 0 {
		panic(fmt.Sprintf("fret can not be negative: %d", fret))
	}
	return open.Transpose(fret)
}

// Build computes pitches for frets 0 through maxFret.
func Build(tuning model.Tuning, maxFret int) Matrix {
	if maxFret < 0 {
		panic(fmt.Sprintf("fret can not be negative: %d", maxFret))
	}
	res := make(Matrix, maxFret+1)
	for fret := range res {
		for str, open := range tuning {
			res[fret][str] = PitchAt(open, fret)
		}
	}
	return res
}

func (m Matrix) At(str, fret int) model.Pitch {
	return m[fret][str]
}

func (m Matrix) MaxFret() int {
	return len(m) - 1
}
