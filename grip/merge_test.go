package grip

import (
	"testing"

	"github.com/jsphweid/gripdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tuned(t *testing.T, notation string) model.TunedGrip {
	t.Helper()
	g, err := model.ParseGrip(notation)
	require.NoError(t, err)
	return Tune(g, model.StandardTuning, &cMajor)
}

func TestCompare(t *testing.T) {
	cases := []struct {
		next, accepted string
		expected       Relation
	}{
		{"x|3|2|o|1|o", "x|3|2|o|1|o", Match},
		{"x|x|2|o|1|o", "o|3|2|o|1|o", Subset},
		{"o|3|2|o|1|o", "x|x|2|o|1|o", Superset},
		{"x|3|2|o|1|x", "x|3|2|o|1|o", Subset},
		{"x|3|2|o|1|o", "x|3|2|o|1|x", Superset},
		// the lowest pitch class would change
		{"x|3|2|o|1|o", "o|3|2|o|1|o", Conflict},
		{"o|3|2|o|1|o", "x|3|2|o|1|o", Conflict},
		{"x|3|2|o|1|o", "x|3|5|o|1|o", Conflict},
		{"x|3|2|o|1|o", "x|3|2|5|1|o", Conflict},
		// loses a string at the bottom, gains one at the top
		{"x|x|2|o|1|o", "o|x|2|o|1|x", Conflict},
	}

	for _, c := range cases {
		t.Run(c.next+" vs "+c.accepted, func(t *testing.T) {
			assert.Equal(t, c.expected, Compare(tuned(t, c.next), tuned(t, c.accepted)))
		})
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	assert := assert.New(t)
	var s Set

	assert.True(s.Add(tuned(t, "x|3|2|o|1|o")))
	assert.True(s.Add(tuned(t, "x|x|2|o|1|o")))
	assert.Len(s.Grips(), 2)

	// superset of the second grip, keeps its slot
	assert.True(s.Add(tuned(t, "o|3|2|o|1|o")))
	assert.Len(s.Grips(), 2)
	assert.Equal("o|3|2|o|1|o", s.Grips()[1].Grip.String())

	assert.False(s.Add(tuned(t, "x|x|2|o|1|o")))
	assert.False(s.Add(tuned(t, "x|3|2|o|1|o")))
	assert.Len(s.Grips(), 2)
}

func TestDedup(t *testing.T) {
	grips := []model.TunedGrip{
		tuned(t, "x|x|2|o|1|o"),
		tuned(t, "x|3|2|o|1|o"),
		tuned(t, "o|3|2|o|1|o"),
		tuned(t, "x|3|2|o|1|x"),
	}

	got := Dedup(grips)
	var notations []string
	for _, tg := range got {
		notations = append(notations, tg.Grip.String())
	}
	assert.Equal(t, []string{"o|3|2|o|1|o", "x|3|2|o|1|o"}, notations)
	assert.Equal(t, got, Dedup(got))
}

func TestSettleReachesFixedPoint(t *testing.T) {
	grips := []model.TunedGrip{
		tuned(t, "x|x|2|o|x|x"),
		tuned(t, "x|x|2|o|1|o"),
		tuned(t, "x|x|2|o|1|x"),
		tuned(t, "x|3|2|o|1|o"),
	}

	settled := settle(grips)
	assert.Equal(t, settled, Dedup(settled))

	var notations []string
	for _, tg := range settled {
		notations = append(notations, tg.Grip.String())
	}
	assert.Equal(t, []string{"x|x|2|o|1|o", "x|3|2|o|1|o"}, notations)
}
