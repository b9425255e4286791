package testingrand

import (
	"github.com/poorlydefinedbehaviour/randgen-go/src/assert"
)

// rand.Random implementation that replays a known list of draws, cycling
// back to the start when the list is exhausted. Lets tests pin the exact
// values the range mapping will see.
type FixedSequence struct {
	draws []int64
	index int
}

func NewFixedSequence(draws []int64) *FixedSequence {
	assert.True(len(draws) > 0, "at least one draw is required")

	for _, draw := range draws {
		assert.True(draw >= 0, "draws must be in [0, GenMax]")
	}

	return &FixedSequence{draws: draws}
}

func (random *FixedSequence) Gen() int64 {
	draw := random.draws[random.index%len(random.draws)]
	random.index++
	return draw
}
