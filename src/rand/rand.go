package rand

import (
	"math"
	mathrand "math/rand"

	"github.com/poorlydefinedbehaviour/randgen-go/src/assert"
	"github.com/poorlydefinedbehaviour/randgen-go/src/clock"
	"golang.org/x/exp/constraints"
)

// The largest value Gen can return.
const GenMax = int64(math.MaxInt64)

type Random interface {
	// Generates a pseudo random integer in [0, GenMax].
	Gen() int64
}

// Random backed by the standard library generator. The seed is provided
// once, at construction time, and fully determines the draw sequence.
type DefaultRandom struct {
	rand *mathrand.Rand
}

func NewRand(seed uint64) *DefaultRandom {
	return &DefaultRandom{rand: mathrand.New(mathrand.NewSource(int64(seed)))}
}

// Creates a Random seeded with the current wall clock time in seconds.
// Call it once per process, before any draw. Reseeding mid-execution makes
// the sequence more predictable, not less.
func NewRandFromClock(clock clock.Clock) *DefaultRandom {
	return NewRand(uint64(clock.UnixSeconds()))
}

func (random *DefaultRandom) Gen() int64 {
	return random.rand.Int63()
}

// Generates a pseudo random integer in [low, high]. Both bounds are
// inclusive. Advances `random` by exactly one draw.
//
// The caller must ensure low <= high.
//
// The mapping is v % (high - low + 1) + low, so when GenMax + 1 is not a
// multiple of the range size, values near low are slightly more likely
// than the rest. The bias is negligible for ranges far smaller than GenMax.
func Between[T constraints.Integer](random Random, low, high T) T {
	assert.True(low <= high, "low must be less than or equal to high")

	span := int64(high) - int64(low) + 1

	return T(random.Gen()%span + int64(low))
}
