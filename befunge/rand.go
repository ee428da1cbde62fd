package befunge

import (
	"math/rand"
	"time"
)

// Randomizer picks the new heading for ?.
type Randomizer interface {
	Direction() Direction
}

type mathRand struct {
	r *rand.Rand
}

// NewRandomizer returns a uniform Randomizer.  A zero seed is
// replaced by the current time.
func NewRandomizer(seed int64) Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Direction() Direction {
	return Direction(m.r.Intn(len(directions)))
}
