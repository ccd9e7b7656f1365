package planner

import (
	"math/rand"
	"time"
)

// Rand is the source of every random choice the planner makes: map selection,
// participant draw order and fallback cells. Tests substitute a fixed sequence.
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRand returns a seeded source; seed 0 seeds from the clock
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
