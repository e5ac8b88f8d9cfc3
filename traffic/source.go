package traffic

import (
	"math/rand/v2"
	"time"
)

// Source yields random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic source. The same seed always yields the
// same traffic.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewSource returns a source seeded from the clock.
func NewSource() Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// intn maps a draw from src onto [0, n). Values outside [0, 1) are pulled
// back into range.
func intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
