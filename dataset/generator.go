// Package dataset produces the sample series shown by the chart.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"bar-ui/chart"
)

const (
	DefaultCount = 200
	DefaultMin   = 50.0
	DefaultMax   = 200.0
)

var ErrInvalidRange = errors.New("invalid generator range")

// Generator draws uniformly distributed values in [Min, Max).
type Generator struct {
	Count int
	Min   float64
	Max   float64
	// NullRatio is the chance that a point is left missing.
	NullRatio float64

	rng *rand.Rand
}

// NewGenerator returns a Generator. A zero seed picks one from the clock.
func NewGenerator(count int, min, max float64, seed uint64) (*Generator, error) {
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidRange)
	}
	if !(min < max) {
		return nil, fmt.Errorf("min %g must be below max %g: %w", min, max, ErrInvalidRange)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		Count: count,
		Min:   min,
		Max:   max,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Default returns a generator with the stock 200 points in [50, 200).
func Default() *Generator {
	g, _ := NewGenerator(DefaultCount, DefaultMin, DefaultMax, 0)
	return g
}

// Generate returns a fresh series. Each call advances the generator.
func (g *Generator) Generate() []chart.Value {
	out := make([]chart.Value, g.Count)
	for i := range out {
		if g.NullRatio > 0 && g.rng.Float64() < g.NullRatio {
			continue
		}
		out[i] = chart.Some(g.Min + g.rng.Float64()*(g.Max-g.Min))
	}
	return out
}
