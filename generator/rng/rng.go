// Package rng wraps a seeded pseudorandom source behind the sampling
// primitives the dataset generator needs. All randomness in the module flows
// through an explicit *Rng value; nothing touches the global math/rand state,
// so a given seed always reproduces the same dataset.
package rng

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidWindow reports a date window whose end precedes its start.
var ErrInvalidWindow = errors.New("invalid date window")

// Rng is a deterministic random source. Every value it produces is a pure
// function of the seed and the call sequence.
type Rng struct {
	r *rand.Rand
}

// New returns an Rng seeded with the given value.
func New(seed int64) *Rng {
	return &Rng{r: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [lo, hi], both ends inclusive.
// Panics if hi < lo.
func (g *Rng) IntBetween(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: IntBetween bounds reversed: [%d, %d]", lo, hi))
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (g *Rng) Float64() float64 {
	return g.r.Float64()
}

// UniformFloat returns a uniform float in [lo, hi).
func (g *Rng) UniformFloat(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// Pareto returns a heavy-tailed positive value >= 1 drawn from a Pareto
// distribution with minimum 1 and the given shape exponent. Smaller alpha
// means a fatter tail.
func (g *Rng) Pareto(alpha float64) float64 {
	u := 1.0 - g.r.Float64() // (0, 1]
	return math.Pow(u, -1.0/alpha)
}

// DateBetween returns a uniform random date within the inclusive [start, end]
// window, truncated to day granularity. Returns ErrInvalidWindow when end
// precedes start.
func (g *Rng) DateBetween(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("%w: %s..%s",
			ErrInvalidWindow, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.IntBetween(0, days)), nil
}

// Choice returns a uniformly chosen element. Panics on an empty slice, which
// is always a caller bug.
func Choice[T any](g *Rng, items []T) T {
	if len(items) == 0 {
		panic("rng: Choice on empty slice")
	}
	return items[g.r.Intn(len(items))]
}

// WeightedChoice returns an element chosen with probability proportional to
// its weight. Weights must be non-negative and sum to a positive value.
func WeightedChoice[T any](g *Rng, items []T, weights []float64) T {
	if len(items) == 0 || len(items) != len(weights) {
		panic("rng: WeightedChoice needs one weight per item")
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weight below zero")
		}
		total += w
	}
	if total <= 0 {
		panic("rng: WeightedChoice weights sum to zero")
	}
	target := g.r.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	return items[len(items)-1] // floating point slack
}

// Shuffle permutes the slice in place.
func Shuffle[T any](g *Rng, items []T) {
	g.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Sample returns k distinct elements drawn without replacement, in draw
// order. Panics when k exceeds the population size.
func Sample[T any](g *Rng, items []T, k int) []T {
	if k < 0 || k > len(items) {
		panic(fmt.Sprintf("rng: Sample size %d out of range for population %d", k, len(items)))
	}
	idx := g.r.Perm(len(items))[:k]
	out := make([]T, k)
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
