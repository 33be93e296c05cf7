package rng

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	var sa, sb []int
	for i := 0; i < 10; i++ {
		sa = append(sa, a.IntBetween(0, 1000))
		sb = append(sb, b.IntBetween(0, 1000))
	}
	require.NotEqual(t, sa, sb)
}

func TestIntBetweenInclusive(t *testing.T) {
	g := New(0)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := g.IntBetween(5, 10)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 10)
		seen[v] = true
	}
	require.True(t, seen[5], "lower bound should be reachable")
	require.True(t, seen[10], "upper bound should be reachable")
}

func TestUniformFloatRange(t *testing.T) {
	g := New(0)
	for i := 0; i < 200; i++ {
		v := g.UniformFloat(1.0, 2.0)
		require.GreaterOrEqual(t, v, 1.0)
		require.Less(t, v, 2.0)
	}
}

func TestParetoAtLeastOne(t *testing.T) {
	g := New(0)
	for i := 0; i < 200; i++ {
		require.GreaterOrEqual(t, g.Pareto(1.0), 1.0)
	}
}

func TestChoice(t *testing.T) {
	g := New(0)
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		require.Contains(t, items, Choice(g, items))
	}
}

func TestChoiceEmptyPanics(t *testing.T) {
	g := New(0)
	require.Panics(t, func() { Choice(g, []int(nil)) })
}

func TestWeightedChoiceSkipsZeroWeights(t *testing.T) {
	g := New(0)
	items := []string{"never", "always"}
	for i := 0; i < 100; i++ {
		require.Equal(t, "always", WeightedChoice(g, items, []float64{0, 1}))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	g := New(0)
	items := []int{1, 2, 3, 4, 5}
	Shuffle(g, items)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, items)
}

func TestSampleDistinct(t *testing.T) {
	g := New(0)
	pop := make([]int, 20)
	for i := range pop {
		pop[i] = i
	}
	s := Sample(g, pop, 5)
	require.Len(t, s, 5)
	seen := map[int]bool{}
	for _, v := range s {
		require.Contains(t, pop, v)
		require.False(t, seen[v], "sample must not repeat")
		seen[v] = true
	}
}

func TestDateBetweenSameDay(t *testing.T) {
	g := New(0)
	d, err := g.DateBetween(date("2026-01-15"), date("2026-01-15"))
	require.NoError(t, err)
	require.Equal(t, date("2026-01-15"), d)
}

func TestDateBetweenRange(t *testing.T) {
	g := New(0)
	start, end := date("2026-01-01"), date("2026-12-31")
	for i := 0; i < 100; i++ {
		d, err := g.DateBetween(start, end)
		require.NoError(t, err)
		require.False(t, d.Before(start))
		require.False(t, d.After(end))
	}
}

func TestDateBetweenInvalidWindow(t *testing.T) {
	g := New(0)
	_, err := g.DateBetween(date("2026-12-31"), date("2026-01-01"))
	require.ErrorIs(t, err, ErrInvalidWindow)
}
