package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

func TestDeriveTerritoriesSortedAndStamped(t *testing.T) {
	accounts := []Account{
		{ID: 1, Industry: "Retail"},
		{ID: 2, Industry: "Healthcare"},
		{ID: 3, Industry: "Retail"},
	}

	territories := deriveTerritories(accounts)
	require.Len(t, territories, 2)
	require.Equal(t, Territory{ID: 1, Name: "Healthcare Territory"}, territories[0])
	require.Equal(t, Territory{ID: 2, Name: "Retail Territory"}, territories[1])

	require.Equal(t, 2, accounts[0].TerritoryID)
	require.Equal(t, 1, accounts[1].TerritoryID)
	require.Equal(t, 2, accounts[2].TerritoryID)
}

func TestGenerateRepsCoversEveryTerritory(t *testing.T) {
	g := rng.New(31)
	cfg := DefaultConfig()
	voc := testVocab()
	territories := []Territory{{ID: 1}, {ID: 2}, {ID: 3}}

	reps, err := generateReps(g, cfg, voc, territories)
	require.NoError(t, err)
	require.Len(t, reps, cfg.NumReps)

	covered := make(map[int]bool)
	for i, r := range reps {
		require.Equal(t, i+1, r.ID)
		covered[r.TerritoryID] = true
	}
	require.Len(t, covered, len(territories))
}

func TestAssignOwnershipPicksRepFromTerritory(t *testing.T) {
	g := rng.New(31)
	accounts := []Account{
		{ID: 1, TerritoryID: 1},
		{ID: 2, TerritoryID: 2},
	}
	byTerritory := map[int][]int{1: {10, 11}, 2: {12}}

	require.NoError(t, assignOwnership(g, accounts, byTerritory))
	require.Contains(t, []int{10, 11}, accounts[0].RepID)
	require.Equal(t, 12, accounts[1].RepID)
}

func TestAssignOwnershipFailsOnEmptyTerritory(t *testing.T) {
	g := rng.New(31)
	accounts := []Account{{ID: 1, TerritoryID: 9}}
	err := assignOwnership(g, accounts, map[int][]int{})
	require.ErrorIs(t, err, ErrNoRepsAvailable)
}

func TestAssignRegionsBindsStatesToRegions(t *testing.T) {
	g := rng.New(31)
	voc := testVocab()
	territories := []Territory{{ID: 1}, {ID: 2}}
	reps := []Rep{
		{ID: 1, TerritoryID: 1},
		{ID: 2, TerritoryID: 2},
		{ID: 3, TerritoryID: 1},
	}
	accounts := []Account{
		{ID: 1, TerritoryID: 1, RepID: 3},
		{ID: 2, TerritoryID: 2, RepID: 2},
	}

	require.NoError(t, assignRegions(g, reps, accounts, territories, voc))

	for _, r := range reps {
		require.NotEmpty(t, r.Region)
		require.Equal(t, r.Region, voc.StateToRegion[r.HomeState])
	}
	// Reps in the same territory share a region.
	require.Equal(t, reps[0].Region, reps[2].Region)

	require.Equal(t, reps[2].HomeState, accounts[0].State)
	require.Equal(t, reps[1].HomeState, accounts[1].State)
}
