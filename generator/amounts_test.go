package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

func TestEnforceTAMLeavesCompliantAmountsAlone(t *testing.T) {
	amounts := []int{100, 200}
	require.Equal(t, []int{100, 200}, enforceTAM(amounts, 1000))
}

func TestEnforceTAMScalesProportionally(t *testing.T) {
	scaled := enforceTAM([]int{600, 600}, 1000)
	require.Equal(t, []int{500, 500}, scaled)
}

func TestEnforceTAMShavesRoundingOverflow(t *testing.T) {
	// 5 x 0.9 rounds to 5 on both entries, so the proportional pass alone
	// leaves the sum one over the cap.
	scaled := enforceTAM([]int{5, 5}, 9)
	require.Equal(t, 9, sumInts(scaled))
	for _, a := range scaled {
		require.GreaterOrEqual(t, a, 0)
	}
}

func TestGenerateAmountsRespectsTAM(t *testing.T) {
	g := rng.New(11)
	cfg := DefaultConfig()
	accounts := []Account{
		{ID: 1, NumDevelopers: 50},
		{ID: 2, NumDevelopers: 3},
		{ID: 3, NumDevelopers: 1200},
	}
	counts := []int{2, 1, 3}

	perAccount := generateAmounts(g, cfg, accounts, counts)
	require.Len(t, perAccount, len(accounts))
	for i, a := range accounts {
		require.Len(t, perAccount[i], counts[i])
		require.LessOrEqual(t, sumInts(perAccount[i]), cfg.AccountTAM(a))
	}
}

func TestApplyGlobalScaleShrinksTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalPipelineTarget = 10_000_000
	accounts := []Account{
		{ID: 1, NumDevelopers: 100_000},
		{ID: 2, NumDevelopers: 100_000},
	}
	perAccount := [][]int{{12_000_000, 3_000_000}, {5_000_000}}

	scaled := applyGlobalScale(cfg, accounts, perAccount)
	total := sumInts(scaled[0]) + sumInts(scaled[1])
	require.InDelta(t, cfg.TotalPipelineTarget, total, 5)
}

func TestApplyGlobalScaleGrowthCappedByTAM(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalPipelineTarget = 10_000
	accounts := []Account{{ID: 1, NumDevelopers: 1}} // TAM = 1000
	perAccount := [][]int{{500}}

	scaled := applyGlobalScale(cfg, accounts, perAccount)
	require.Equal(t, [][]int{{1000}}, scaled)
}

func TestGeneratePipelineAmountsUnreachable(t *testing.T) {
	g := rng.New(11)
	cfg := DefaultConfig()
	cfg.AmountRetryLimit = 3
	cfg.TotalPipelineTarget = 50_000
	cfg.TotalPipelineMin = 50_000
	cfg.TotalPipelineMax = 60_000

	// One tiny account: even at full TAM the total cannot reach the floor.
	accounts := []Account{{ID: 1, NumDevelopers: 2}}
	counts := []int{2}

	_, err := generatePipelineAmounts(g, cfg, accounts, counts)
	require.ErrorIs(t, err, ErrPipelineTargetUnreachable)
}
