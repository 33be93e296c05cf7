package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureUniqueNames(t *testing.T) {
	names := []string{"Acme Inc", "Acme Inc", "Acme Inc", "Orbit LLC", "Acme Inc"}
	require.NoError(t, ensureUniqueNames(names, "account"))
	require.Equal(t,
		[]string{"Acme Inc", "Acme Inc (2)", "Acme Inc (3)", "Orbit LLC", "Acme Inc (4)"},
		names)
}

func TestEnsureUniqueNamesSuffixCollision(t *testing.T) {
	// The sampled vocabulary can already contain the suffixed form the
	// dedupe would otherwise pick.
	names := []string{"Acme Inc", "Acme Inc (2)", "Acme Inc"}
	require.NoError(t, ensureUniqueNames(names, "account"))
	require.Equal(t, []string{"Acme Inc", "Acme Inc (2)", "Acme Inc (3)"}, names)
}

func TestEnsureUniqueNamesRejectsEmpty(t *testing.T) {
	err := ensureUniqueNames([]string{"Acme Inc", ""}, "account")
	require.Error(t, err)
	require.Contains(t, err.Error(), "account 2")
}

func TestClampInt(t *testing.T) {
	require.Equal(t, 200_000, clampInt(50_000, 200_000, 1_500_000))
	require.Equal(t, 1_500_000, clampInt(2_000_000, 200_000, 1_500_000))
	require.Equal(t, 750_000, clampInt(750_000.7, 200_000, 1_500_000))
}

func TestRoundHalfUp(t *testing.T) {
	require.Equal(t, 5, roundHalfUp(4.5))
	require.Equal(t, 4, roundHalfUp(4.4))
	require.Equal(t, 10, roundHalfUp(10.0))
}
