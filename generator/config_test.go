package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero reps", func(c *Config) { c.NumReps = 0 }},
		{"zero accounts", func(c *Config) { c.NumAccounts = 0 }},
		{"negative opportunities", func(c *Config) { c.NumOpportunities = -1 }},
		{"inverted count band", func(c *Config) { c.OppsPerAccountMin = 3; c.OppsPerAccountMax = 1 }},
		{"no products", func(c *Config) { c.Products = nil }},
		{"non-positive alpha", func(c *Config) { c.ParetoAlpha = 0 }},
		{"zero retries", func(c *Config) { c.AmountRetryLimit = 0 }},
		{"inverted quota clamp", func(c *Config) { c.QuotaMin = 500; c.QuotaMax = 100 }},
		{"inverted history band", func(c *Config) { c.HistoryChangesMin = 3; c.HistoryChangesMax = 1 }},
		{"inverted window", func(c *Config) { c.CreatedWindow = Window("2026-01-02", "2026-01-01") }},
		{"close fractions over one", func(c *Config) { c.RecentClosePct = 0.7; c.MissingClosePct = 0.4 }},
		{"negative close fraction", func(c *Config) { c.MissingClosePct = -0.1 }},
		{"close counts overflow population", func(c *Config) {
			c.NumOpportunities = 5
			c.RecentClosePct = 0.5
			c.MissingClosePct = 0.5
		}},
		{"created window past history window", func(c *Config) {
			c.CreatedWindow = Window("2024-07-01", "2026-03-01")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("2025-10-01", "2026-02-18")
	require.NoError(t, err)
	require.True(t, w.Contains("2025-10-01"))
	require.True(t, w.Contains("2026-02-18"))
	require.False(t, w.Contains("2025-09-30"))
	require.False(t, w.Contains("2026-02-19"))
	require.False(t, w.Contains("not-a-date"))

	_, err = ParseWindow("2025/10/01", "2026-02-18")
	require.Error(t, err)
	_, err = ParseWindow("2025-10-01", "18-02-2026")
	require.Error(t, err)
}

func TestCloseDateCountsAreExact(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 10, cfg.RecentCloseCount())
	require.Equal(t, 5, cfg.MissingCloseCount())

	cfg.NumOpportunities = 25
	require.Equal(t, 3, cfg.RecentCloseCount()) // 2.5 rounds half up
	require.Equal(t, 1, cfg.MissingCloseCount())
}

func TestAccountTAM(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 50_000, cfg.AccountTAM(Account{NumDevelopers: 50}))
}
