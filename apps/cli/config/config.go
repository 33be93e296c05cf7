// Package config maps environment variables onto the generator's
// configuration value so every CLI command reads the same knob surface.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/blwy10/cognition-revops-agent/generator"
)

// Env mirrors generator.Config as environment variables. Defaults match
// generator.DefaultConfig so an empty environment runs the stock scenario.
type Env struct {
	Seed             int64 `env:"SEED" envDefault:"123"`
	NumReps          int   `env:"NUM_REPS" envDefault:"30"`
	NumAccounts      int   `env:"NUM_ACCOUNTS" envDefault:"70"`
	NumOpportunities int   `env:"NUM_OPPORTUNITIES" envDefault:"100"`

	ParetoAlpha float64 `env:"PARETO_ALPHA" envDefault:"1.0"`

	// Dollar-sized knobs are int64: env's built-in int parser is 32-bit.
	RevenueScaleDollars int64 `env:"REVENUE_SCALE_DOLLARS" envDefault:"75000000"`
	RevenueCapDollars   int64 `env:"REVENUE_CAP_DOLLARS" envDefault:"700000000000"`

	RevenuePerEmployeeMin float64 `env:"REVENUE_PER_EMPLOYEE_MIN" envDefault:"20000"`
	RevenuePerEmployeeMax float64 `env:"REVENUE_PER_EMPLOYEE_MAX" envDefault:"1000000"`
	DeveloperPctMin       float64 `env:"DEVELOPER_PCT_MIN" envDefault:"0.05"`
	DeveloperPctMax       float64 `env:"DEVELOPER_PCT_MAX" envDefault:"0.50"`

	IsCustomerRate float64  `env:"IS_CUSTOMER_RATE" envDefault:"0.30"`
	Products       []string `env:"PRODUCTS" envDefault:"Devin,Windsurf"`

	OppsPerAccountMin int `env:"OPPS_PER_ACCOUNT_MIN" envDefault:"0"`
	OppsPerAccountMax int `env:"OPPS_PER_ACCOUNT_MAX" envDefault:"2"`

	TAMPerDeveloper     int     `env:"TAM_PER_DEVELOPER" envDefault:"1000"`
	CoveragePctMin      float64 `env:"COVERAGE_PCT_MIN" envDefault:"0.50"`
	CoveragePctMax      float64 `env:"COVERAGE_PCT_MAX" envDefault:"1.00"`
	AmountMultiplierMin float64 `env:"AMOUNT_MULTIPLIER_MIN" envDefault:"0.50"`
	AmountMultiplierMax float64 `env:"AMOUNT_MULTIPLIER_MAX" envDefault:"2.00"`

	TotalPipelineTarget int64 `env:"TOTAL_PIPELINE_TARGET" envDefault:"10000000"`
	TotalPipelineMin    int64 `env:"TOTAL_PIPELINE_MIN" envDefault:"9000000"`
	TotalPipelineMax    int64 `env:"TOTAL_PIPELINE_MAX" envDefault:"13000000"`
	AmountRetryLimit    int   `env:"AMOUNT_RETRY_LIMIT" envDefault:"20"`

	RecentCloseStart string  `env:"RECENT_CLOSE_START" envDefault:"2025-10-01"`
	RecentCloseEnd   string  `env:"RECENT_CLOSE_END" envDefault:"2026-02-18"`
	FutureCloseStart string  `env:"FUTURE_CLOSE_START" envDefault:"2026-02-19"`
	FutureCloseEnd   string  `env:"FUTURE_CLOSE_END" envDefault:"2026-09-30"`
	RecentClosePct   float64 `env:"RECENT_CLOSE_PCT" envDefault:"0.10"`
	MissingClosePct  float64 `env:"MISSING_CLOSE_PCT" envDefault:"0.05"`

	CreatedStart       string `env:"OPPORTUNITY_CREATED_START" envDefault:"2024-07-01"`
	CreatedEnd         string `env:"OPPORTUNITY_CREATED_END" envDefault:"2026-02-18"`
	HistoryChangeStart string `env:"HISTORY_CHANGE_START" envDefault:"2025-10-01"`
	HistoryChangeEnd   string `env:"HISTORY_CHANGE_END" envDefault:"2026-02-18"`
	HistoryChangesMin  int    `env:"HISTORY_CHANGES_MIN" envDefault:"0"`
	HistoryChangesMax  int    `env:"HISTORY_CHANGES_MAX" envDefault:"2"`

	QuotaMultiplier float64 `env:"QUOTA_MULTIPLIER" envDefault:"0.9"`
	QuotaMin        int64   `env:"QUOTA_MIN" envDefault:"200000"`
	QuotaMax        int64   `env:"QUOTA_MAX" envDefault:"1500000"`
}

// Load parses the environment and converts it into a generator.Config.
func Load() (generator.Config, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return generator.Config{}, fmt.Errorf("load config from environment: %w", err)
	}
	return e.GeneratorConfig()
}

// GeneratorConfig converts the parsed environment into the generator's
// config value.
func (e Env) GeneratorConfig() (generator.Config, error) {
	windows := make([]generator.DateWindow, 4)
	for i, w := range []struct {
		name       string
		start, end string
	}{
		{"recent close", e.RecentCloseStart, e.RecentCloseEnd},
		{"future close", e.FutureCloseStart, e.FutureCloseEnd},
		{"created", e.CreatedStart, e.CreatedEnd},
		{"history change", e.HistoryChangeStart, e.HistoryChangeEnd},
	} {
		parsed, err := generator.ParseWindow(w.start, w.end)
		if err != nil {
			return generator.Config{}, fmt.Errorf("%s window: %w", w.name, err)
		}
		windows[i] = parsed
	}

	return generator.Config{
		Seed:             e.Seed,
		NumReps:          e.NumReps,
		NumAccounts:      e.NumAccounts,
		NumOpportunities: e.NumOpportunities,

		ParetoAlpha:         e.ParetoAlpha,
		RevenueScaleDollars: int(e.RevenueScaleDollars),
		RevenueCapDollars:   int(e.RevenueCapDollars),

		RevenuePerEmployeeMin: e.RevenuePerEmployeeMin,
		RevenuePerEmployeeMax: e.RevenuePerEmployeeMax,
		DeveloperPctMin:       e.DeveloperPctMin,
		DeveloperPctMax:       e.DeveloperPctMax,

		IsCustomerRate: e.IsCustomerRate,
		Products:       e.Products,

		OppsPerAccountMin: e.OppsPerAccountMin,
		OppsPerAccountMax: e.OppsPerAccountMax,

		TAMPerDeveloper:     e.TAMPerDeveloper,
		CoveragePctMin:      e.CoveragePctMin,
		CoveragePctMax:      e.CoveragePctMax,
		AmountMultiplierMin: e.AmountMultiplierMin,
		AmountMultiplierMax: e.AmountMultiplierMax,

		TotalPipelineTarget: int(e.TotalPipelineTarget),
		TotalPipelineMin:    int(e.TotalPipelineMin),
		TotalPipelineMax:    int(e.TotalPipelineMax),
		AmountRetryLimit:    e.AmountRetryLimit,

		RecentCloseWindow: windows[0],
		FutureCloseWindow: windows[1],
		RecentClosePct:    e.RecentClosePct,
		MissingClosePct:   e.MissingClosePct,

		CreatedWindow:       windows[2],
		HistoryChangeWindow: windows[3],
		HistoryChangesMin:   e.HistoryChangesMin,
		HistoryChangesMax:   e.HistoryChangesMax,

		QuotaMultiplier: e.QuotaMultiplier,
		QuotaMin:        int(e.QuotaMin),
		QuotaMax:        int(e.QuotaMax),
	}, nil
}
