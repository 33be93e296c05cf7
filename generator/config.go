package generator

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for every date in the dataset.
const DateFormat = "2006-01-02"

// DateWindow is an inclusive [Start, End] day range.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Window builds a DateWindow from YYYY-MM-DD strings. It panics on malformed
// input, so it is only for compile-time constants and tests; runtime inputs
// go through ParseWindow.
func Window(start, end string) DateWindow {
	w, err := ParseWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWindow builds a DateWindow from YYYY-MM-DD strings.
func ParseWindow(start, end string) (DateWindow, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateWindow{}, fmt.Errorf("parse window start %q: %w", start, err)
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateWindow{}, fmt.Errorf("parse window end %q: %w", end, err)
	}
	return DateWindow{Start: s, End: e}, nil
}

// Contains reports whether the YYYY-MM-DD date falls inside the window.
// Malformed dates are outside every window.
func (w DateWindow) Contains(ymd string) bool {
	d, err := time.Parse(DateFormat, ymd)
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// Config is the full knob surface of one generation run. It is a plain value
// passed into Generate, so multiple configurations can run side by side in
// the same process.
type Config struct {
	Seed int64

	NumReps          int
	NumAccounts      int
	NumOpportunities int

	// Annual revenue: Pareto(alpha) scaled into dollars and hard-capped,
	// giving a few whales and many small accounts.
	ParetoAlpha         float64
	RevenueScaleDollars int
	RevenueCapDollars   int

	// Developer headcount derivation from revenue.
	RevenuePerEmployeeMin float64
	RevenuePerEmployeeMax float64
	DeveloperPctMin       float64
	DeveloperPctMax       float64

	IsCustomerRate float64

	// Opportunity naming and per-account counts.
	Products          []string
	OppsPerAccountMin int
	OppsPerAccountMax int

	// Per-account TAM cap and amount sampling.
	TAMPerDeveloper     int
	CoveragePctMin      float64
	CoveragePctMax      float64
	AmountMultiplierMin float64
	AmountMultiplierMax float64

	// Dataset-wide pipeline target and the acceptable realized range.
	TotalPipelineTarget int
	TotalPipelineMin    int
	TotalPipelineMax    int
	AmountRetryLimit    int

	// Close-date distribution.
	RecentCloseWindow DateWindow
	FutureCloseWindow DateWindow
	RecentClosePct    float64
	MissingClosePct   float64

	// Created dates and change history.
	CreatedWindow       DateWindow
	HistoryChangeWindow DateWindow
	HistoryChangesMin   int
	HistoryChangesMax   int

	// Rep quota derivation from territory pipeline.
	QuotaMultiplier float64
	QuotaMin        int
	QuotaMax        int
}

// DefaultConfig returns the stock configuration: 30 reps, 70 accounts,
// exactly 100 opportunities, a $10M pipeline target inside [$9M, $13M].
func DefaultConfig() Config {
	return Config{
		Seed: 123,

		NumReps:          30,
		NumAccounts:      70,
		NumOpportunities: 100,

		ParetoAlpha:         1.0,
		RevenueScaleDollars: 75_000_000,
		RevenueCapDollars:   700_000_000_000,

		RevenuePerEmployeeMin: 20_000,
		RevenuePerEmployeeMax: 1_000_000,
		DeveloperPctMin:       0.05,
		DeveloperPctMax:       0.50,

		IsCustomerRate: 0.30,

		Products:          []string{"Devin", "Windsurf"},
		OppsPerAccountMin: 0,
		OppsPerAccountMax: 2,

		TAMPerDeveloper:     1000,
		CoveragePctMin:      0.50,
		CoveragePctMax:      1.00,
		AmountMultiplierMin: 0.50,
		AmountMultiplierMax: 2.00,

		TotalPipelineTarget: 10_000_000,
		TotalPipelineMin:    9_000_000,
		TotalPipelineMax:    13_000_000,
		AmountRetryLimit:    20,

		RecentCloseWindow: Window("2025-10-01", "2026-02-18"),
		FutureCloseWindow: Window("2026-02-19", "2026-09-30"),
		RecentClosePct:    0.10,
		MissingClosePct:   0.05,

		CreatedWindow:       Window("2024-07-01", "2026-02-18"),
		HistoryChangeWindow: Window("2025-10-01", "2026-02-18"),
		HistoryChangesMin:   0,
		HistoryChangesMax:   2,

		QuotaMultiplier: 0.9,
		QuotaMin:        200_000,
		QuotaMax:        1_500_000,
	}
}

// Validate rejects configurations the generator cannot run at all. Range
// infeasibilities that only show up against sampled data (reconciliation,
// pipeline target) surface later as infeasibility errors instead.
func (c Config) Validate() error {
	switch {
	case c.NumReps <= 0:
		return fmt.Errorf("config: NumReps must be positive, got %d", c.NumReps)
	case c.NumAccounts <= 0:
		return fmt.Errorf("config: NumAccounts must be positive, got %d", c.NumAccounts)
	case c.NumOpportunities < 0:
		return fmt.Errorf("config: NumOpportunities must not be negative, got %d", c.NumOpportunities)
	case c.OppsPerAccountMin < 0 || c.OppsPerAccountMax < c.OppsPerAccountMin:
		return fmt.Errorf("config: opportunity count range [%d, %d] is not a valid band",
			c.OppsPerAccountMin, c.OppsPerAccountMax)
	case len(c.Products) == 0:
		return fmt.Errorf("config: at least one product name is required")
	case c.ParetoAlpha <= 0:
		return fmt.Errorf("config: ParetoAlpha must be positive, got %v", c.ParetoAlpha)
	case c.AmountRetryLimit <= 0:
		return fmt.Errorf("config: AmountRetryLimit must be positive, got %d", c.AmountRetryLimit)
	case c.QuotaMin <= 0 || c.QuotaMax < c.QuotaMin:
		return fmt.Errorf("config: quota clamp [%d, %d] must be positive and ordered",
			c.QuotaMin, c.QuotaMax)
	case c.HistoryChangesMin < 0 || c.HistoryChangesMax < c.HistoryChangesMin:
		return fmt.Errorf("config: history change range [%d, %d] is not a valid band",
			c.HistoryChangesMin, c.HistoryChangesMax)
	}

	for _, w := range []struct {
		name   string
		window DateWindow
	}{
		{"recent close", c.RecentCloseWindow},
		{"future close", c.FutureCloseWindow},
		{"created", c.CreatedWindow},
		{"history change", c.HistoryChangeWindow},
	} {
		if w.window.End.Before(w.window.Start) {
			return fmt.Errorf("config: %s window ends %s before it starts %s",
				w.name, w.window.End.Format(DateFormat), w.window.Start.Format(DateFormat))
		}
	}

	if c.RecentClosePct < 0 || c.MissingClosePct < 0 || c.RecentClosePct+c.MissingClosePct > 1 {
		return fmt.Errorf("config: recent (%v) and missing (%v) close fractions must be non-negative and sum to at most 1",
			c.RecentClosePct, c.MissingClosePct)
	}

	// Both fractions rounding up can demand one more opportunity than
	// exists, so no exact recent/missing/future partition satisfies both
	// counts at once.
	if c.RecentCloseCount()+c.MissingCloseCount() > c.NumOpportunities {
		return fmt.Errorf("config: recent (%d) and missing (%d) close counts exceed %d opportunities",
			c.RecentCloseCount(), c.MissingCloseCount(), c.NumOpportunities)
	}

	// History change dates are clamped up to the opportunity's created date;
	// a created window ending after the history window would push clamped
	// changes outside it.
	if c.CreatedWindow.End.After(c.HistoryChangeWindow.End) {
		return fmt.Errorf("config: created window ends %s after the history change window ends %s",
			c.CreatedWindow.End.Format(DateFormat), c.HistoryChangeWindow.End.Format(DateFormat))
	}

	return nil
}

// RecentCloseCount is the exact number of opportunities whose close date
// must fall in the recent window.
func (c Config) RecentCloseCount() int {
	return roundHalfUp(float64(c.NumOpportunities) * c.RecentClosePct)
}

// MissingCloseCount is the exact number of opportunities generated without a
// close date.
func (c Config) MissingCloseCount() int {
	return roundHalfUp(float64(c.NumOpportunities) * c.MissingClosePct)
}

// AccountTAM is the total addressable market cap for an account.
func (c Config) AccountTAM(a Account) int {
	return c.TAMPerDeveloper * a.NumDevelopers
}
