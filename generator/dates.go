package generator

import (
	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

// assignCreatedDates samples every opportunity's created date uniformly
// within the created window.
func assignCreatedDates(g *rng.Rng, cfg Config, opps []Opportunity) error {
	for i := range opps {
		d, err := g.DateBetween(cfg.CreatedWindow.Start, cfg.CreatedWindow.End)
		if err != nil {
			return err
		}
		opps[i].CreatedDate = d.Format(DateFormat)
	}
	return nil
}

// assignCloseDates partitions the opportunities into an exact recent count,
// an exact missing count, and the future remainder. The counts are exact by
// construction, not merely expected values: indices are sampled without
// replacement. Counts derive from the population actually being partitioned,
// which equals NumOpportunities on the Generate path.
func assignCloseDates(g *rng.Rng, cfg Config, opps []Opportunity) error {
	indexes := make([]int, len(opps))
	for i := range indexes {
		indexes[i] = i
	}

	recentN := roundHalfUp(float64(len(opps)) * cfg.RecentClosePct)
	missingN := roundHalfUp(float64(len(opps)) * cfg.MissingClosePct)

	recent := make(map[int]bool, recentN)
	for _, i := range rng.Sample(g, indexes, recentN) {
		recent[i] = true
	}

	remaining := make([]int, 0, len(indexes)-recentN)
	for _, i := range indexes {
		if !recent[i] {
			remaining = append(remaining, i)
		}
	}
	if missingN > len(remaining) {
		// Both counts round up only when the fractions sum to 1 exactly.
		missingN = len(remaining)
	}
	missing := make(map[int]bool, missingN)
	for _, i := range rng.Sample(g, remaining, missingN) {
		missing[i] = true
	}

	for i := range opps {
		switch {
		case recent[i]:
			d, err := g.DateBetween(cfg.RecentCloseWindow.Start, cfg.RecentCloseWindow.End)
			if err != nil {
				return err
			}
			s := d.Format(DateFormat)
			opps[i].CloseDate = &s
		case missing[i]:
			opps[i].CloseDate = nil
		default:
			d, err := g.DateBetween(cfg.FutureCloseWindow.Start, cfg.FutureCloseWindow.End)
			if err != nil {
				return err
			}
			s := d.Format(DateFormat)
			opps[i].CloseDate = &s
		}
	}
	return nil
}
