package generator

import (
	"github.com/blwy10/cognition-revops-agent/generator/rng"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// Stage changes outnumber close-date pushes in real change feeds.
var historyFieldWeights = []float64{3, 1}

// generateHistory fabricates the change feed: each opportunity gets a
// sampled number of field changes within the configured band. A stage change
// records an older stage giving way to the opportunity's current stage; a
// close-date change records an earlier close date giving way to the current
// one (only for opportunities that have a close date). Change dates land in
// the history window, clamped so a change never predates the opportunity's
// creation.
func generateHistory(g *rng.Rng, cfg Config, opps []Opportunity, voc *vocab.Bundle) ([]OpportunityHistory, error) {
	fields := []string{HistoryFieldStage, HistoryFieldCloseDate}

	var history []OpportunityHistory
	nextID := 1
	for _, o := range opps {
		n := g.IntBetween(cfg.HistoryChangesMin, cfg.HistoryChangesMax)
		for i := 0; i < n; i++ {
			field := rng.WeightedChoice(g, fields, historyFieldWeights)
			if field == HistoryFieldCloseDate && o.CloseDate == nil {
				field = HistoryFieldStage
			}

			var oldValue, newValue string
			switch field {
			case HistoryFieldStage:
				oldValue = rng.Choice(g, voc.Stages)
				for len(voc.Stages) > 1 && oldValue == o.Stage {
					oldValue = rng.Choice(g, voc.Stages)
				}
				newValue = o.Stage
			case HistoryFieldCloseDate:
				earlier, err := g.DateBetween(cfg.RecentCloseWindow.Start, cfg.FutureCloseWindow.End)
				if err != nil {
					return nil, err
				}
				oldValue = earlier.Format(DateFormat)
				newValue = *o.CloseDate
			}

			changed, err := g.DateBetween(cfg.HistoryChangeWindow.Start, cfg.HistoryChangeWindow.End)
			if err != nil {
				return nil, err
			}
			changeDate := clampYMDMin(changed.Format(DateFormat), o.CreatedDate)

			history = append(history, OpportunityHistory{
				ID:            nextID,
				OpportunityID: o.ID,
				FieldName:     field,
				OldValue:      oldValue,
				NewValue:      newValue,
				ChangeDate:    changeDate,
			})
			nextID++
		}
	}
	return history, nil
}

// clampYMDMin returns value, lifted to min when it sorts earlier. YYYY-MM-DD
// strings order lexicographically the same way the dates do.
func clampYMDMin(value, min string) string {
	if value < min {
		return min
	}
	return value
}
