package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

func TestClampYMDMin(t *testing.T) {
	require.Equal(t, "2025-11-15", clampYMDMin("2025-10-03", "2025-11-15"))
	require.Equal(t, "2025-12-01", clampYMDMin("2025-12-01", "2025-11-15"))
	require.Equal(t, "2025-11-15", clampYMDMin("2025-11-15", "2025-11-15"))
}

func TestGenerateHistoryShape(t *testing.T) {
	g := rng.New(21)
	cfg := DefaultConfig()
	cfg.HistoryChangesMin = 1
	cfg.HistoryChangesMax = 3
	voc := testVocab()

	closed := "2026-05-10"
	opps := []Opportunity{
		{ID: 1, Stage: voc.Stages[2], CreatedDate: "2025-01-10", CloseDate: &closed},
		{ID: 2, Stage: voc.Stages[5], CreatedDate: "2025-12-01", CloseDate: nil},
		{ID: 3, Stage: voc.Stages[0], CreatedDate: "2026-02-10", CloseDate: &closed},
	}
	oppByID := map[int]Opportunity{1: opps[0], 2: opps[1], 3: opps[2]}

	history, err := generateHistory(g, cfg, opps, voc)
	require.NoError(t, err)
	require.NotEmpty(t, history)

	for i, h := range history {
		require.Equal(t, i+1, h.ID)
		o, ok := oppByID[h.OpportunityID]
		require.True(t, ok, "history %d points at unknown opportunity %d", h.ID, h.OpportunityID)

		require.True(t, cfg.HistoryChangeWindow.Contains(h.ChangeDate),
			"history %d changeDate %s outside window", h.ID, h.ChangeDate)
		require.GreaterOrEqual(t, h.ChangeDate, o.CreatedDate,
			"history %d changed before its opportunity existed", h.ID)

		switch h.FieldName {
		case HistoryFieldStage:
			require.Equal(t, o.Stage, h.NewValue)
			require.NotEqual(t, h.OldValue, h.NewValue)
			require.Contains(t, voc.Stages, h.OldValue)
		case HistoryFieldCloseDate:
			require.NotNil(t, o.CloseDate)
			require.Equal(t, *o.CloseDate, h.NewValue)
			require.True(t, isYMD(h.OldValue))
		default:
			t.Fatalf("history %d has unknown fieldName %q", h.ID, h.FieldName)
		}
	}
}

func TestGenerateHistoryNeverTouchesMissingCloseDates(t *testing.T) {
	g := rng.New(22)
	cfg := DefaultConfig()
	cfg.HistoryChangesMin = 2
	cfg.HistoryChangesMax = 2
	voc := testVocab()

	opps := []Opportunity{
		{ID: 1, Stage: voc.Stages[1], CreatedDate: "2025-03-01", CloseDate: nil},
		{ID: 2, Stage: voc.Stages[3], CreatedDate: "2025-03-01", CloseDate: nil},
	}

	history, err := generateHistory(g, cfg, opps, voc)
	require.NoError(t, err)
	require.Len(t, history, 4)
	for _, h := range history {
		require.Equal(t, HistoryFieldStage, h.FieldName)
	}
}
