package generator

import (
	"fmt"
	"time"
)

// Validate re-derives every dataset invariant from scratch and reports the
// first violation with the offending entity id. It never mutates the
// dataset; tests and the CLI both run it as an independent check on
// Generate's output.
func Validate(ds *Dataset, cfg Config) error {
	if len(ds.Reps) != cfg.NumReps {
		return fmt.Errorf("expected %d reps, got %d", cfg.NumReps, len(ds.Reps))
	}
	if len(ds.Accounts) != cfg.NumAccounts {
		return fmt.Errorf("expected %d accounts, got %d", cfg.NumAccounts, len(ds.Accounts))
	}
	if len(ds.Opportunities) != cfg.NumOpportunities {
		return fmt.Errorf("expected %d opportunities, got %d", cfg.NumOpportunities, len(ds.Opportunities))
	}

	if err := checkSequencing(ds); err != nil {
		return err
	}
	if err := checkNameUniqueness(ds); err != nil {
		return err
	}

	repByID := make(map[int]Rep, len(ds.Reps))
	for _, r := range ds.Reps {
		repByID[r.ID] = r
	}
	acctByID := make(map[int]Account, len(ds.Accounts))
	for _, a := range ds.Accounts {
		acctByID[a.ID] = a
	}
	terrByID := make(map[int]Territory, len(ds.Territories))
	for _, t := range ds.Territories {
		terrByID[t.ID] = t
	}

	if err := checkAccountRelations(ds, repByID, terrByID); err != nil {
		return err
	}

	oppsByAccount := make(map[int]int, len(ds.Accounts))
	acctTotals := make(map[int]int, len(ds.Accounts))
	for _, o := range ds.Opportunities {
		acct, ok := acctByID[o.AccountID]
		if !ok {
			return fmt.Errorf("opportunity %d references unknown accountId %d", o.ID, o.AccountID)
		}
		if _, ok := repByID[o.RepID]; !ok {
			return fmt.Errorf("opportunity %d references unknown repId %d", o.ID, o.RepID)
		}
		if o.RepID != acct.RepID {
			return fmt.Errorf("opportunity %d repId %d must equal its account's repId %d",
				o.ID, o.RepID, acct.RepID)
		}
		if o.Amount < 0 {
			return fmt.Errorf("opportunity %d amount %d must not be negative", o.ID, o.Amount)
		}
		if !isYMD(o.CreatedDate) {
			return fmt.Errorf("opportunity %d createdDate %q must be YYYY-MM-DD", o.ID, o.CreatedDate)
		}
		if !cfg.CreatedWindow.Contains(o.CreatedDate) {
			return fmt.Errorf("opportunity %d createdDate %s outside created window", o.ID, o.CreatedDate)
		}
		oppsByAccount[o.AccountID]++
		acctTotals[o.AccountID] += o.Amount
	}

	for _, a := range ds.Accounts {
		if a.InPipeline != (oppsByAccount[a.ID] > 0) {
			return fmt.Errorf("account %d inPipeline=%v but it has %d opportunities",
				a.ID, a.InPipeline, oppsByAccount[a.ID])
		}
		if tam := cfg.AccountTAM(a); acctTotals[a.ID] > tam {
			return fmt.Errorf("account %d violates TAM cap: total=%d TAM=%d", a.ID, acctTotals[a.ID], tam)
		}
	}

	if err := checkCloseDates(ds, cfg); err != nil {
		return err
	}
	if err := checkHistory(ds, cfg); err != nil {
		return err
	}

	total := 0
	for _, o := range ds.Opportunities {
		total += o.Amount
	}
	if total < cfg.TotalPipelineMin || total > cfg.TotalPipelineMax {
		return fmt.Errorf("total pipeline %d outside range [%d, %d]",
			total, cfg.TotalPipelineMin, cfg.TotalPipelineMax)
	}

	for _, r := range ds.Reps {
		if r.Quota <= 0 {
			return fmt.Errorf("rep %d quota %d must be positive", r.ID, r.Quota)
		}
		if r.HomeState == "" {
			return fmt.Errorf("rep %d is missing a home state", r.ID)
		}
		if r.Region == "" {
			return fmt.Errorf("rep %d is missing a region", r.ID)
		}
	}

	return nil
}

func checkSequencing(ds *Dataset) error {
	for i, r := range ds.Reps {
		if r.ID != i+1 {
			return fmt.Errorf("rep ids must be sequential from 1: index %d has id %d", i, r.ID)
		}
	}
	for i, a := range ds.Accounts {
		if a.ID != i+1 {
			return fmt.Errorf("account ids must be sequential from 1: index %d has id %d", i, a.ID)
		}
	}
	for i, o := range ds.Opportunities {
		if o.ID != i+1 {
			return fmt.Errorf("opportunity ids must be sequential from 1: index %d has id %d", i, o.ID)
		}
	}
	for i, t := range ds.Territories {
		if t.ID != i+1 {
			return fmt.Errorf("territory ids must be sequential from 1: index %d has id %d", i, t.ID)
		}
	}
	for i, h := range ds.History {
		if h.ID != i+1 {
			return fmt.Errorf("history ids must be sequential from 1: index %d has id %d", i, h.ID)
		}
	}
	return nil
}

func checkNameUniqueness(ds *Dataset) error {
	for kind, names := range map[string][]string{
		"rep":         repNames(ds.Reps),
		"account":     accountNames(ds.Accounts),
		"opportunity": oppNames(ds.Opportunities),
		"territory":   territoryNames(ds.Territories),
	} {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if seen[n] {
				return fmt.Errorf("duplicate %s name %q", kind, n)
			}
			seen[n] = true
		}
	}
	return nil
}

func checkAccountRelations(ds *Dataset, repByID map[int]Rep, terrByID map[int]Territory) error {
	for _, a := range ds.Accounts {
		rep, ok := repByID[a.RepID]
		if !ok {
			return fmt.Errorf("account %d references unknown repId %d", a.ID, a.RepID)
		}
		if _, ok := terrByID[a.TerritoryID]; !ok {
			return fmt.Errorf("account %d references unknown territoryId %d", a.ID, a.TerritoryID)
		}
		if a.TerritoryID != rep.TerritoryID {
			return fmt.Errorf("account %d territoryId %d must equal its rep's territoryId %d",
				a.ID, a.TerritoryID, rep.TerritoryID)
		}
		if a.State != rep.HomeState {
			return fmt.Errorf("account %d state %q must equal its rep's homeState %q",
				a.ID, a.State, rep.HomeState)
		}
		if a.NumDevelopers < 1 {
			return fmt.Errorf("account %d must have at least one developer, got %d", a.ID, a.NumDevelopers)
		}
	}
	return nil
}

func checkCloseDates(ds *Dataset, cfg Config) error {
	recent, missing := 0, 0
	for _, o := range ds.Opportunities {
		if o.CloseDate == nil {
			missing++
			continue
		}
		d := *o.CloseDate
		switch {
		case cfg.RecentCloseWindow.Contains(d):
			recent++
		case cfg.FutureCloseWindow.Contains(d):
		default:
			return fmt.Errorf("opportunity %d closeDate %s outside both close windows", o.ID, d)
		}
	}
	if want := cfg.RecentCloseCount(); recent != want {
		return fmt.Errorf("expected exactly %d recent closeDates, got %d", want, recent)
	}
	if want := cfg.MissingCloseCount(); missing != want {
		return fmt.Errorf("expected exactly %d missing closeDates, got %d", want, missing)
	}
	return nil
}

func checkHistory(ds *Dataset, cfg Config) error {
	oppByID := make(map[int]Opportunity, len(ds.Opportunities))
	for _, o := range ds.Opportunities {
		oppByID[o.ID] = o
	}
	for _, h := range ds.History {
		if _, ok := oppByID[h.OpportunityID]; !ok {
			return fmt.Errorf("history %d references unknown opportunityId %d", h.ID, h.OpportunityID)
		}
		if h.FieldName != HistoryFieldStage && h.FieldName != HistoryFieldCloseDate {
			return fmt.Errorf("history %d has unknown fieldName %q", h.ID, h.FieldName)
		}
		if !cfg.HistoryChangeWindow.Contains(h.ChangeDate) {
			return fmt.Errorf("history %d changeDate %s outside history window", h.ID, h.ChangeDate)
		}
	}
	return nil
}

func isYMD(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

func repNames(reps []Rep) []string {
	out := make([]string, len(reps))
	for i, r := range reps {
		out[i] = r.Name
	}
	return out
}

func accountNames(accounts []Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.Name
	}
	return out
}

func oppNames(opps []Opportunity) []string {
	out := make([]string, len(opps))
	for i, o := range opps {
		out[i] = o.Name
	}
	return out
}

func territoryNames(territories []Territory) []string {
	out := make([]string, len(territories))
	for i, t := range territories {
		out[i] = t.Name
	}
	return out
}
