// Package generator fabricates an internally consistent synthetic CRM
// dataset: sales reps, customer accounts, opportunities, territories, and
// opportunity change history. Generation is a single deterministic pass:
// same seed and vocabulary in, byte-identical dataset out, with every
// invariant re-checkable through Validate.
package generator

// Rep is a sales representative bound to exactly one territory.
type Rep struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	HomeState   string `json:"homeState"`
	Region      string `json:"region"`
	Quota       int    `json:"quota"`
	TerritoryID int    `json:"territoryId"`
}

// Account is a customer account owned by exactly one rep. Its territory and
// state always mirror the owning rep's.
type Account struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	AnnualRevenue int    `json:"annualRevenue"`
	NumDevelopers int    `json:"numDevelopers"`
	State         string `json:"state"`
	Industry      string `json:"industry"`
	IsCustomer    bool   `json:"isCustomer"`
	InPipeline    bool   `json:"inPipeline"`
	RepID         int    `json:"repId"`
	TerritoryID   int    `json:"territoryId"`
}

// Opportunity is a potential deal on an account. CloseDate is nil for the
// configured fraction of opportunities that have no close date yet; all
// dates are YYYY-MM-DD strings.
type Opportunity struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Amount      int     `json:"amount"`
	Stage       string  `json:"stage"`
	CreatedDate string  `json:"createdDate"`
	CloseDate   *string `json:"closeDate"`
	RepID       int     `json:"repId"`
	AccountID   int     `json:"accountId"`
}

// Territory groups reps and accounts. Territories are derived one-to-one
// from the industries present among generated accounts.
type Territory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Field names that may appear in OpportunityHistory records.
const (
	HistoryFieldStage     = "stage"
	HistoryFieldCloseDate = "closeDate"
)

// OpportunityHistory records one field change on an opportunity.
type OpportunityHistory struct {
	ID            int    `json:"id"`
	OpportunityID int    `json:"opportunityId"`
	FieldName     string `json:"fieldName"`
	OldValue      string `json:"oldValue"`
	NewValue      string `json:"newValue"`
	ChangeDate    string `json:"changeDate"`
}

// Dataset is the complete output of one generation run. Records are plain
// values; nothing in the generator retains a reference after Generate
// returns.
type Dataset struct {
	Reps          []Rep
	Accounts      []Account
	Opportunities []Opportunity
	Territories   []Territory
	History       []OpportunityHistory
}
