package generator

import (
	"fmt"

	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// testVocab builds an in-memory vocabulary bundle so generator tests never
// touch disk.
func testVocab() *vocab.Bundle {
	firsts := make([]string, 0, 40)
	lasts := make([]string, 0, 40)
	nouns := make([]string, 0, 60)
	for i := 0; i < 40; i++ {
		firsts = append(firsts, fmt.Sprintf("First%02d", i))
		lasts = append(lasts, fmt.Sprintf("Last%02d", i))
	}
	for i := 0; i < 60; i++ {
		nouns = append(nouns, fmt.Sprintf("Noun%02d", i))
	}
	return &vocab.Bundle{
		FirstNames:      firsts,
		LastNames:       lasts,
		AccountNouns:    nouns,
		AccountSuffixes: []string{"Inc", "LLC", "Corp", "Labs", "Holdings"},
		Industries:      []string{"Healthcare", "Retail", "Manufacturing", "Education", "Utilities"},
		Stages: []string{
			"0 - New Opportunity", "1 - Qualification", "2 - Discovery", "3 - Solutioning",
			"4 - Proposal", "5 - Negotiation", "6 - Awaiting Signature",
		},
		StateToRegion: map[string]string{
			"CA": "West", "OR": "West", "WA": "West",
			"TX": "South", "FL": "South", "GA": "South",
			"NY": "Northeast", "MA": "Northeast", "PA": "Northeast",
			"IL": "Midwest", "OH": "Midwest", "MN": "Midwest",
		},
	}
}
