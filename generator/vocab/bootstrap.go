package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
)

// Starter content for the vocabularies gofakeit cannot produce sensibly.
var (
	starterSuffixes = []string{
		"Inc", "LLC", "Corp", "Holdings", "Labs", "Systems", "Technologies", "Group", "Partners", "Co",
	}
	starterIndustries = []string{
		"Construction", "Education", "Financial Services", "Healthcare", "Hospitality",
		"Information", "Manufacturing", "Professional Services", "Retail", "Transportation", "Utilities",
	}
	starterStages = []string{
		"0 - New Opportunity", "1 - Qualification", "2 - Discovery", "3 - Solutioning",
		"4 - Proposal", "5 - Negotiation", "6 - Awaiting Signature",
	}
	starterRegions = map[string]string{
		"CA": "West", "OR": "West", "WA": "West", "CO": "West", "AZ": "West",
		"TX": "South", "FL": "South", "GA": "South", "NC": "South", "TN": "South",
		"IL": "Midwest", "OH": "Midwest", "MI": "Midwest", "MN": "Midwest", "WI": "Midwest",
		"NY": "Northeast", "MA": "Northeast", "PA": "Northeast", "NJ": "Northeast", "CT": "Northeast",
	}
)

// WriteStarterFiles writes a usable set of vocabulary files into dir so a
// fresh checkout can generate a dataset without hand-curating word lists.
// Names come from a seeded faker; the ordinal stage ladder, industry list,
// suffixes, and region mapping are fixed starter content. Existing files are
// overwritten.
func WriteStarterFiles(dir string, seed int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create vocab dir %s: %w", dir, err)
	}

	faker := gofakeit.New(seed)
	p := DefaultPaths(dir)

	for _, f := range []struct {
		path  string
		items []string
	}{
		{p.FirstNames, distinct(120, faker.FirstName)},
		{p.LastNames, distinct(120, faker.LastName)},
		{p.AccountNouns, distinct(150, func() string { return capitalize(faker.Noun()) })},
		{p.AccountSuffixes, starterSuffixes},
		{p.Industries, starterIndustries},
		{p.Stages, starterStages},
	} {
		if err := writeTokenList(f.path, f.items); err != nil {
			return err
		}
	}

	raw, err := json.MarshalIndent(starterRegions, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.StateToRegion, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p.StateToRegion, err)
	}
	return nil
}

// distinct draws from the faker until it has n unique tokens, sorted for a
// stable file layout.
func distinct(n int, draw func() string) []string {
	seen := make(map[string]bool, n)
	// The fakers repeat long before n draws; cap the attempts so a tiny
	// underlying word pool cannot loop forever.
	for attempts := 0; len(seen) < n && attempts < n*50; attempts++ {
		if tok := draw(); tok != "" {
			seen[tok] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func writeTokenList(path string, items []string) error {
	var buf []byte
	for _, it := range items {
		buf = append(buf, it...)
		buf = append(buf, '\n')
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
