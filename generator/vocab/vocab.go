// Package vocab loads the word lists and region mapping the dataset
// generator samples from. Loading happens once, up front; everything the
// generator sees afterwards is plain in-memory slices and maps.
package vocab

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Errors returned while loading vocabulary inputs. All of them indicate a
// setup problem the caller must fix; none are retried.
var (
	ErrMissingVocabFile     = errors.New("missing required vocab file")
	ErrEmptyVocabFile       = errors.New("vocab file has no non-blank lines")
	ErrInvalidRegionMapping = errors.New("invalid states/regions JSON")
)

// Paths names every input file the generator reads.
type Paths struct {
	FirstNames      string
	LastNames       string
	AccountNouns    string
	AccountSuffixes string
	Industries      string
	Stages          string
	StateToRegion   string
}

// DefaultPaths returns the conventional file layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		FirstNames:      filepath.Join(dir, "first-names.txt"),
		LastNames:       filepath.Join(dir, "last-names.txt"),
		AccountNouns:    filepath.Join(dir, "nouns.txt"),
		AccountSuffixes: filepath.Join(dir, "company-suffixes.txt"),
		Industries:      filepath.Join(dir, "industries.txt"),
		Stages:          filepath.Join(dir, "stages.txt"),
		StateToRegion:   filepath.Join(dir, "regions.json"),
	}
}

// Bundle holds every loaded vocabulary the generator samples from.
type Bundle struct {
	FirstNames      []string
	LastNames       []string
	AccountNouns    []string
	AccountSuffixes []string
	Industries      []string
	Stages          []string
	StateToRegion   map[string]string
}

// Load reads all vocabulary files and the region mapping.
func Load(p Paths) (*Bundle, error) {
	b := &Bundle{}
	for _, f := range []struct {
		dst  *[]string
		path string
	}{
		{&b.FirstNames, p.FirstNames},
		{&b.LastNames, p.LastNames},
		{&b.AccountNouns, p.AccountNouns},
		{&b.AccountSuffixes, p.AccountSuffixes},
		{&b.Industries, p.Industries},
		{&b.Stages, p.Stages},
	} {
		items, err := ReadTokenList(f.path)
		if err != nil {
			return nil, err
		}
		*f.dst = items
	}

	mapping, err := ReadRegionMapping(p.StateToRegion)
	if err != nil {
		return nil, err
	}
	b.StateToRegion = mapping
	return b, nil
}

// ReadTokenList reads a newline-delimited token file into an ordered list of
// non-empty trimmed strings.
func ReadTokenList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (point the generator configuration at your input data)",
				ErrMissingVocabFile, path)
		}
		return nil, fmt.Errorf("open vocab file %s: %w", path, err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		items = append(items, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab file %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyVocabFile, path)
	}
	return items, nil
}

// ReadRegionMapping reads a state->region JSON file. Two shapes are accepted:
//
//	{"CA": "West", ...}
//	{"states": [{"state": "CA", "region": "West"}, ...]}
//
// Both normalize to a flat map.
func ReadRegionMapping(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (point the generator configuration at your input data)",
				ErrMissingVocabFile, path)
		}
		return nil, fmt.Errorf("read regions file %s: %w", path, err)
	}
	return ParseRegionMapping(raw)
}

// ParseRegionMapping normalizes either supported JSON shape to a flat
// state->region map.
func ParseRegionMapping(raw []byte) (map[string]string, error) {
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested struct {
		States []struct {
			State  string `json:"state"`
			Region string `json:"region"`
		} `json:"states"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		mapping := make(map[string]string)
		for _, e := range nested.States {
			if e.State != "" && e.Region != "" {
				mapping[e.State] = e.Region
			}
		}
		if len(mapping) > 0 {
			return mapping, nil
		}
	}

	return nil, fmt.Errorf(
		`%w: supported shapes are {"CA": "West", ...} or {"states": [{"state": "CA", "region": "West"}, ...]}`,
		ErrInvalidRegionMapping)
}

// RegionStates inverts the state->region mapping. Regions and the states
// within each region come back sorted so callers can iterate
// deterministically.
func (b *Bundle) RegionStates() (regions []string, byRegion map[string][]string) {
	byRegion = make(map[string][]string)
	for st, rg := range b.StateToRegion {
		byRegion[rg] = append(byRegion[rg], st)
	}
	for rg, states := range byRegion {
		sort.Strings(states)
		regions = append(regions, rg)
	}
	sort.Strings(regions)
	return regions, byRegion
}
