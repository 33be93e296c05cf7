// Package dataset serializes a generated dataset to its JSON document form
// and reads it back. The core generator never touches disk; this is the
// collaborator that owns the on-disk shape.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/blwy10/cognition-revops-agent/generator"
)

// SchemaTag identifies the document shape this package writes.
const SchemaTag = "revops-dataset"

// ErrUnknownSchema reports a document whose schema tag this package does not
// understand.
var ErrUnknownSchema = errors.New("unknown dataset schema tag")

//go:embed schema.json
var rawSchema []byte

var compiledSchema = mustCompileSchema()

// Document is the on-disk form of one generation run: the five collections
// plus provenance metadata.
type Document struct {
	Schema        string                         `json:"schema"`
	GeneratedAt   time.Time                      `json:"generated_at"`
	RunID         uuid.UUID                      `json:"run_id"`
	Reps          []generator.Rep                `json:"reps"`
	Accounts      []generator.Account            `json:"accounts"`
	Opportunities []generator.Opportunity        `json:"opportunities"`
	Territories   []generator.Territory          `json:"territories"`
	History       []generator.OpportunityHistory `json:"opportunityHistory"`
}

// New wraps a generated dataset in a document with fresh provenance
// metadata. Nil collections become empty arrays so the document always
// matches its schema.
func New(ds *generator.Dataset) *Document {
	return &Document{
		Schema:        SchemaTag,
		GeneratedAt:   time.Now().UTC(),
		RunID:         uuid.New(),
		Reps:          orEmpty(ds.Reps),
		Accounts:      orEmpty(ds.Accounts),
		Opportunities: orEmpty(ds.Opportunities),
		Territories:   orEmpty(ds.Territories),
		History:       orEmpty(ds.History),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Dataset re-assembles the document's collections into the generator's
// dataset form, e.g. to re-run the validator on a loaded document.
func (d *Document) Dataset() *generator.Dataset {
	return &generator.Dataset{
		Reps:          d.Reps,
		Accounts:      d.Accounts,
		Opportunities: d.Opportunities,
		Territories:   d.Territories,
		History:       d.History,
	}
}

// Write serializes the document as indented JSON.
func (d *Document) Write(path string) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset document: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write dataset document %s: %w", path, err)
	}
	return nil
}

// Read loads a document, checking it against the embedded JSON Schema before
// decoding so shape problems surface as schema errors rather than scattered
// zero values.
func Read(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset document %s: %w", path, err)
	}

	var shape any
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("decode dataset document %s: %w", path, err)
	}
	if err := compiledSchema.Validate(shape); err != nil {
		return nil, fmt.Errorf("dataset document %s failed schema validation: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset document %s: %w", path, err)
	}
	if doc.Schema != SchemaTag {
		return nil, fmt.Errorf("%w: %q (expected %q)", ErrUnknownSchema, doc.Schema, SchemaTag)
	}
	return &doc, nil
}

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("dataset-schema.json", bytes.NewReader(rawSchema)); err != nil {
		panic(fmt.Sprintf("register dataset schema: %v", err))
	}
	schema, err := compiler.Compile("dataset-schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile dataset schema: %v", err))
	}
	return schema
}
