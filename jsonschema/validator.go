// Package jsonschema validates serialized envelopes against the published
// output schema.
package jsonschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/itinerary"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed envelope.schema.json
var envelopeSchema []byte

const schemaURL = "envelope.schema.json"

// Ensure Validator implements itinerary.EnvelopeValidator at compile time.
var _ itinerary.EnvelopeValidator = (*Validator)(nil)

// Validator checks envelope JSON against the embedded schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded envelope schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(envelopeSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateEnvelope returns EINVALID if data is not a valid envelope.
func (v *Validator) ValidateEnvelope(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return itinerary.Errorf(itinerary.EINVALID, "envelope is not JSON: %v", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return itinerary.Errorf(itinerary.EINVALID, "envelope does not match schema: %v", err)
	}
	return nil
}
