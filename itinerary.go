// Package itinerary extracts a structured itinerary record from a train
// booking confirmation document. It reads passenger name, booking code,
// pricing and train trips, and reports either a normalized result envelope
// or a failure envelope naming the field that could not be extracted.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package itinerary

import "context"

// Node is a queryable element of a loaded document. It is the only view
// the extractor has of the document engine.
type Node interface {
	// Find returns the descendants matching selector in document order.
	Find(selector string) []Node

	// Text returns the combined text of the node and its descendants.
	Text() string

	// Next returns the element sibling immediately following the node,
	// or nil if there is none.
	Next() Node
}

// Loader turns raw document text into a root scope node.
type Loader interface {
	Load(ctx context.Context, raw string) (Node, error)
}

// Source reads raw document text from a location (file path or URL).
type Source interface {
	Read(ctx context.Context, location string) (string, error)
}

// ResultWriter persists a produced envelope.
type ResultWriter interface {
	WriteResult(ctx context.Context, env *Envelope) error
}

// EnvelopeValidator checks serialized envelopes against the output schema.
type EnvelopeValidator interface {
	ValidateEnvelope(data []byte) error
}
