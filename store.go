package itinerary

import (
	"context"
	"time"
)

// StoredResult is an envelope recorded together with the document it came from.
type StoredResult struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	Content     string    `json:"-"` // hashed on create, never stored
	Envelope    *Envelope `json:"envelope"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the stored result contains invalid fields.
func (r *StoredResult) Validate() error {
	if r.Envelope == nil {
		return Errorf(EINVALID, "stored result envelope required")
	}
	return nil
}

// ResultStore records produced envelopes.
type ResultStore interface {
	// CreateResult stores a new result, assigning ID and CreatedAt.
	CreateResult(ctx context.Context, r *StoredResult) error

	// FindResults retrieves stored results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*StoredResult, error)
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Source *string `json:"source"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
