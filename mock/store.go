package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of itinerary.ResultStore.
type ResultStore struct {
	CreateResultFn func(ctx context.Context, r *itinerary.StoredResult) error
	FindResultsFn  func(ctx context.Context, filter itinerary.ResultFilter) ([]*itinerary.StoredResult, error)
}

func (s *ResultStore) CreateResult(ctx context.Context, r *itinerary.StoredResult) error {
	return s.CreateResultFn(ctx, r)
}

func (s *ResultStore) FindResults(ctx context.Context, filter itinerary.ResultFilter) ([]*itinerary.StoredResult, error) {
	return s.FindResultsFn(ctx, filter)
}
