package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.Source = (*Source)(nil)

// Source is a mock implementation of itinerary.Source.
type Source struct {
	ReadFn func(ctx context.Context, location string) (string, error)
}

func (s *Source) Read(ctx context.Context, location string) (string, error) {
	return s.ReadFn(ctx, location)
}
