package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.Loader = (*Loader)(nil)

// Loader is a mock implementation of itinerary.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, raw string) (itinerary.Node, error)
}

func (l *Loader) Load(ctx context.Context, raw string) (itinerary.Node, error) {
	return l.LoadFn(ctx, raw)
}
