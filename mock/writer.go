package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of itinerary.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, env *itinerary.Envelope) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, env *itinerary.Envelope) error {
	return w.WriteResultFn(ctx, env)
}

var _ itinerary.EnvelopeValidator = (*EnvelopeValidator)(nil)

// EnvelopeValidator is a mock implementation of itinerary.EnvelopeValidator.
type EnvelopeValidator struct {
	ValidateEnvelopeFn func(data []byte) error
}

func (v *EnvelopeValidator) ValidateEnvelope(data []byte) error {
	return v.ValidateEnvelopeFn(data)
}
