package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/mock"
	itinslog "github.com/fwojciec/itinerary/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_WriteResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var got *itinerary.Envelope
	inner := &mock.ResultWriter{
		WriteResultFn: func(ctx context.Context, env *itinerary.Envelope) error {
			got = env
			return nil
		},
	}
	env := &itinerary.Envelope{Status: itinerary.StatusFail, Field: "price", Message: "bad"}

	err := itinslog.NewLoggingWriter(inner, logger).WriteResult(context.Background(), env)

	require.NoError(t, err)
	assert.Same(t, env, got)
	output := buf.String()
	assert.Contains(t, output, "write result")
	assert.Contains(t, output, "status=fail")
	assert.Contains(t, output, "field=price")
}
