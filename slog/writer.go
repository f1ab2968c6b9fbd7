package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure LoggingWriter implements itinerary.ResultWriter.
var _ itinerary.ResultWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a ResultWriter with write logging.
type LoggingWriter struct {
	next   itinerary.ResultWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next itinerary.ResultWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteResult(ctx context.Context, env *itinerary.Envelope) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write result",
			"status", env.Status,
			"field", env.Field,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, env)
}
