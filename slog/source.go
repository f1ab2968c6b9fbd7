// Package slog wraps itinerary services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure LoggingSource implements itinerary.Source.
var _ itinerary.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with read logging.
type LoggingSource struct {
	next   itinerary.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next itinerary.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Read delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Read(ctx context.Context, location string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read document",
			"location", location,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, location)
}
