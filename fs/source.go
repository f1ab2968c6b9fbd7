// Package fs provides file-based reading of confirmation documents and
// writing of result envelopes.
package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/itinerary"
)

// Ensure Source implements itinerary.Source at compile time.
var _ itinerary.Source = (*Source)(nil)

// Source reads documents from the local filesystem.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Read returns the content of the file at path.
// Returns ENOTFOUND if the file does not exist.
func (s *Source) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", itinerary.Errorf(itinerary.ENOTFOUND, "document %q not found", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
