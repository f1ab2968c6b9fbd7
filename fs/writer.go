package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/itinerary"
)

// Ensure Writer implements itinerary.ResultWriter at compile time.
var _ itinerary.ResultWriter = (*Writer)(nil)

// Writer writes envelopes as indented JSON files. The file is written to a
// temporary sibling first and renamed into place, so readers never see a
// partial result.
type Writer struct {
	path string
}

// NewWriter creates a new Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteResult encodes env and atomically replaces the target file.
func (w *Writer) WriteResult(ctx context.Context, env *itinerary.Envelope) error {
	data, err := itinerary.MarshalEnvelope(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
