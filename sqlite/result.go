package sqlite

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/itinerary"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ itinerary.ResultStore = (*ResultStore)(nil)

// ResultStore implements itinerary.ResultStore using SQLite.
type ResultStore struct {
	db *DB
}

// NewResultStore creates a new ResultStore.
func NewResultStore(db *DB) *ResultStore {
	return &ResultStore{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateResult stores a new result with a generated ID, timestamp and
// content hash.
func (s *ResultStore) CreateResult(ctx context.Context, r *itinerary.StoredResult) error {
	if err := r.Validate(); err != nil {
		return err
	}

	envelope, err := json.Marshal(r.Envelope)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()
	r.ContentHash = hashContent(r.Content)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (id, source, content_hash, status, field, envelope, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Source, r.ContentHash, r.Envelope.Status, r.Envelope.Field, string(envelope),
		r.CreatedAt.Format(timeLayout))

	return err
}

// FindResults retrieves stored results matching the filter, newest first.
func (s *ResultStore) FindResults(ctx context.Context, filter itinerary.ResultFilter) ([]*itinerary.StoredResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, envelope, created_at FROM results WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*itinerary.StoredResult
	for rows.Next() {
		var r itinerary.StoredResult
		var envelope, createdAt string

		if err := rows.Scan(&r.ID, &r.Source, &r.ContentHash, &envelope, &createdAt); err != nil {
			return nil, err
		}

		r.Envelope = &itinerary.Envelope{}
		if err := json.Unmarshal([]byte(envelope), r.Envelope); err != nil {
			return nil, fmt.Errorf("failed to decode envelope %s: %w", r.ID, err)
		}

		if r.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		results = append(results, &r)
	}

	return results, rows.Err()
}
