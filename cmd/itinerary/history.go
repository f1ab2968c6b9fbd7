package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/sqlite"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Status != "" && c.Status != itinerary.StatusOK && c.Status != itinerary.StatusFail {
		return fmt.Errorf("invalid status %q, want ok or fail", c.Status)
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	filter := itinerary.ResultFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	results, err := sqlite.NewResultStore(db).FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'itinerary parse --db' to record one.")
		return nil
	}

	for _, r := range results {
		field := r.Envelope.Field
		if field == "" {
			field = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Envelope.Status, field, r.Source)
	}
	return nil
}
