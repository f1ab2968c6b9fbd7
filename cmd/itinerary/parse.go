package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/extract"
	"github.com/fwojciec/itinerary/fs"
	"github.com/fwojciec/itinerary/goquery"
	itinhttp "github.com/fwojciec/itinerary/http"
	itinslog "github.com/fwojciec/itinerary/slog"
	"github.com/fwojciec/itinerary/sqlite"
	"github.com/fwojciec/itinerary/yaml"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx

	layout := itinerary.DefaultLayout()
	if c.Layout != "" {
		var err error
		if layout, err = yaml.LoadLayout(c.Layout); err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
	}

	source := itinslog.NewLoggingSource(newSource(c.Source), deps.Logger)
	raw, err := source.Read(ctx, c.Source)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.Source, err)
	}

	opts := []extract.Option{
		extract.WithLayout(layout),
		extract.WithLogger(deps.Logger),
	}
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set ITINERARY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		opts = append(opts, extract.WithStore(sqlite.NewResultStore(db)))
	}

	session := extract.NewSession(goquery.NewLoader(layout.Root), opts...)
	if err := session.Init(ctx, c.Source, raw); err != nil {
		return err
	}
	env := session.Parse(ctx)

	if !c.NoValidate {
		if err := validate(deps.Validator, env); err != nil {
			return err
		}
	}

	var w itinerary.ResultWriter = &streamWriter{w: deps.Stdout}
	if c.Output != "" {
		w = fs.NewWriter(c.Output)
	}
	if err := session.SaveResult(ctx, itinslog.NewLoggingWriter(w, deps.Logger)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "%s successfully saved\n", c.Output)
	}

	if !env.OK() {
		return fmt.Errorf("extraction failed at %s: %s", env.Field, env.Message)
	}
	return nil
}

// newSource picks the HTTP fetcher for URLs and the filesystem otherwise.
func newSource(location string) itinerary.Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return itinhttp.NewFetcher()
	}
	return fs.NewSource()
}

func validate(v itinerary.EnvelopeValidator, env *itinerary.Envelope) error {
	data, err := itinerary.MarshalEnvelope(env)
	if err != nil {
		return err
	}
	return v.ValidateEnvelope(data)
}

// streamWriter writes indented envelopes to an io.Writer.
type streamWriter struct {
	w io.Writer
}

func (s *streamWriter) WriteResult(ctx context.Context, env *itinerary.Envelope) error {
	data, err := itinerary.MarshalEnvelope(env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.w, "%s\n", data)
	return err
}
