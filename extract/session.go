package extract

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/itinerary"
)

// Session owns one loaded document and the envelope produced from it.
// Init, Parse and result reads are serialized, so a new document can never
// be loaded while a parse is running.
type Session struct {
	mu sync.Mutex

	loader itinerary.Loader
	layout itinerary.Layout
	store  itinerary.ResultStore
	logger *slog.Logger

	scope  itinerary.Node
	source string
	raw    string
	result *itinerary.Envelope
}

// Option configures a Session.
type Option func(*Session)

// WithLayout sets the marker classes used for extraction.
// Defaults to itinerary.DefaultLayout().
func WithLayout(layout itinerary.Layout) Option {
	return func(s *Session) {
		s.layout = layout
	}
}

// WithStore records every produced envelope in store.
func WithStore(store itinerary.ResultStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger for parse outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a Session loading documents through loader.
func NewSession(loader itinerary.Loader, opts ...Option) *Session {
	s := &Session{
		loader: loader,
		layout: itinerary.DefaultLayout(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads raw as the current document and clears any previous result.
// source labels the document in stored results. On failure the session is
// left without a document.
func (s *Session) Init(ctx context.Context, source, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scope = nil
	s.result = nil
	s.source = source
	s.raw = raw

	scope, err := s.loader.Load(ctx, raw)
	if err != nil {
		return itinerary.WithField(err, FieldInit)
	}
	s.scope = scope
	return nil
}

// Parse extracts every field of the current document, in order, and stores
// a private copy of the resulting envelope. The first failing field stops
// extraction and produces a failure envelope instead. Parse never returns an
// error.
func (s *Session) Parse(ctx context.Context) *itinerary.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	begin := time.Now()
	env := s.parse()
	s.result = env.Clone()

	s.logger.Info("parse",
		"source", s.source,
		"status", env.Status,
		"field", env.Field,
		"duration", time.Since(begin),
	)

	if s.store != nil {
		stored := &itinerary.StoredResult{Source: s.source, Content: s.raw, Envelope: env}
		if err := s.store.CreateResult(ctx, stored); err != nil {
			s.logger.Error("store result", "source", s.source, "err", err)
		}
	}

	return env
}

func (s *Session) parse() *itinerary.Envelope {
	if s.scope == nil {
		return itinerary.NewFailEnvelope(itinerary.WithField(itinerary.Errorf(itinerary.EINVALID, "no document loaded"), FieldInit))
	}

	e := NewExtractor(s.scope, s.layout)

	name, err := e.Name()
	if err != nil {
		return itinerary.NewFailEnvelope(err)
	}
	code, err := e.Code()
	if err != nil {
		return itinerary.NewFailEnvelope(err)
	}
	price, err := e.Price()
	if err != nil {
		return itinerary.NewFailEnvelope(err)
	}
	prices, err := e.Prices()
	if err != nil {
		return itinerary.NewFailEnvelope(err)
	}
	roundTrips, err := e.RoundTrips()
	if err != nil {
		return itinerary.NewFailEnvelope(err)
	}

	return itinerary.NewOKEnvelope(&itinerary.Result{
		Trips: []itinerary.TripRecord{{
			Code: code,
			Name: name,
			Details: itinerary.Details{
				Price:      price,
				RoundTrips: roundTrips,
			},
		}},
		Custom: itinerary.Custom{Prices: prices},
	})
}

// Result returns a copy of the envelope produced by the last Parse.
// Returns ENORESULT if Parse has not run since the last Init.
func (s *Session) Result() (*itinerary.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return nil, itinerary.Errorf(itinerary.ENORESULT, "no parse result found, run parse first")
	}
	return s.result.Clone(), nil
}

// SaveResult writes the current envelope through w.
// Returns ENORESULT if Parse has not run since the last Init.
func (s *Session) SaveResult(ctx context.Context, w itinerary.ResultWriter) error {
	env, err := s.Result()
	if err != nil {
		return err
	}
	return w.WriteResult(ctx, env)
}
