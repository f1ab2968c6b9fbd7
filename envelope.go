package itinerary

import (
	"encoding/json"
	"fmt"
)

// Envelope status values.
const (
	StatusOK   = "ok"
	StatusFail = "fail"
)

// Envelope is the top-level output record. A successful envelope carries
// Result; a failed one carries Field and Message.
type Envelope struct {
	Status  string
	Field   string
	Result  *Result
	Message string
}

// Result is the payload of a successful envelope.
type Result struct {
	Trips  []TripRecord `json:"trips"`
	Custom Custom       `json:"custom"`
}

// TripRecord groups the booking identity with its pricing and trips.
type TripRecord struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Details Details `json:"details"`
}

// Details holds the total price and the dated trips of a booking.
type Details struct {
	Price      float64 `json:"price"`
	RoundTrips []Trip  `json:"roundTrips"`
}

// Custom holds extra data outside the main trip record.
type Custom struct {
	Prices []PriceItem `json:"prices"`
}

// NewOKEnvelope returns a successful envelope for result.
func NewOKEnvelope(result *Result) *Envelope {
	return &Envelope{Status: StatusOK, Result: result}
}

// NewFailEnvelope returns a failed envelope built from err's field tag and message.
func NewFailEnvelope(err error) *Envelope {
	return &Envelope{
		Status:  StatusFail,
		Field:   ErrorField(err),
		Message: ErrorMessage(err),
	}
}

// OK reports whether the envelope describes a successful extraction.
func (e *Envelope) OK() bool {
	return e.Status == StatusOK
}

// Clone returns a deep copy of the envelope.
func (e *Envelope) Clone() *Envelope {
	if e == nil {
		return nil
	}
	c := *e
	if e.Result != nil {
		c.Result = e.Result.clone()
	}
	return &c
}

func (r *Result) clone() *Result {
	c := &Result{Custom: Custom{Prices: cloneSlice(r.Custom.Prices)}}
	if r.Trips != nil {
		c.Trips = make([]TripRecord, len(r.Trips))
		for i, rec := range r.Trips {
			rec.Details.RoundTrips = cloneTrips(rec.Details.RoundTrips)
			c.Trips[i] = rec
		}
	}
	return c
}

func cloneTrips(trips []Trip) []Trip {
	if trips == nil {
		return nil
	}
	out := make([]Trip, len(trips))
	for i, trip := range trips {
		if trip.Trains != nil {
			trains := make([]Train, len(trip.Trains))
			for j, train := range trip.Trains {
				train.Passengers = cloneSlice(train.Passengers)
				trains[j] = train
			}
			trip.Trains = trains
		}
		out[i] = trip
	}
	return out
}

// cloneSlice copies s, keeping nil and empty slices distinct.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

type okEnvelope struct {
	Status string  `json:"status"`
	Result *Result `json:"result"`
}

type failEnvelope struct {
	Status string `json:"status"`
	Field  string `json:"field"`
	Result string `json:"result"`
}

// MarshalJSON encodes the envelope; "result" is an object for successful
// envelopes and the failure message otherwise.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	if e.Status == StatusOK {
		return json.Marshal(okEnvelope{Status: e.Status, Result: e.Result})
	}
	return json.Marshal(failEnvelope{Status: e.Status, Field: e.Field, Result: e.Message})
}

// UnmarshalJSON decodes either envelope shape.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status string          `json:"status"`
		Field  string          `json:"field"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Envelope{Status: raw.Status, Field: raw.Field}
	switch raw.Status {
	case StatusOK:
		var result Result
		if err := json.Unmarshal(raw.Result, &result); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		e.Result = &result
	case StatusFail:
		if len(raw.Result) > 0 {
			if err := json.Unmarshal(raw.Result, &e.Message); err != nil {
				return fmt.Errorf("decode failure message: %w", err)
			}
		}
	default:
		return Errorf(EINVALID, "unknown envelope status %q", raw.Status)
	}
	return nil
}

// MarshalEnvelope encodes env with two-space indentation.
func MarshalEnvelope(env *Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}
