package itinerary

// FareType classifies a passenger ticket as exchangeable or not.
type FareType string

// FareType constants.
const (
	FareExchangeable    FareType = "échangeable"
	FareNonExchangeable FareType = "non échangeable"
)

// Passenger holds the fare details of one traveller.
type Passenger struct {
	Type FareType `json:"type"`
	Age  string   `json:"age"` // raw parenthesized text, e.g. "(26 à 59 ans)"
}

// Train is one leg of a trip. Passengers is only set on the train of the
// last trip in document order.
type Train struct {
	DepartureTime    string      `json:"departureTime"`
	DepartureStation string      `json:"departureStation"`
	ArrivalTime      string      `json:"arrivalTime"`
	ArrivalStation   string      `json:"arrivalStation"`
	Type             string      `json:"type"`
	Number           string      `json:"number"`
	Passengers       []Passenger `json:"passengers,omitzero"`
}

// Trip is a dated journey. It holds exactly one train.
type Trip struct {
	Type   string  `json:"type"`
	Date   string  `json:"date"`
	Trains []Train `json:"trains"`
}

// PriceItem wraps a single line-item price.
type PriceItem struct {
	Value float64 `json:"value"`
}
