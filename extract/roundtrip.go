package extract

import (
	"strings"

	"github.com/fwojciec/itinerary"
)

// Cell positions within a trip-detail block.
const (
	firstRowMinCells = 5

	typeCell             = 0
	departureTimeCell    = 1
	departureStationCell = 2
	trainTypeCell        = 3
	trainNumberCell      = 4

	passengerAgeCell  = 1
	passengerFareCell = 2
)

// RoundTrips pairs every trip-detail block with the date at the same
// position and returns the resulting trips. Only the train of the last trip
// carries passenger fares.
func (e *Extractor) RoundTrips() ([]itinerary.Trip, error) {
	trips, err := e.roundTrips()
	return trips, itinerary.WithField(err, FieldRoundTrips)
}

func (e *Extractor) roundTrips() ([]itinerary.Trip, error) {
	blocks := e.scope.Find(e.layout.Detail)

	dates, err := e.Dates()
	if err != nil {
		return nil, err
	}

	if len(blocks) != len(dates) {
		return nil, itinerary.Errorf(itinerary.EMISMATCH, "mismatch between travel dates (%d) and trip items (%d)", len(dates), len(blocks))
	}

	trips := make([]itinerary.Trip, 0, len(blocks))
	for i, block := range blocks {
		trip, err := e.trip(i, block)
		if err != nil {
			return nil, err
		}
		trip.Date = dates[i]

		if i == len(blocks)-1 {
			passengers, err := e.passengers(block)
			if err != nil {
				return nil, err
			}
			trip.Trains[0].Passengers = passengers
		}

		trips = append(trips, trip)
	}
	return trips, nil
}

// trip reads the trip type and its train from a detail block. The first row
// holds type, departure time, departure station, train type and number; the
// last row starts with the arrival time and ends with the arrival station.
func (e *Extractor) trip(i int, block itinerary.Node) (itinerary.Trip, error) {
	rows := block.Find("tr")
	if len(rows) == 0 {
		return itinerary.Trip{}, itinerary.Errorf(itinerary.ENOTFOUND, "trip item %d has no rows", i)
	}

	first := rows[0].Find("td")
	if len(first) < firstRowMinCells {
		return itinerary.Trip{}, itinerary.Errorf(itinerary.ENOTFOUND, "trip item %d first row has %d cells, want at least %d", i, len(first), firstRowMinCells)
	}
	last := rows[len(rows)-1].Find("td")
	if len(last) == 0 {
		return itinerary.Trip{}, itinerary.Errorf(itinerary.ENOTFOUND, "trip item %d last row has no cells", i)
	}

	train := itinerary.Train{
		DepartureTime:    e.clock(first[departureTimeCell]),
		DepartureStation: cellText(first[departureStationCell]),
		ArrivalTime:      e.clock(last[0]),
		ArrivalStation:   cellText(last[len(last)-1]),
		Type:             cellText(first[trainTypeCell]),
		Number:           cellText(first[trainNumberCell]),
	}

	return itinerary.Trip{
		Type:   cellText(first[typeCell]),
		Trains: []itinerary.Train{train},
	}, nil
}

// passengers reads the fare table that immediately follows block. Rows
// alternate header and passenger data, so odd-indexed rows are passengers.
func (e *Extractor) passengers(block itinerary.Node) ([]itinerary.Passenger, error) {
	table := block.Next()
	if table == nil {
		return nil, itinerary.Errorf(itinerary.ENOTFOUND, "passenger table not found after last trip item")
	}

	rows := table.Find("tr")
	passengers := make([]itinerary.Passenger, 0, len(rows)/2)
	for i := 1; i < len(rows); i += 2 {
		cells := rows[i].Find("td")
		if len(cells) <= passengerFareCell {
			return nil, itinerary.Errorf(itinerary.ENOTFOUND, "passenger row %d has %d cells, want at least %d", i, len(cells), passengerFareCell+1)
		}

		age, err := itinerary.ExtractAge(cells[passengerAgeCell].Text())
		if err != nil {
			return nil, err
		}

		passengers = append(passengers, itinerary.Passenger{
			Type: itinerary.ClassifyFare(cells[passengerFareCell].Text(), e.layout.ExchangeableMarker),
			Age:  age,
		})
	}
	return passengers, nil
}

// clock normalizes "08h04" into "08:04".
func (e *Extractor) clock(n itinerary.Node) string {
	return strings.Replace(cellText(n), e.layout.HourMarker, ":", 1)
}

func cellText(n itinerary.Node) string {
	return strings.TrimSpace(n.Text())
}
