// Package extract reads booking fields out of a confirmation document and
// assembles them into a result envelope.
package extract

import (
	"strings"

	"github.com/fwojciec/itinerary"
)

// Field tags attached to extraction errors.
const (
	FieldInit       = "init"
	FieldName       = "name"
	FieldCode       = "code"
	FieldPrice      = "price"
	FieldPrices     = "prices"
	FieldDates      = "dates"
	FieldRoundTrips = "roundtrips"
)

// Extractor reads individual fields from a document scope. Every error it
// returns carries the field tag of the failing operation.
type Extractor struct {
	scope  itinerary.Node
	layout itinerary.Layout
}

// NewExtractor returns an Extractor querying within scope.
func NewExtractor(scope itinerary.Node, layout itinerary.Layout) *Extractor {
	return &Extractor{scope: scope, layout: layout}
}

// Name returns the passenger name.
func (e *Extractor) Name() (string, error) {
	name, err := e.labeled(e.layout.Name, "passenger name")
	return name, itinerary.WithField(err, FieldName)
}

// Code returns the booking reference.
func (e *Extractor) Code() (string, error) {
	code, err := e.labeled(e.layout.Code, "booking reference")
	return code, itinerary.WithField(err, FieldCode)
}

// labeled reads "Label : value" text from the last element matching selector.
func (e *Extractor) labeled(selector, what string) (string, error) {
	nodes := e.scope.Find(selector)
	if len(nodes) == 0 {
		return "", itinerary.Errorf(itinerary.ENOTFOUND, "%s element %q not found", what, selector)
	}

	parts := strings.Split(nodes[len(nodes)-1].Text(), ":")
	if len(parts) < 2 {
		return "", itinerary.Errorf(itinerary.ENOTFOUND, "%s text has no label separator", what)
	}
	return strings.TrimSpace(parts[1]), nil
}

// Price returns the total booking price.
func (e *Extractor) Price() (float64, error) {
	nodes := e.scope.Find(e.layout.Price)
	if len(nodes) == 0 {
		return 0, itinerary.WithField(itinerary.Errorf(itinerary.ENOTFOUND, "total price element %q not found", e.layout.Price), FieldPrice)
	}

	price, err := itinerary.ParseMoney(nodes[0].Text())
	if err != nil {
		return 0, itinerary.WithField(err, FieldPrice)
	}
	return price, nil
}

// Prices returns the line-item prices in document order. A document
// without line items yields an empty list.
func (e *Extractor) Prices() ([]itinerary.PriceItem, error) {
	headers := e.scope.Find(e.layout.LineItem)
	prices := make([]itinerary.PriceItem, 0, len(headers))
	for i, h := range headers {
		cells := h.Find("td")
		if len(cells) == 0 {
			return nil, itinerary.WithField(itinerary.Errorf(itinerary.ENOTFOUND, "line item %d has no cells", i), FieldPrices)
		}

		v, err := itinerary.ParseMoney(cells[len(cells)-1].Text())
		if err != nil {
			return nil, itinerary.WithField(err, FieldPrices)
		}
		prices = append(prices, itinerary.PriceItem{Value: v})
	}
	return prices, nil
}

// Dates returns the trip dates of every summary element, flattened in
// document order.
func (e *Extractor) Dates() ([]string, error) {
	var dates []string
	for _, s := range e.scope.Find(e.layout.Summary) {
		found, err := itinerary.ExtractDates(strings.TrimSpace(s.Text()))
		if err != nil {
			return nil, itinerary.WithField(err, FieldDates)
		}
		dates = append(dates, found...)
	}
	return dates, nil
}
