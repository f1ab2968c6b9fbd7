package itinerary

// Layout names the marker classes of a known confirmation document layout.
type Layout struct {
	Root               string `yaml:"root" validate:"required"`
	Name               string `yaml:"name" validate:"required"`
	Code               string `yaml:"code" validate:"required"`
	Price              string `yaml:"price" validate:"required"`
	LineItem           string `yaml:"lineItem" validate:"required"`
	Summary            string `yaml:"summary" validate:"required"`
	Detail             string `yaml:"detail" validate:"required"`
	ExchangeableMarker string `yaml:"exchangeableMarker" validate:"required"`
	HourMarker         string `yaml:"hourMarker" validate:"required"`
}

// DefaultLayout returns the layout of SNCF booking confirmations.
func DefaultLayout() Layout {
	return Layout{
		Root:               "#main-column",
		Name:               ".pnr-name",
		Code:               ".pnr-ref",
		Price:              ".very-important",
		LineItem:           ".product-header",
		Summary:            ".pnr-summary",
		Detail:             ".product-details",
		ExchangeableMarker: "Billet échangeable",
		HourMarker:         "h",
	}
}
