// Package yaml loads document layout overrides from YAML files.
package yaml

import (
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/itinerary"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadLayout reads a layout file. Keys absent from the file keep their
// itinerary.DefaultLayout() values.
func LoadLayout(path string) (itinerary.Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return itinerary.Layout{}, itinerary.Errorf(itinerary.ENOTFOUND, "layout file %q not found", path)
	}
	if err != nil {
		return itinerary.Layout{}, err
	}
	return ParseLayout(data)
}

// ParseLayout decodes YAML layout overrides on top of the default layout
// and validates the result.
func ParseLayout(data []byte) (itinerary.Layout, error) {
	layout := itinerary.DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return itinerary.Layout{}, itinerary.Errorf(itinerary.EINVALID, "invalid layout: %v", err)
	}

	if err := validate.Struct(layout); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return itinerary.Layout{}, itinerary.Errorf(itinerary.EINVALID, "layout missing values: %s", strings.Join(fields, ", "))
		}
		return itinerary.Layout{}, err
	}
	return layout, nil
}
