package itinerary

import (
	"regexp"
	"strings"
)

var ageRe = regexp.MustCompile(`\([^)]*\)`)

// ClassifyFare returns FareExchangeable if text contains marker.
func ClassifyFare(text, marker string) FareType {
	if strings.Contains(text, marker) {
		return FareExchangeable
	}
	return FareNonExchangeable
}

// ExtractAge returns the first parenthesized substring of text, brackets included.
func ExtractAge(text string) (string, error) {
	age := ageRe.FindString(text)
	if age == "" {
		return "", Errorf(ENOTFOUND, "no passenger age in %q", strings.TrimSpace(text))
	}
	return age, nil
}
