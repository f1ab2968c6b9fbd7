package itinerary

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var amountRe = regexp.MustCompile(`^[+-]?[0-9]+([.,][0-9]+)?`)

// ParseMoney converts a locale amount such as "315,50 €" into 315.5.
// The text before the first space (any Unicode space, including NBSP) holds
// the amount; its leading number is parsed with a comma or period as the
// decimal separator, so "315,50€" is accepted too.
func ParseMoney(s string) (float64, error) {
	amount := strings.TrimSpace(s)
	if i := strings.IndexFunc(amount, unicode.IsSpace); i >= 0 {
		amount = amount[:i]
	}

	num := amountRe.FindString(amount)
	if num == "" {
		return 0, Errorf(EMONEY, "malformed amount %q", s)
	}

	v, err := strconv.ParseFloat(strings.Replace(num, ",", ".", 1), 64)
	if err != nil {
		return 0, Errorf(EMONEY, "malformed amount %q", s)
	}
	return v, nil
}
