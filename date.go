package itinerary

import (
	"regexp"
	"time"
)

// DateLayout is the output format of trip dates. A space separates date
// and time instead of the ISO "T".
const DateLayout = "2006-01-02 15:04:05.000Z"

var dateRe = regexp.MustCompile(`[0-9]{2}/[0-9]{2}/[0-9]{4}`)

// FormatDate converts a DD/MM/YYYY date into a midnight UTC timestamp
// formatted with DateLayout.
func FormatDate(s string) (string, error) {
	t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
	if err != nil {
		return "", Errorf(EDATE, "invalid date %q", s)
	}
	return t.Format(DateLayout), nil
}

// ExtractDates returns every DD/MM/YYYY date found in text, formatted with
// DateLayout, in order of appearance. Text without any date is an EDATE error.
func ExtractDates(text string) ([]string, error) {
	matches := dateRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, Errorf(EDATE, "no date found in %q", text)
	}

	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		d, err := FormatDate(m)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
