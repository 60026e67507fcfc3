package wikidata

import (
	"encoding/json"
	"strconv"
	"strings"

	"WikiCollector/internal/domain"
)

type claim struct {
	MainSnak struct {
		DataValue struct {
			// The value is an object for time claims but can be a bare
			// string for other datatypes, so it is decoded lazily.
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

type timeValue struct {
	Time      string `json:"time"`
	Precision int    `json:"precision"`
}

// claimDate extracts a calendar date from the first claim of the list. Any
// malformed or non-time claim yields absence, never an error.
func claimDate(claims []claim) *domain.Date {
	if len(claims) == 0 {
		return nil
	}

	raw := claims[0].MainSnak.DataValue.Value
	if len(raw) == 0 {
		return nil
	}

	var value timeValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	if value.Time == "" {
		return nil
	}

	date, ok := parseTime(value.Time, value.Precision)
	if !ok {
		return nil
	}
	return &date
}

// parseTime normalizes a Wikidata time token of the form [+]YYYY-MM-DDT... .
// The leading sign is stripped and everything from the time-of-day separator
// onward is discarded. Precisions other than year and month pass the date
// through unchanged.
func parseTime(token string, precision int) (domain.Date, bool) {
	token = strings.TrimPrefix(token, "+")
	if i := strings.Index(token, "T"); i >= 0 {
		token = token[:i]
	}

	parts := strings.Split(token, "-")
	if len(parts) != 3 {
		return domain.Date{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.Date{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Date{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return domain.Date{}, false
	}

	date := domain.Date{Year: year, Month: month, Day: day}
	switch precision {
	case int(domain.PrecisionYear):
		date.Precision = domain.PrecisionYear
	case int(domain.PrecisionMonth):
		date.Precision = domain.PrecisionMonth
	default:
		date.Precision = domain.PrecisionDay
	}

	return date, true
}
