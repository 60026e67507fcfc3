package domain

import "fmt"

// DatePrecision is the granularity a date claim was asserted at.
// The numeric values follow the Wikidata precision codes.
type DatePrecision int

const (
	PrecisionYear  DatePrecision = 9
	PrecisionMonth DatePrecision = 10
	PrecisionDay   DatePrecision = 11
)

// Date is a calendar date together with its precision. Components below the
// stated precision are carried but never rendered.
type Date struct {
	Year      int
	Month     int
	Day       int
	Precision DatePrecision
}

// String renders the date truncated to its precision: year precision pins
// January 1, month precision pins the 1st of the month.
func (d Date) String() string {
	switch d.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d-01-01", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d-%02d-01", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}
