package helpers

import "time"

// ISODateLayout is the calendar-date layout used everywhere a resource or
// notification carries a date.
const ISODateLayout = "2006-01-02"

// ISODate formats t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD string. Malformed input yields the zero
// time, so records with broken dates sort last in newest-first views instead
// of breaking the sort.
func ParseISODate(s string) time.Time {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
