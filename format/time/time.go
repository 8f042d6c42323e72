package time

import (
	"strings"
	"time"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// Format formats time with either ISO date format (YYYY-MM-DD) or go layout
func Format(ts time.Time, dateFormat string) string {
	return ts.Format(DateFormatToTimeLayout(dateFormat))
}

// Components represents calendar breakdown of a time
type Components struct {
	Millisecond int
	Second      int
	Minute      int
	Hour        int
	//Day is a day of week, Sunday is 0
	Day int
	//Date is a day of month
	Date int
	//Week is ISO 8601 week number
	Week  int
	Month int
	Year  int
}

// ComponentsOf returns breakdown of ts in its own location
func ComponentsOf(ts time.Time) Components {
	_, week := ts.ISOWeek()
	return Components{
		Millisecond: ts.Nanosecond() / int(time.Millisecond),
		Second:      ts.Second(),
		Minute:      ts.Minute(),
		Hour:        ts.Hour(),
		Day:         int(ts.Weekday()),
		Date:        ts.Day(),
		Week:        week,
		Month:       int(ts.Month()),
		Year:        ts.Year(),
	}
}
