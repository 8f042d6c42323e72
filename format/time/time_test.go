package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatToTimeLayout(t *testing.T) {
	var testCases = []struct {
		description string
		dateFormat  string
		expect      string
	}{
		{description: "date", dateFormat: "YYYY-MM-DD", expect: "2006-01-02"},
		{description: "date time", dateFormat: "YYYY-MM-DD hh:mm:ss", expect: "2006-01-02 15:04:05"},
		{description: "millis", dateFormat: "hh:mm:ss.SSS", expect: "15:04:05.000"},
		{description: "short year", dateFormat: "DD/MM/YY", expect: "02/01/06"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, DateFormatToTimeLayout(testCase.dateFormat), testCase.description)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(1995, 3, 2, 1, 20, 42, 420*int(time.Millisecond), time.UTC)
	assert.Equal(t, "1995-03-02 01:20:42.420", Format(ts, "YYYY-MM-DD hh:mm:ss.SSS"))
}

func TestComponentsOf(t *testing.T) {
	var testCases = []struct {
		description string
		ts          time.Time
		expect      Components
	}{
		{
			description: "midnight",
			ts:          time.Date(1995, 3, 2, 0, 0, 0, 0, time.UTC),
			expect:      Components{Day: 4, Date: 2, Week: 9, Month: 3, Year: 1995},
		},
		{
			description: "with time",
			ts:          time.Date(1995, 3, 1, 17, 20, 42, 420*int(time.Millisecond), time.UTC),
			expect:      Components{Millisecond: 420, Second: 42, Minute: 20, Hour: 17, Day: 3, Date: 1, Week: 9, Month: 3, Year: 1995},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ComponentsOf(testCase.ts), testCase.description)
	}
}
