package conv

import (
	"time"

	ftime "github.com/viant/tosass/format/time"
	"github.com/viant/tosass/sass"
)

// date converts time into a component map, or into a date string when time is excluded,
// layout overrides the configured date layout
func (c *Converter) date(ts time.Time, layout string) sass.Value {
	ts = ts.UTC()
	if layout == "" {
		layout = c.settings.dateLayout
	}
	if !c.settings.timeIncluded {
		if layout == "" {
			layout = defaultDateOnlyLayout
		}
		return sass.NewString(ts.Format(layout))
	}
	if layout == "" {
		layout = defaultDateLayout
	}
	parts := ftime.ComponentsOf(ts)
	entries := []struct {
		key   string
		value sass.Value
	}{
		{"string", sass.NewString(ts.Format(layout))},
		{"iso", sass.NewString(ts.Format(isoLayout))},
		{"timestamp", sass.NewNumber(float64(ts.UnixMilli()), "")},
		{"millisecond", number(parts.Millisecond)},
		{"second", number(parts.Second)},
		{"minute", number(parts.Minute)},
		{"hour", number(parts.Hour)},
		{"day", number(parts.Day)},
		{"date", number(parts.Date)},
		{"week", number(parts.Week)},
		{"month", number(parts.Month)},
		{"year", number(parts.Year)},
	}
	ret := sass.NewMap(len(entries))
	for i, entry := range entries {
		_ = ret.SetKey(i, sass.NewString(entry.key))
		_ = ret.SetValue(i, entry.value)
	}
	return ret
}

func number(value int) *sass.Number {
	return sass.NewNumber(float64(value), "")
}
