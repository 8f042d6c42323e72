package conv

import (
	"testing"
	"time"

	"github.com/viant/tosass/host"
)

type benchTheme struct {
	Name      string
	Primary   string
	Secondary string
	Spacing   []string
	Radius    host.Dimension
	Dark      bool
	Updated   time.Time
}

func BenchmarkConverter_ConvertMap(b *testing.B) {
	c := New(DefaultConfig())
	src := map[string]interface{}{
		"name":      "Jane",
		"primary":   "#336699",
		"secondary": "rgba(10, 20, 30, 0.5)",
		"spacing":   []interface{}{"4px", "8px", "1rem"},
		"accent":    map[string]interface{}{"h": 200, "s": 50, "l": 50},
		"dark":      "yes",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v := c.Convert(src); v == nil {
			b.Fatal("nil value")
		}
	}
}

func BenchmarkConverter_ConvertStruct(b *testing.B) {
	c := New(&Config{CaseFormat: "lowerDash"})
	src := &benchTheme{
		Name:      "Jane",
		Primary:   "#336699",
		Secondary: "hsl(120deg, 20%, 50%)",
		Spacing:   []string{"4px", "8px", "1rem"},
		Radius:    host.Dimension{Value: 2, Unit: "px"},
		Dark:      true,
		Updated:   time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v := c.Convert(src); v == nil {
			b.Fatal("nil value")
		}
	}
}
