package conv

import (
	"strings"

	"github.com/viant/tosass/host"
)

// channelSample maps channel code to its numeric value
type channelSample map[string]float64

// colorSpaces lists color spaces in detection priority order
var colorSpaces = []struct {
	name     string
	channels []string
}{
	{name: "rgb", channels: []string{"r", "g", "b"}},
	{name: "hsl", channels: []string{"h", "s", "l"}},
	{name: "hsv", channels: []string{"h", "s", "v"}},
	{name: "cmyk", channels: []string{"c", "m", "y", "k"}},
}

// normalizeChannels maps object keys to channel codes, the first key matching a
// code wins, keys matching no code and non numeric values are dropped
func (c *Converter) normalizeChannels(fields []host.Field) channelSample {
	sample := channelSample{}
	for _, field := range fields {
		code, ok := c.settings.aliases[fold(field.Key)]
		if !ok {
			continue
		}
		if _, ok := sample[code]; ok {
			continue
		}
		value, ok := channelValue(code, field.Value)
		if !ok {
			continue
		}
		sample[code] = value
	}
	return sample
}

// colorSpaceOf returns the highest priority color space present in sample
// (rgb, rgba, hsl, hsla, hsv, hsva, cmyk, cmyka) or empty string
func colorSpaceOf(sample channelSample) string {
	for _, space := range colorSpaces {
		if !sample.has(space.channels...) {
			continue
		}
		if sample.has("a") {
			return space.name + "a"
		}
		return space.name
	}
	return ""
}

func (s channelSample) has(codes ...string) bool {
	for _, code := range codes {
		if _, ok := s[code]; !ok {
			return false
		}
	}
	return true
}

// alpha returns alpha channel, 1 when absent
func (s channelSample) alpha() float64 {
	if value, ok := s["a"]; ok {
		return value
	}
	return 1
}

// channelValue returns numeric channel value, percentage text is accepted for all
// channels but hue and is scaled to the channel range
func channelValue(code string, value interface{}) (float64, bool) {
	text, ok := value.(string)
	if !ok {
		return numberOf(value)
	}
	text = strings.TrimSpace(text)
	if !strings.HasSuffix(text, "%") {
		return numberOf(text)
	}
	if code == "h" {
		return 0, false
	}
	percent, ok := numberOf(strings.TrimSuffix(text, "%"))
	if !ok {
		return 0, false
	}
	switch code {
	case "r", "g", "b":
		return percent * 255 / 100, true
	case "a":
		return percent / 100, true
	}
	return percent, true
}
