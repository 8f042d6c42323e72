package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tosass/sass"
)

func TestConverter_recognizeColorString(t *testing.T) {
	converter := New(nil)

	testCases := []struct {
		description string
		text        string
		expected    *sass.Color
	}{
		{description: "hex", text: "#c0ffee", expected: sass.NewColor(0xc0, 0xff, 0xee, 1)},
		{description: "hex 2", text: "#beefed", expected: sass.NewColor(0xbe, 0xef, 0xed, 1)},
		{description: "hex digits", text: "#708090", expected: sass.NewColor(0x70, 0x80, 0x90, 1)},
		{description: "short hex", text: "#fff", expected: sass.NewColor(255, 255, 255, 1)},
		{description: "short hex with alpha", text: "#0f08", expected: sass.NewColor(0, 255, 0, float64(0x88)/255)},
		{description: "hex with alpha", text: "#ff000000", expected: sass.NewColor(255, 0, 0, 0)},
		{description: "invalid hex", text: "#ecchi"},
		{description: "hex of wrong length", text: "#12345"},
		{description: "rgb", text: "rgb(96, 33, 122)", expected: sass.NewColor(96, 33, 122, 1)},
		{description: "spaced name", text: "RGB    (1, 2, 3)", expected: sass.NewColor(1, 2, 3, 1)},
		{description: "rgba", text: "rgba ( 11 , 23 , 58 , 0.618033989     )", expected: sass.NewColor(11, 23, 58, 0.618033989)},
		{description: "space separated with slash", text: "rgb(255 0 0 / 50%)", expected: sass.NewColor(255, 0, 0, 0.5)},
		{description: "rgb percentages", text: "rgb(100%, 0%, 0%)", expected: sass.NewColor(255, 0, 0, 1)},
		{description: "rgb out of range", text: "RGB(9001, 131072, 128)"},
		{description: "rgba out of range", text: "RGBA(69, 420, 1337, 3.14)"},
		{description: "alpha out of range", text: "rgba(1, 2, 3, 1.5)"},
		{description: "missing channel", text: "rgb(1, 2)"},
		{description: "too many channels", text: "rgb(1, 2, 3, 0.5, 1)"},
		{description: "unclosed", text: "rgb(1, 2, 3"},
		{description: "trailing text", text: "rgb(1, 2, 3) x"},
		{description: "misplaced slash", text: "rgb(1 / 2 3)"},
		{description: "hsl", text: "hsl(240deg, 100%, 100%)", expected: sass.NewColor(255, 255, 255, 1)},
		{description: "hsl red", text: "hsl(0, 100%, 50%)", expected: sass.NewColor(255, 0, 0, 1)},
		{description: "hsl in turns", text: "hsl(0.5turn, 100%, 50%)", expected: sass.NewColor(0, 255, 255, 1)},
		{description: "hsla", text: "hsla(120deg, 20%, 50%)", expected: sass.NewColor(102, 153, 102, 1)},
		{description: "hsla with alpha", text: "hsla(120deg, 20%, 50%, 0.5)", expected: sass.NewColor(102, 153, 102, 0.5)},
		{description: "hsl saturation out of range", text: "hsl(120, 120%, 50%)"},
		{description: "hsl with hue percentage", text: "hsl(10%, 20%, 50%)"},
		{description: "hsv", text: "hsv(0deg, 100%, 100%)", expected: sass.NewColor(255, 0, 0, 1)},
		{description: "hsva black", text: "hsva(120deg, 20%, 0%)", expected: sass.NewColor(0, 0, 0, 1)},
		{description: "cmyk", text: "cmyk(0%, 100%, 100%, 0%)", expected: sass.NewColor(255, 0, 0, 1)},
		{description: "cmyka", text: "cmyka(0, 0, 0, 100, 0.5)", expected: sass.NewColor(0, 0, 0, 0.5)},
		{description: "cmyk with three channels", text: "cmyk(120deg, 20%, 50%)"},
		{description: "unknown function", text: "lab(1, 2, 3)"},
		{description: "named color", text: "red"},
		{description: "dimension", text: "10.2cm"},
	}

	for _, testCase := range testCases {
		actual, ok := converter.recognizeColorString(testCase.text)
		if testCase.expected == nil {
			assert.False(t, ok, testCase.description)
			continue
		}
		if !assert.True(t, ok, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expected.R(), actual.R(), testCase.description)
		assert.EqualValues(t, testCase.expected.G(), actual.G(), testCase.description)
		assert.EqualValues(t, testCase.expected.B(), actual.B(), testCase.description)
		assert.InDelta(t, testCase.expected.A(), actual.A(), 1e-9, testCase.description)
	}
}

func TestColorSpaceOf(t *testing.T) {
	testCases := []struct {
		description string
		sample      channelSample
		expected    string
	}{
		{description: "empty", sample: channelSample{}},
		{description: "incomplete", sample: channelSample{"r": 1, "g": 2}},
		{description: "rgb", sample: channelSample{"r": 1, "g": 2, "b": 3}, expected: "rgb"},
		{description: "rgba", sample: channelSample{"r": 1, "g": 2, "b": 3, "a": 1}, expected: "rgba"},
		{description: "hsla", sample: channelSample{"h": 1, "s": 2, "l": 3, "a": 1}, expected: "hsla"},
		{description: "hsv", sample: channelSample{"h": 1, "s": 2, "v": 3}, expected: "hsv"},
		{description: "cmyka", sample: channelSample{"c": 1, "m": 2, "y": 3, "k": 4, "a": 1}, expected: "cmyka"},
		{description: "rgb wins", sample: channelSample{"r": 1, "g": 2, "b": 3, "h": 1, "s": 2, "l": 3}, expected: "rgb"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, colorSpaceOf(testCase.sample), testCase.description)
	}
}
