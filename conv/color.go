package conv

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/viant/tosass/host"
	"github.com/viant/tosass/sass"
)

type colorArg struct {
	tokenType css.TokenType
	value     float64
	unit      string
}

// recognizeColorString recognizes hex (#rgb, #rgba, #rrggbb, #rrggbbaa) and
// functional (rgb, hsl, hsv, cmyk with optional alpha) color notation
func (c *Converter) recognizeColorString(text string) (*sass.Color, bool) {
	text = strings.TrimSpace(text)
	if text == "" || (text[0] != '#' && !strings.Contains(text, "(")) {
		return nil, false
	}
	tokens, ok := colorTokens(text)
	if !ok || len(tokens) == 0 {
		return nil, false
	}
	if tokens[0].TokenType == css.HashToken {
		if len(tokens) != 1 {
			return nil, false
		}
		return hexColor(string(tokens[0].Data[1:]))
	}
	var name string
	switch {
	case tokens[0].TokenType == css.FunctionToken:
		name = strings.TrimSuffix(string(tokens[0].Data), "(")
		tokens = tokens[1:]
	case len(tokens) > 1 && tokens[0].TokenType == css.IdentToken && tokens[1].TokenType == css.LeftParenthesisToken:
		name = string(tokens[0].Data)
		tokens = tokens[2:]
	default:
		return nil, false
	}
	args, ok := colorArgs(tokens)
	if !ok {
		return nil, false
	}
	return colorFunction(strings.ToLower(name), args)
}

func colorTokens(text string) ([]css.Token, bool) {
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(text)))
	var tokens []css.Token
	for {
		tokenType, data := lexer.Next()
		if tokenType == css.ErrorToken {
			return tokens, lexer.Err() == io.EOF
		}
		if tokenType == css.WhitespaceToken || tokenType == css.CommentToken {
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tokenType, Data: append([]byte{}, data...)})
	}
}

// colorArgs reads function arguments up to the closing parenthesis, arguments are
// separated with commas or whitespace, a slash may only precede the last argument
func colorArgs(tokens []css.Token) ([]colorArg, bool) {
	if len(tokens) == 0 || tokens[len(tokens)-1].TokenType != css.RightParenthesisToken {
		return nil, false
	}
	tokens = tokens[:len(tokens)-1]
	var args []colorArg
	slashAt := -1
	for i, token := range tokens {
		switch token.TokenType {
		case css.CommaToken:
			if i == 0 || i == len(tokens)-1 || tokens[i-1].TokenType == css.CommaToken {
				return nil, false
			}
		case css.DelimToken:
			if string(token.Data) != "/" || slashAt != -1 {
				return nil, false
			}
			slashAt = len(args)
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			arg, ok := colorArgOf(token)
			if !ok {
				return nil, false
			}
			args = append(args, arg)
		default:
			return nil, false
		}
	}
	if slashAt != -1 && slashAt != len(args)-1 {
		return nil, false
	}
	return args, true
}

func colorArgOf(token css.Token) (colorArg, bool) {
	text := string(token.Data)
	value, size := numericPrefix(text)
	if size == 0 {
		return colorArg{}, false
	}
	return colorArg{tokenType: token.TokenType, value: value, unit: strings.ToLower(text[size:])}, true
}

func colorFunction(name string, args []colorArg) (*sass.Color, bool) {
	space := strings.TrimSuffix(name, "a")
	channels := 3
	switch space {
	case "rgb", "hsl", "hsv":
	case "cmyk":
		channels = 4
	default:
		return nil, false
	}
	if len(args) != channels && len(args) != channels+1 {
		return nil, false
	}
	sample := channelSample{}
	if len(args) > channels {
		alpha, ok := alphaChannel(args[channels])
		if !ok {
			return nil, false
		}
		sample["a"] = alpha
	}
	codes := []string{"r", "g", "b"}
	switch space {
	case "hsl":
		codes = []string{"h", "s", "l"}
	case "hsv":
		codes = []string{"h", "s", "v"}
	case "cmyk":
		codes = []string{"c", "m", "y", "k"}
	}
	for i, code := range codes {
		var value float64
		var ok bool
		switch code {
		case "r", "g", "b":
			value, ok = rgbChannel(args[i])
		case "h":
			value, ok = hueChannel(args[i])
		default:
			value, ok = percentChannel(args[i])
		}
		if !ok {
			return nil, false
		}
		sample[code] = value
	}
	return colorOf(space, sample)
}

func rgbChannel(arg colorArg) (float64, bool) {
	switch arg.tokenType {
	case css.NumberToken:
		return arg.value, true
	case css.PercentageToken:
		return arg.value * 255 / 100, true
	}
	return 0, false
}

func alphaChannel(arg colorArg) (float64, bool) {
	switch arg.tokenType {
	case css.NumberToken:
		return arg.value, true
	case css.PercentageToken:
		return arg.value / 100, true
	}
	return 0, false
}

// percentChannel returns s, l, v, c, m, y, k channel in 0-100 scale
func percentChannel(arg colorArg) (float64, bool) {
	switch arg.tokenType {
	case css.NumberToken, css.PercentageToken:
		return arg.value, true
	}
	return 0, false
}

// hueChannel returns hue in degrees
func hueChannel(arg colorArg) (float64, bool) {
	switch arg.tokenType {
	case css.NumberToken:
		return arg.value, true
	case css.DimensionToken:
		switch arg.unit {
		case "deg":
			return arg.value, true
		case "grad":
			return arg.value * (360.0 / 400.0), true
		case "rad":
			return arg.value * (180.0 / math.Pi), true
		case "turn":
			return arg.value * 360.0, true
		}
	}
	return 0, false
}

func hexColor(digits string) (*sass.Color, bool) {
	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, 2*len(digits))
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6, 8:
	default:
		return nil, false
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, false
	}
	alpha := 1.0
	if len(digits) == 8 {
		alpha = float64(value&0xff) / 255
		value >>= 8
	}
	return sass.NewColor(float64(value>>16&0xff), float64(value>>8&0xff), float64(value&0xff), alpha), true
}

// recognizeColorObject recognizes objects describing a color with channel keys
func (c *Converter) recognizeColorObject(fields []host.Field) (*sass.Color, bool) {
	sample := c.normalizeChannels(fields)
	space := strings.TrimSuffix(colorSpaceOf(sample), "a")
	if space == "" {
		return nil, false
	}
	return colorOf(space, sample)
}

// colorOf validates sample channel ranges and converts it to RGB color
func colorOf(space string, sample channelSample) (*sass.Color, bool) {
	alpha := sample.alpha()
	if !inRange(alpha, 0, 1) {
		return nil, false
	}
	switch space {
	case "rgb":
		r, g, b := sample["r"], sample["g"], sample["b"]
		if !inRange(r, 0, 255) || !inRange(g, 0, 255) || !inRange(b, 0, 255) {
			return nil, false
		}
		return sass.NewColor(r, g, b, alpha), true
	case "hsl", "hsv":
		h := sample["h"]
		second, third := sample["s"], sample["l"]
		if space == "hsv" {
			third = sample["v"]
		}
		if !isFinite(h) || !inRange(second, 0, 100) || !inRange(third, 0, 100) {
			return nil, false
		}
		if space == "hsv" {
			second, third = hsvToHsl(second/100, third/100)
		} else {
			second, third = second/100, third/100
		}
		r, g, b := hslToRgb(h/360, second, third)
		return sass.NewColor(r, g, b, alpha), true
	case "cmyk":
		cyan, magenta, yellow, black := sample["c"], sample["m"], sample["y"], sample["k"]
		for _, channel := range []float64{cyan, magenta, yellow, black} {
			if !inRange(channel, 0, 100) {
				return nil, false
			}
		}
		white := 1 - black/100
		return sass.NewColor(
			math.Round(255*(1-cyan/100)*white),
			math.Round(255*(1-magenta/100)*white),
			math.Round(255*(1-yellow/100)*white),
			alpha), true
	}
	return nil, false
}

func inRange(value, min, max float64) bool {
	return isFinite(value) && value >= min && value <= max
}

// hslToRgb converts hue (in turns), saturation and lightness fractions to RGB
func hslToRgb(h, s, l float64) (float64, float64, float64) {
	var t2 float64
	if l <= 0.5 {
		t2 = l * (s + 1)
	} else {
		t2 = l + s - (l * s)
	}
	t1 := l*2 - t2
	return hueToRgb(t1, t2, h+1.0/3.0), hueToRgb(t1, t2, h), hueToRgb(t1, t2, h-1.0/3.0)
}

func hueToRgb(t1 float64, t2 float64, hue float64) float64 {
	hue -= math.Floor(hue)
	hue *= 6.0
	var f float64
	if hue < 1 {
		f = (t2-t1)*hue + t1
	} else if hue < 3 {
		f = t2
	} else if hue < 4 {
		f = (t2-t1)*(4-hue) + t1
	} else {
		f = t1
	}
	return math.Max(0, math.Min(255, math.Round(f*255)))
}

// hsvToHsl converts saturation and value fractions to HSL saturation and lightness
func hsvToHsl(s, v float64) (float64, float64) {
	l := v * (1 - s/2)
	if l == 0 || l == 1 {
		return 0, l
	}
	return (v - l) / math.Min(l, 1-l), l
}
