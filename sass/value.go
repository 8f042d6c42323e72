package sass

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrOutOfRange is reported when a List or Map is accessed beyond its length.
var ErrOutOfRange = errors.New("out of bound index")

// Kind identifies a value variant
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindColor
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{"null", "boolean", "number", "color", "string", "list", "map"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value represents a Sass value
type Value interface {
	Kind() Kind
	// String returns the SCSS literal of the value
	String() string
}

type (
	//Null represents sass null
	Null struct{}

	//Boolean represents sass boolean
	Boolean struct {
		value bool
	}

	//Number represents sass number with optional unit
	Number struct {
		value float64
		unit  string
	}

	//String represents sass string
	String struct {
		value string
	}
)

// NewNull returns null value
func NewNull() *Null { return &Null{} }

func (n *Null) Kind() Kind     { return KindNull }
func (n *Null) String() string { return "null" }

// NewBoolean returns boolean value
func NewBoolean(value bool) *Boolean { return &Boolean{value: value} }

func (b *Boolean) Kind() Kind     { return KindBoolean }
func (b *Boolean) Value() bool    { return b.value }
func (b *Boolean) String() string { return strconv.FormatBool(b.value) }

// NewNumber returns number value, unit can be empty
func NewNumber(value float64, unit string) *Number {
	return &Number{value: value, unit: unit}
}

func (n *Number) Kind() Kind     { return KindNumber }
func (n *Number) Value() float64 { return n.value }
func (n *Number) Unit() string   { return n.unit }
func (n *Number) String() string { return formatFloat(n.value) + n.unit }

// NewString returns string value
func NewString(value string) *String { return &String{value: value} }

func (s *String) Kind() Kind     { return KindString }
func (s *String) Value() string  { return s.value }
func (s *String) String() string { return quote(s.value) }

// Color represents sass color, r, g, b in 0-255 range, a in 0-1 range
type Color struct {
	r, g, b, a float64
}

// NewColor returns color value
func NewColor(r, g, b, a float64) *Color {
	return &Color{r: r, g: g, b: b, a: a}
}

func (c *Color) Kind() Kind  { return KindColor }
func (c *Color) R() float64 { return c.r }
func (c *Color) G() float64 { return c.g }
func (c *Color) B() float64 { return c.b }
func (c *Color) A() float64 { return c.a }

// String returns #rrggbb for opaque colors, rgba(...) otherwise
func (c *Color) String() string {
	if c.a >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", channelByte(c.r), channelByte(c.g), channelByte(c.b))
	}
	return "rgba(" + formatFloat(c.r) + ", " + formatFloat(c.g) + ", " + formatFloat(c.b) + ", " + formatFloat(c.a) + ")"
}

func channelByte(v float64) int {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

// quote returns double quoted SCSS string literal, control characters use hex escapes (\a for new line)
func quote(text string) string {
	builder := strings.Builder{}
	builder.Grow(len(text) + 2)
	builder.WriteByte('"')
	for _, r := range text {
		switch {
		case r == '"' || r == '\\':
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			builder.WriteByte('\\')
			builder.WriteString(strconv.FormatInt(int64(r), 16))
			builder.WriteByte(' ')
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteByte('"')
	return builder.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, length)
}

func joinValues(values []Value, sep string) string {
	builder := strings.Builder{}
	for i, v := range values {
		if i > 0 {
			builder.WriteString(sep)
		}
		if v == nil {
			builder.WriteString("null")
			continue
		}
		builder.WriteString(v.String())
	}
	return builder.String()
}
