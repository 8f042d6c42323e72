package conv

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/tosass/host"
	"github.com/viant/tosass/sass"
	"go.uber.org/zap"
)

// ConvertFn converts a host value into a sass value
type ConvertFn func(value interface{}) sass.Value

// Converter converts host values into sass values
type Converter struct {
	settings *settings
}

var defaultConverter = New(nil)

// Convert converts value with the default configuration
func Convert(value interface{}) sass.Value {
	return defaultConverter.Convert(value)
}

// New creates a converter, nil config uses defaults
func New(config *Config) *Converter {
	return &Converter{settings: newSettings(config)}
}

// Func returns conversion function
func (c *Converter) Func() ConvertFn {
	return c.Convert
}

// Convert converts value into a newly created sass value tree, it never fails,
// unsupported values (functions, channels, complex numbers) become null
func (c *Converter) Convert(value interface{}) sass.Value {
	switch actual := value.(type) {
	case nil:
		return sass.NewNull()
	case bool:
		return sass.NewBoolean(actual)
	case string:
		return c.text(actual)
	case []byte:
		return c.text(string(actual))
	case float64:
		return c.float(actual)
	case int:
		return sass.NewNumber(float64(actual), "")
	case time.Time:
		return c.date(actual, "")
	case *time.Time:
		if actual == nil {
			return sass.NewNull()
		}
		return c.date(*actual, "")
	case host.Date:
		return c.date(actual.Time, actual.Layout)
	case host.Dimension:
		return c.dimension(actual)
	case host.Arguments:
		return c.list([]interface{}(actual))
	case *host.Object:
		if actual == nil {
			return sass.NewNull()
		}
		return c.mapping(actual)
	case host.Object:
		return c.mapping(&actual)
	}

	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return sass.NewNull()
		}
		return c.Convert(rValue.Elem().Interface())
	case reflect.Bool:
		return sass.NewBoolean(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sass.NewNumber(float64(rValue.Int()), "")
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sass.NewNumber(float64(rValue.Uint()), "")
	case reflect.Float32, reflect.Float64:
		return c.float(rValue.Float())
	case reflect.String:
		return c.text(rValue.String())
	case reflect.Slice:
		if rValue.IsNil() {
			return sass.NewNull()
		}
		if rValue.Type().Elem().Kind() == reflect.Uint8 {
			return c.text(string(rValue.Bytes()))
		}
		return c.list(value)
	case reflect.Array:
		return c.list(value)
	case reflect.Map:
		if rValue.IsNil() {
			return sass.NewNull()
		}
		return c.mapping(value)
	case reflect.Struct:
		if rValue.Type().ConvertibleTo(timeType) {
			return c.date(rValue.Convert(timeType).Interface().(time.Time), "")
		}
		return c.mapping(value)
	}
	c.settings.logger.Debug("unsupported value converted to null", zap.String("type", fmt.Sprintf("%T", value)))
	return sass.NewNull()
}

var timeType = reflect.TypeOf(time.Time{})

// text classifies text with color, number and boolean recognizers, falling back to string
func (c *Converter) text(text string) sass.Value {
	if color, ok := c.recognizeColorString(text); ok {
		return color
	}
	if number, ok := c.recognizeNumber(text); ok {
		return number
	}
	if boolean, ok := c.recognizeBoolean(text); ok {
		return boolean
	}
	return sass.NewString(text)
}

func (c *Converter) float(value float64) sass.Value {
	if !isFinite(value) {
		return sass.NewString(floatText(value))
	}
	return sass.NewNumber(value, "")
}
