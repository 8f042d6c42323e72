package conv

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"github.com/viant/tosass/host"
	"github.com/viant/tosass/sass"
)

// recognizeNumber recognizes the longest numeric prefix of text, the remaining
// text is kept as unit only when it is an accepted unit
func (c *Converter) recognizeNumber(text string) (*sass.Number, bool) {
	text = strings.TrimSpace(text)
	value, size := numericPrefix(text)
	if size == 0 {
		return nil, false
	}
	unit := strings.TrimSpace(text[size:])
	if unit != "" && !c.settings.units[fold(unit)] {
		unit = ""
	}
	return sass.NewNumber(value, unit), true
}

// numericPrefix returns value and byte size of the leading number, size is 0 when there is none
func numericPrefix(text string) (float64, int) {
	_, size := pstrconv.ParseFloat([]byte(text))
	if size == 0 {
		return 0, 0
	}
	value, err := strconv.ParseFloat(text[:size], 64)
	if err != nil || !isFinite(value) {
		return 0, 0
	}
	return value, size
}

func isFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// floatText returns text of a float the way a dynamic host prints it
func floatText(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// numberOf returns numeric value of Go numbers and numeric strings
func numberOf(value interface{}) (float64, bool) {
	switch actual := value.(type) {
	case float64:
		return actual, isFinite(actual)
	case int:
		return float64(actual), true
	case string:
		text := strings.TrimSpace(actual)
		result, size := numericPrefix(text)
		return result, size > 0 && size == len(text)
	}
	if value == nil {
		return 0, false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rValue.Uint()), true
	case reflect.Float32, reflect.Float64:
		result := rValue.Float()
		return result, isFinite(result)
	case reflect.String:
		return numberOf(rValue.String())
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return 0, false
		}
		return numberOf(rValue.Elem().Interface())
	}
	return 0, false
}

// recognizeNumberObject recognizes objects shaped exactly as {value: number, unit: string}
func (c *Converter) recognizeNumberObject(fields []host.Field) (*sass.Number, bool) {
	if len(fields) != 2 {
		return nil, false
	}
	var value float64
	var unit string
	hasValue, hasUnit := false, false
	for _, field := range fields {
		switch field.Key {
		case "value":
			value, hasValue = numberOf(field.Value)
			if _, isText := field.Value.(string); isText {
				hasValue = false
			}
		case "unit":
			unit, hasUnit = field.Value.(string)
		}
	}
	if !hasValue || !hasUnit {
		return nil, false
	}
	return sass.NewNumber(value, unit), true
}

func (c *Converter) dimension(value host.Dimension) sass.Value {
	if !isFinite(value.Value) {
		return sass.NewString(floatText(value.Value))
	}
	return sass.NewNumber(value.Value, value.Unit)
}
