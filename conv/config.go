package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/tosass/host"
	"github.com/viant/tosass/visitor"
	"go.uber.org/zap"
)

// Config contains configuration for the converter, supplied words, aliases and
// units extend the built-in defaults
type Config struct {
	// Truthy lists words converted to true
	Truthy []string
	// Falsey lists words converted to false
	Falsey []string
	// Channels maps channel code (r,g,b,a,h,s,l,v,c,m,y,k) to extra key aliases
	Channels map[string][]string
	// Units lists accepted number units
	Units []string
	// DateIncludesTime controls whether a date becomes a component map (default) or a date string
	DateIncludesTime *bool
	// DateFormat is an ISO date format (i.e. YYYY-MM-DD hh:mm:ss) used for date strings
	DateFormat string
	// CaseFormat formats untagged struct field names used as map keys, i.e. lowerDash
	CaseFormat string
	// Logger receives debug information about lossy conversions
	Logger *zap.Logger
}

// DefaultConfig returns default conversion config
func DefaultConfig() *Config {
	included := true
	return &Config{
		Truthy:           append([]string{}, defaultTruthy...),
		Falsey:           append([]string{}, defaultFalsey...),
		Units:            append([]string{}, defaultUnits...),
		DateIncludesTime: &included,
	}
}

// ParseConfig reads config from a host value shaped as:
//
//	boolean:
//	  booleans: {truthy: [...], falsey: [...]}
//	color:
//	  channels: {r: [...], g: [...], ...}
//	date: {isTimeIncluded: true, format: YYYY-MM-DD}
//	number: {units: [...]}
//
// Unknown keys, unknown channel codes and non string list entries are ignored.
func ParseConfig(value interface{}) *Config {
	ret := &Config{}
	if booleans, ok := memberPath(value, "boolean", "booleans"); ok {
		ret.Truthy = stringsOf(member(booleans, "truthy"))
		ret.Falsey = stringsOf(member(booleans, "falsey"))
	}
	if channels, ok := memberPath(value, "color", "channels"); ok {
		for _, code := range channelCodes {
			aliases := stringsOf(member(channels, code))
			if len(aliases) == 0 {
				continue
			}
			if ret.Channels == nil {
				ret.Channels = make(map[string][]string)
			}
			ret.Channels[code] = aliases
		}
	}
	if date, ok := memberPath(value, "date"); ok {
		if included, ok := member(date, "isTimeIncluded").(bool); ok {
			ret.DateIncludesTime = &included
		}
		if format, ok := member(date, "format").(string); ok {
			ret.DateFormat = format
		}
	}
	if units, ok := memberPath(value, "number", "units"); ok {
		ret.Units = stringsOf(units)
	}
	return ret
}

// LoadConfig loads config from YAML or JSON document
func LoadConfig(data []byte) (*Config, error) {
	document, err := host.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return ParseConfig(document), nil
}

func memberPath(value interface{}, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if value = member(value, key); value == nil {
			return nil, false
		}
	}
	return value, true
}

func member(value interface{}, key string) interface{} {
	if value == nil {
		return nil
	}
	visit, err := membersOf(value, "")
	if err != nil {
		return nil
	}
	var ret interface{}
	_ = visit(func(k string, element interface{}) (bool, error) {
		if k != key {
			return true, nil
		}
		ret = element
		return false, nil
	})
	return ret
}

func stringsOf(value interface{}) []string {
	if value == nil {
		return nil
	}
	if args, ok := value.(host.Arguments); ok {
		value = []interface{}(args)
	}
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil
	}
	var ret []string
	_ = visit(func(_ int, element interface{}) (bool, error) {
		if text, ok := element.(string); ok {
			ret = append(ret, text)
		}
		return true, nil
	})
	return ret
}

// membersOf returns a key/value visitor for objects, maps and structs
func membersOf(value interface{}, caseFormat string) (visitor.Visitor[string, interface{}], error) {
	if object, ok := value.(host.Object); ok {
		return visitor.ObjectVisitorOf(&object), nil
	}
	if object, ok := value.(*host.Object); ok {
		if object == nil {
			return nil, fmt.Errorf("expected object, got nil")
		}
		return visitor.ObjectVisitorOf(object), nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map:
		return visitor.AnyMapVisitorOf(value)
	case reflect.Struct, reflect.Ptr:
		return visitor.StructVisitorOf(value, caseFormat)
	}
	return nil, fmt.Errorf("expected object, map or struct, got %T", value)
}
