package host

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/francoispqt/gojay"
)

// DecodeJSON decodes JSON document into host value: objects become *Object
// with document key order, arrays []interface{}, numbers float64.
func DecodeJSON(data []byte) (interface{}, error) {
	value, err := decodeJSONValue(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return value, nil
}

var errTruncated = errors.New("unexpected end of input")

func decodeJSONValue(data []byte) (interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty value")
	}
	switch data[0] {
	case '{':
		object := &jsonObject{Object: NewObject(), size: len(data)}
		if err := gojay.UnmarshalJSONObject(data, object); err != nil {
			return nil, err
		}
		return object.Object, nil
	case '[':
		array := &jsonArray{values: []interface{}{}, size: len(data)}
		if err := gojay.UnmarshalJSONArray(data, array); err != nil {
			return nil, err
		}
		return array.values, nil
	case '"':
		var text string
		err := gojay.Unmarshal(data, &text)
		return text, err
	case 't', 'f':
		var flag bool
		err := gojay.Unmarshal(data, &flag)
		return flag, err
	case 'n':
		if string(data) == "null" {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid literal: %s", data)
	}
	//numbers are parsed by strconv to keep exact decimal rounding
	number, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number: %s", data)
	}
	return number, nil
}

type jsonObject struct {
	*Object
	size int
}

// UnmarshalJSONObject decodes object members in document order
func (o *jsonObject) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	if err := nested(raw, o.size); err != nil {
		return fmt.Errorf("key %v: %w", key, err)
	}
	value, err := decodeJSONValue(raw)
	if err != nil {
		return fmt.Errorf("key %v: %w", key, err)
	}
	o.Set(key, value)
	return nil
}

// NKeys returns 0 to decode all keys
func (o *jsonObject) NKeys() int { return 0 }

type jsonArray struct {
	values []interface{}
	size   int
}

// UnmarshalJSONArray decodes array element
func (a *jsonArray) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	if err := nested(raw, a.size); err != nil {
		return fmt.Errorf("index %v: %w", len(a.values), err)
	}
	value, err := decodeJSONValue(raw)
	if err != nil {
		return fmt.Errorf("index %v: %w", len(a.values), err)
	}
	a.values = append(a.values, value)
	return nil
}

// nested checks that an embedded value is strictly smaller than its container,
// on truncated input gojay may hand back the container itself
func nested(raw []byte, size int) error {
	if len(bytes.TrimSpace(raw)) == 0 || len(raw) >= size {
		return errTruncated
	}
	return nil
}
