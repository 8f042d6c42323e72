package sass

import "strings"

// Map represents ordered sass map
type Map struct {
	keys   []Value
	values []Value
}

// NewMap creates a map with length entries, keys and values initialised to null.
func NewMap(length int) *Map {
	ret := &Map{keys: make([]Value, length), values: make([]Value, length)}
	for i := 0; i < length; i++ {
		ret.keys[i] = NewNull()
		ret.values[i] = NewNull()
	}
	return ret
}

func (m *Map) Kind() Kind { return KindMap }

// Len returns number of entries
func (m *Map) Len() int { return len(m.keys) }

// Key returns key at index
func (m *Map) Key(index int) (Value, error) {
	if index < 0 || index >= len(m.keys) {
		return nil, indexError(index, len(m.keys))
	}
	return m.keys[index], nil
}

// Value returns value at index
func (m *Map) Value(index int) (Value, error) {
	if index < 0 || index >= len(m.values) {
		return nil, indexError(index, len(m.values))
	}
	return m.values[index], nil
}

// SetKey sets key at index
func (m *Map) SetKey(index int, key Value) error {
	if index < 0 || index >= len(m.keys) {
		return indexError(index, len(m.keys))
	}
	if key == nil {
		key = NewNull()
	}
	m.keys[index] = key
	return nil
}

// SetValue sets value at index
func (m *Map) SetValue(index int, value Value) error {
	if index < 0 || index >= len(m.values) {
		return indexError(index, len(m.values))
	}
	if value == nil {
		value = NewNull()
	}
	m.values[index] = value
	return nil
}

// Lookup returns value for the key with matching text
func (m *Map) Lookup(key string) (Value, bool) {
	for i, candidate := range m.keys {
		if KeyText(candidate) == key {
			return m.values[i], true
		}
	}
	return nil, false
}

func (m *Map) String() string {
	builder := strings.Builder{}
	builder.WriteByte('(')
	for i := range m.keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(m.keys[i].String())
		builder.WriteString(": ")
		builder.WriteString(m.values[i].String())
	}
	builder.WriteByte(')')
	return builder.String()
}

// KeyText returns the text used to compare map keys, strings compare by raw text
func KeyText(key Value) string {
	if s, ok := key.(*String); ok {
		return s.value
	}
	if key == nil {
		return "null"
	}
	return key.String()
}
