package sass

// List represents ordered sass list
type List struct {
	values []Value
	comma  bool
}

// NewList creates a list of length elements, each initialised to null.
// comma controls whether the list renders comma or space separated.
func NewList(length int, comma bool) *List {
	values := make([]Value, length)
	for i := range values {
		values[i] = NewNull()
	}
	return &List{values: values, comma: comma}
}

func (l *List) Kind() Kind { return KindList }

// Len returns list length
func (l *List) Len() int { return len(l.values) }

// IsComma returns true for comma separated list
func (l *List) IsComma() bool { return l.comma }

// Value returns element at index
func (l *List) Value(index int) (Value, error) {
	if index < 0 || index >= len(l.values) {
		return nil, indexError(index, len(l.values))
	}
	return l.values[index], nil
}

// SetValue sets element at index
func (l *List) SetValue(index int, value Value) error {
	if index < 0 || index >= len(l.values) {
		return indexError(index, len(l.values))
	}
	if value == nil {
		value = NewNull()
	}
	l.values[index] = value
	return nil
}

// Values returns a copy of list elements
func (l *List) Values() []Value {
	result := make([]Value, len(l.values))
	copy(result, l.values)
	return result
}

func (l *List) String() string {
	sep := " "
	if l.comma {
		sep = ", "
	}
	return "(" + joinValues(l.values, sep) + ")"
}
