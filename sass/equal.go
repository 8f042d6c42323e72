package sass

// Equal reports whether two values are structurally equal
func Equal(x, y Value) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.Kind() != y.Kind() {
		return false
	}
	switch actual := x.(type) {
	case *Null:
		return true
	case *Boolean:
		return actual.value == y.(*Boolean).value
	case *Number:
		other := y.(*Number)
		return actual.value == other.value && actual.unit == other.unit
	case *Color:
		return *actual == *y.(*Color)
	case *String:
		return actual.value == y.(*String).value
	case *List:
		other := y.(*List)
		if actual.comma != other.comma || len(actual.values) != len(other.values) {
			return false
		}
		for i := range actual.values {
			if !Equal(actual.values[i], other.values[i]) {
				return false
			}
		}
		return true
	case *Map:
		other := y.(*Map)
		if len(actual.keys) != len(other.keys) {
			return false
		}
		for i := range actual.keys {
			if !Equal(actual.keys[i], other.keys[i]) || !Equal(actual.values[i], other.values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
