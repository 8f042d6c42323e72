package visitor

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/maruel/natural"
)

// MapVisitor visits map entries with keys in natural order, so that
// unordered go maps are always traversed the same way.
type MapVisitor[E any] struct {
	keys   []string
	values map[string]E
}

// Visit iterates over the map and calls f for each (key, element).
// - If f returns (true, nil), iteration continues.
// - If f returns (false, nil), iteration stops early.
// - If f returns an error, iteration stops with that error.
func (v *MapVisitor[E]) Visit(f func(key string, element E) (bool, error)) error {
	for _, k := range v.keys {
		continueVisit, err := f(k, v.values[k])
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// MapVisitorOf creates a new MapVisitor for map with string keys
func MapVisitorOf[E any](aMap map[string]E) Visitor[string, E] {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sortKeys(keys)
	visitor := &MapVisitor[E]{keys: keys, values: aMap}
	return visitor.Visit
}

// AnyMapVisitorOf dynamically creates a map visitor from any map value,
// keys are converted to their text form.
func AnyMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return MapVisitorOf[interface{}](actual), nil
	case map[string]string:
		return anyTypedMapVisitorOf[string](actual), nil
	case map[string]bool:
		return anyTypedMapVisitorOf[bool](actual), nil
	case map[string]int:
		return anyTypedMapVisitorOf[int](actual), nil
	case map[string]float64:
		return anyTypedMapVisitorOf[float64](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedMapVisitorOf[V any](aMap map[string]V) Visitor[string, any] {
	visit := MapVisitorOf[V](aMap)
	return func(f func(key string, element any) (bool, error)) error {
		return visit(func(key string, element V) (bool, error) {
			return f(key, element)
		})
	}
}

// AnyMapVisitor visits any map via reflection
type AnyMapVisitor struct {
	data reflect.Value
}

type mapEntry struct {
	key   string
	value interface{}
}

// Visit iterates over the map via reflection and calls f for each entry in natural key order.
// Keys sharing the same text form (i.e. NaN) are visited once.
func (v *AnyMapVisitor) Visit(f func(key string, element any) (bool, error)) error {
	entries := make([]mapEntry, 0, v.data.Len())
	iter := v.data.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value().Interface()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return natural.Less(entries[i].key, entries[j].key)
		}
		return fmt.Sprint(entries[i].value) < fmt.Sprint(entries[j].value)
	})
	for i, entry := range entries {
		if i > 0 && entries[i-1].key == entry.key {
			continue
		}
		continueVisit, err := f(entry.key, entry.value)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return natural.Less(keys[i], keys[j])
	})
}
