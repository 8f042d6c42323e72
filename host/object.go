package host

import "time"

// Field represents object member
type Field struct {
	Key   string
	Value interface{}
}

// Object represents key ordered object, keys are unique
type Object struct {
	fields []Field
	index  map[string]int
}

// NewObject creates an object with supplied fields, a repeated key keeps its
// first position and takes the last value
func NewObject(fields ...Field) *Object {
	ret := &Object{index: make(map[string]int, len(fields))}
	for _, field := range fields {
		ret.Set(field.Key, field.Value)
	}
	return ret
}

// Set sets key value
func (o *Object) Set(key string, value interface{}) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.fields[i].Value = value
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Get returns key value
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].Value, true
}

// Len returns number of fields
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Keys returns keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	ret := make([]string, len(o.fields))
	for i, field := range o.fields {
		ret[i] = field.Key
	}
	return ret
}

// Fields returns fields in insertion order
func (o *Object) Fields() []Field {
	if o == nil {
		return nil
	}
	ret := make([]Field, len(o.fields))
	copy(ret, o.fields)
	return ret
}

// Arguments represents arguments-like sequence, it is always converted as a list
type Arguments []interface{}

// Args returns arguments
func Args(values ...interface{}) Arguments {
	return Arguments(values)
}

// Dimension represents explicit number with unit request
type Dimension struct {
	Value float64
	Unit  string
}

// Date represents a time with explicit string layout, it is produced for
// struct fields tagged with dateFormat or timeLayout
type Date struct {
	Time   time.Time
	Layout string
}
