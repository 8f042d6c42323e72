package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tosass/host"
)

func TestAnySliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
	}{
		{description: "interface slice", value: []interface{}{"a", 1, 3.14, true}, expect: []interface{}{"a", 1, 3.14, true}},
		{description: "typed slice", value: []string{"x", "y"}, expect: []interface{}{"x", "y"}},
		{description: "array", value: [2]int{7, 8}, expect: []interface{}{7, 8}},
		{description: "reflect slice", value: []uint8{1, 2}, expect: []interface{}{uint8(1), uint8(2)}},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var clone []interface{}
		err = visit(func(index int, element interface{}) (bool, error) {
			clone = append(clone, element)
			return true, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, clone, testCase.description)
	}
	_, err := AnySliceVisitorOf("abc")
	assert.NotNil(t, err)
}

func TestObjectVisitorOf(t *testing.T) {
	object := host.NewObject(host.Field{Key: "z", Value: 1}, host.Field{Key: "a", Value: 2})
	var keys []string
	err := ObjectVisitorOf(object)(func(key string, element any) (bool, error) {
		keys = append(keys, key)
		return true, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, []string{"z", "a"}, keys)
}
