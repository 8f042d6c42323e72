package sass

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	list := NewList(3, true)
	require.NoError(t, list.SetValue(0, NewNumber(1, "px")))
	require.NoError(t, list.SetValue(1, NewString("a")))
	aMap := NewMap(2)
	require.NoError(t, aMap.SetKey(0, NewString("color")))
	require.NoError(t, aMap.SetValue(0, NewColor(0xc0, 0xff, 0xee, 1)))
	require.NoError(t, aMap.SetKey(1, NewString("shade")))
	require.NoError(t, aMap.SetValue(1, NewColor(11, 23, 58, 0.5)))

	var testCases = []struct {
		description string
		value       Value
		expect      string
	}{
		{description: "null", value: NewNull(), expect: "null"},
		{description: "boolean", value: NewBoolean(true), expect: "true"},
		{description: "number", value: NewNumber(420.1337, "px"), expect: "420.1337px"},
		{description: "unitless number", value: NewNumber(69, ""), expect: "69"},
		{description: "string", value: NewString(`say "hi"`), expect: `"say \"hi\""`},
		{description: "string with backslash", value: NewString(`a\b`), expect: `"a\\b"`},
		{description: "string with new line", value: NewString("a\nb"), expect: `"a\a b"`},
		{description: "string with tab", value: NewString("tab\there"), expect: `"tab\9 here"`},
		{description: "string with control characters", value: NewString("\x00\x1f\x7f"), expect: `"\0 \1f \7f "`},
		{description: "unicode string", value: NewString("あ"), expect: `"あ"`},
		{description: "list", value: list, expect: `(1px, "a", null)`},
		{description: "space list", value: NewList(2, false), expect: `(null null)`},
		{description: "map", value: aMap, expect: `("color": #c0ffee, "shade": rgba(11, 23, 58, 0.5))`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.value.String(), testCase.description)
	}
}

func TestList_Value(t *testing.T) {
	list := NewList(2, true)
	assert.Equal(t, 2, list.Len())
	require.NoError(t, list.SetValue(1, NewNumber(5, "")))

	last, err := list.Value(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, last.(*Number).Value())

	_, err = list.Value(2)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = list.Value(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(list.SetValue(2, NewNull()), ErrOutOfRange))

	values := list.Values()
	values[0] = NewBoolean(true)
	first, _ := list.Value(0)
	assert.Equal(t, KindNull, first.Kind())
}

func TestMap_Lookup(t *testing.T) {
	aMap := NewMap(1)
	require.NoError(t, aMap.SetKey(0, NewString("width")))
	require.NoError(t, aMap.SetValue(0, NewNumber(10, "px")))

	value, ok := aMap.Lookup("width")
	require.True(t, ok)
	assert.Equal(t, "10px", value.String())
	_, ok = aMap.Lookup("height")
	assert.False(t, ok)

	_, err := aMap.Key(1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = aMap.Value(1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestEqual(t *testing.T) {
	build := func() Value {
		list := NewList(2, true)
		_ = list.SetValue(0, NewColor(1, 2, 3, 1))
		aMap := NewMap(1)
		_ = aMap.SetKey(0, NewString("k"))
		_ = aMap.SetValue(0, NewNumber(1, "em"))
		_ = list.SetValue(1, aMap)
		return list
	}
	assert.True(t, Equal(build(), build()))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(NewNull(), nil))
	assert.False(t, Equal(NewNumber(1, "px"), NewNumber(1, "em")))
	assert.False(t, Equal(NewString("1"), NewNumber(1, "")))
	assert.False(t, Equal(NewList(1, true), NewList(1, false)))
}
