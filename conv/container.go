package conv

import (
	"github.com/viant/tosass/host"
	"github.com/viant/tosass/sass"
	"github.com/viant/tosass/visitor"
	"go.uber.org/zap"
)

// list converts slices and arrays into comma separated list
func (c *Converter) list(value interface{}) sass.Value {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		c.settings.logger.Debug("failed to visit sequence", zap.Error(err))
		return sass.NewNull()
	}
	var elements []sass.Value
	_ = visit(func(_ int, element interface{}) (bool, error) {
		elements = append(elements, c.Convert(element))
		return true, nil
	})
	ret := sass.NewList(len(elements), true)
	for i, element := range elements {
		_ = ret.SetValue(i, element)
	}
	return ret
}

// mapping converts objects, maps and structs into color, number with unit or map
func (c *Converter) mapping(value interface{}) sass.Value {
	visit, err := membersOf(value, c.settings.caseFormat)
	if err != nil {
		c.settings.logger.Warn("failed to visit object", zap.Error(err))
		return sass.NewNull()
	}
	object := host.NewObject()
	if err = visit(func(key string, element interface{}) (bool, error) {
		object.Set(key, element)
		return true, nil
	}); err != nil {
		c.settings.logger.Warn("failed to visit object", zap.Error(err))
		return sass.NewNull()
	}
	fields := object.Fields()
	if color, ok := c.recognizeColorObject(fields); ok {
		return color
	}
	if number, ok := c.recognizeNumberObject(fields); ok {
		return number
	}
	ret := sass.NewMap(len(fields))
	for i, field := range fields {
		_ = ret.SetKey(i, sass.NewString(field.Key))
		_ = ret.SetValue(i, c.Convert(field.Value))
	}
	return ret
}
