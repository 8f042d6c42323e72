package visitor

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/tosass/format"
	"github.com/viant/tosass/host"
	"github.com/viant/xunsafe"
)

var (
	structCache = NewSyncMap[planKey, *structPlan]()
	timeType    = reflect.TypeOf(time.Time{})
)

type (
	planKey struct {
		structType reflect.Type
		caseFormat string
	}

	fieldPlan struct {
		xField *xunsafe.Field
		key    string
		tag    *format.Tag
		inline bool
		isTime bool
	}

	structPlan struct {
		fields []*fieldPlan
	}
)

// StructVisitor implements Visitor[string, interface{}] for structs, exported fields
// are visited in declaration order, keys come from sass/json tags or field names
// formatted with case format.
type StructVisitor struct {
	value      interface{}
	ptr        unsafe.Pointer
	plan       *structPlan
	caseFormat string
}

// StructVisitorOf creates a StructVisitor from any struct value, optional case format
// (e.g. lowerDash, lowerCamel) is applied to untagged field names.
func StructVisitorOf(value interface{}, caseFormat ...string) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct or pointer to struct, got nil %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	cf := ""
	if len(caseFormat) > 0 {
		cf = caseFormat[0]
	}
	plan, err := structPlanOf(structType, cf)
	if err != nil {
		return nil, err
	}
	visitor := &StructVisitor{
		value:      value,
		ptr:        xunsafe.AsPointer(value),
		plan:       plan,
		caseFormat: cf,
	}
	return visitor.Visit, nil
}

// Visit iterates over struct fields, calling the provided function with each field key and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, field := range w.plan.fields {
		fieldValue := field.xField.Value(w.ptr)
		if field.tag.Omitempty && isEmpty(fieldValue) {
			continue
		}
		if field.inline {
			if isEmpty(fieldValue) {
				continue
			}
			visit, err := StructVisitorOf(fieldValue, w.caseFormat)
			if err != nil {
				return err
			}
			stopped := false
			if err = visit(func(key string, element interface{}) (bool, error) {
				toContinue, err := f(key, element)
				stopped = !toContinue
				return toContinue, err
			}); err != nil {
				return err
			}
			if stopped {
				return nil
			}
			continue
		}
		if field.isTime && field.tag.TimeLayout != "" {
			fieldValue = timeWithLayout(fieldValue, field.tag.TimeLayout)
		}
		continueVisit, err := f(field.key, fieldValue)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func timeWithLayout(value interface{}, layout string) interface{} {
	switch actual := value.(type) {
	case time.Time:
		return host.Date{Time: actual, Layout: layout}
	case *time.Time:
		if actual == nil {
			return nil
		}
		return host.Date{Time: *actual, Layout: layout}
	}
	return value
}

func structPlanOf(structType reflect.Type, caseFormat string) (*structPlan, error) {
	key := planKey{structType: structType, caseFormat: caseFormat}
	if plan, ok := structCache.Get(key); ok {
		return plan, nil
	}
	xStruct := xunsafe.NewStruct(structType)
	plan := &structPlan{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, err := format.Parse(field.Tag, "json")
		if err != nil {
			return nil, fmt.Errorf("field %v.%v: %w", structType.Name(), field.Name, err)
		}
		if tag.Ignore {
			continue
		}
		fieldType := field.Type
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		inline := fieldType.Kind() == reflect.Struct && fieldType != timeType &&
			(tag.Inline || (field.Anonymous && tag.Name == ""))
		fieldCaseFormat := caseFormat
		if tag.CaseFormat != "" {
			fieldCaseFormat = tag.CaseFormat
		}
		name := tag.Name
		if name == "" {
			name = formatName(field.Name, fieldCaseFormat)
		}
		plan.fields = append(plan.fields, &fieldPlan{
			xField: &xStruct.Fields[i],
			key:    name,
			tag:    tag,
			inline: inline,
			isTime: fieldType == timeType,
		})
	}
	structCache.Put(key, plan)
	return plan, nil
}

func formatName(name string, caseFormat string) string {
	if caseFormat == "" || caseFormat == "-" {
		return name
	}
	to := text.NewCaseFormat(caseFormat)
	if !to.IsDefined() {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, to)
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}
