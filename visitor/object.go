package visitor

import "github.com/viant/tosass/host"

// ObjectVisitorOf creates a visitor over host object fields in insertion order
func ObjectVisitorOf(object *host.Object) Visitor[string, any] {
	return func(f func(key string, element any) (bool, error)) error {
		for _, field := range object.Fields() {
			continueVisit, err := f(field.Key, field.Value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
