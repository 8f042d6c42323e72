package visitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tosass/host"
)

type visited struct {
	keys   []string
	values []interface{}
}

func (v *visited) collect(key string, value interface{}) (bool, error) {
	v.keys = append(v.keys, key)
	v.values = append(v.values, value)
	return true, nil
}

func Test_StructVisitor_Visit(t *testing.T) {

	type Audit struct {
		CreatedBy string
	}

	type Employee struct {
		ID        int
		Name      string
		Company   string    `sass:"employer"`
		Nickname  string    `json:"nick,omitempty"`
		Secret    string    `sass:"-"`
		StartDate time.Time `sass:"dateFormat=YYYY-MM-DD"`
		internal  string
		Audit
	}

	start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	emp := &Employee{ID: 1, Name: "John Doe", Company: "OpenAI", Secret: "x", StartDate: start, internal: "y", Audit: Audit{CreatedBy: "admin"}}

	visit, err := StructVisitorOf(emp)
	if !assert.Nil(t, err) {
		return
	}
	actual := &visited{}
	err = visit(actual.collect)
	assert.Nil(t, err)
	assert.Equal(t, []string{"ID", "Name", "employer", "StartDate", "CreatedBy"}, actual.keys)
	assert.Equal(t, []interface{}{1, "John Doe", "OpenAI", host.Date{Time: start, Layout: "2006-01-02"}, "admin"}, actual.values)

	//struct value and case format
	visit, err = StructVisitorOf(Audit{CreatedBy: "root"}, "lowerDash")
	if !assert.Nil(t, err) {
		return
	}
	actual = &visited{}
	assert.Nil(t, visit(actual.collect))
	assert.Equal(t, []string{"created-by"}, actual.keys)
	assert.Equal(t, []interface{}{"root"}, actual.values)
}

func Test_StructVisitor_Stop(t *testing.T) {
	type Pair struct {
		A int
		B int
	}
	visit, err := StructVisitorOf(Pair{A: 1, B: 2})
	assert.Nil(t, err)
	count := 0
	err = visit(func(key string, value interface{}) (bool, error) {
		count++
		return false, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
}

func Test_StructVisitorOf_Invalid(t *testing.T) {
	var nilPtr *struct{ A int }
	for _, value := range []interface{}{nil, 1, nilPtr, []int{1}} {
		_, err := StructVisitorOf(value)
		assert.NotNil(t, err)
	}
}
