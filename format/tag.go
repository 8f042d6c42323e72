package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
	ftime "github.com/viant/tosass/format/time"
)

const (
	// TagName defines struct tag controlling how a field is exposed as a map entry
	TagName = "sass"
)

// Tag represents parsed field tag, e.g. `sass:"name=startDate,dateFormat=YYYY-MM-DD,omitempty"`
type Tag struct {
	//Name overrides map key, bare first element is also treated as a name: `sass:"width"`
	Name string
	//CaseFormat formats field name when Name is not set
	CaseFormat string

	DateFormat string
	TimeLayout string

	Inline    bool
	Omitempty bool
	Ignore    bool
}

func (t *Tag) update(key string, value string, position int, strictMode bool) error {
	if key == "" {
		switch strings.ToLower(value) {
		case "":
			return nil
		case "omitempty":
			t.Omitempty = true
		case "inline", "embed":
			t.Inline = true
		case "-", "ignore", "transient":
			t.Ignore = true
		default:
			if position > 0 {
				if strictMode {
					return fmt.Errorf("unknown tag option: %v", value)
				}
				return nil
			}
			t.Name = value
		}
		return nil
	}
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat", "iso20220715":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "caseformat":
		t.CaseFormat = value
	default:
		if strictMode {
			return fmt.Errorf("unknown tag key: %v", key)
		}
	}
	return nil
}

// Parse parses field tag, names are fallback tags (i.e. json) read before the sass tag,
// so that sass settings take precedence.
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append(names, TagName)
	for _, name := range names {
		encoded, ok := tag.Lookup(name)
		if !ok || encoded == "" {
			continue
		}
		strictMode := name == TagName
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for position := 0; cursor.Pos < len(cursor.Input); position++ {
			key, value := matchPair(cursor)
			if err := ret.update(key, value, position, strictMode); err != nil {
				return nil, fmt.Errorf("invalid %v tag %q: %w", name, encoded, err)
			}
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return strings.TrimSpace(key), strings.TrimSpace(value)
}
