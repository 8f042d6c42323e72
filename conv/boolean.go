package conv

import (
	"strings"

	"github.com/viant/tosass/sass"
	"golang.org/x/text/cases"
)

// fold returns trimmed, case folded text used for vocabulary matching
func fold(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}

// recognizeBoolean recognizes truthy and falsey words, numbers are never booleans
func (c *Converter) recognizeBoolean(text string) (*sass.Boolean, bool) {
	word := fold(text)
	if word == "" {
		return nil, false
	}
	if c.settings.truthy[word] {
		return sass.NewBoolean(true), true
	}
	if c.settings.falsey[word] {
		return sass.NewBoolean(false), true
	}
	return nil, false
}
