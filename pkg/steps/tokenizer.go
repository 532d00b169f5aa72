// Package steps splits suggestion templates into typed parts.
package steps

import (
	"strings"

	"github.com/pluqqy/stepper/pkg/models"
)

const (
	// DefaultPlaceholder is the quoted word that marks an editable part
	DefaultPlaceholder = "text"
	// DefaultQuotes holds the quote characters templates are split on
	DefaultQuotes = `"`
)

// Tokenizer splits templates on quote characters
type Tokenizer struct {
	Placeholder string
	Quotes      string
}

// NewTokenizer creates a tokenizer, falling back to the defaults for empty values
func NewTokenizer(placeholder, quotes string) *Tokenizer {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = DefaultPlaceholder
	}
	if quotes == "" {
		quotes = DefaultQuotes
	}
	return &Tokenizer{Placeholder: placeholder, Quotes: quotes}
}

var defaultTokenizer = NewTokenizer(DefaultPlaceholder, DefaultQuotes)

// Tokenize splits a template with the default placeholder and quote
func Tokenize(template string) []models.Part {
	return defaultTokenizer.Tokenize(template)
}

// Tokenize splits template into parts. Each quote character becomes its own
// static part, a segment equal to the placeholder (ignoring case) becomes
// editable, everything else is static. Empty segments are dropped.
func (t *Tokenizer) Tokenize(template string) []models.Part {
	parts := []models.Part{}
	placeholder := strings.ToLower(t.Placeholder)

	start := 0
	for i, r := range template {
		if !strings.ContainsRune(t.Quotes, r) {
			continue
		}
		parts = t.appendSegment(parts, template[start:i], placeholder)
		parts = append(parts, models.Part{Text: string(r), Kind: models.PartStatic})
		start = i + len(string(r))
	}
	parts = t.appendSegment(parts, template[start:], placeholder)

	return parts
}

func (t *Tokenizer) appendSegment(parts []models.Part, segment, placeholder string) []models.Part {
	if segment == "" {
		return parts
	}
	kind := models.PartStatic
	if strings.ToLower(segment) == placeholder {
		kind = models.PartEditable
	}
	return append(parts, models.Part{Text: segment, Kind: kind})
}

// Render joins the part texts back into a single line
func Render(parts []models.Part) string {
	return models.Step{Parts: parts}.Text()
}

// EditableIndexes returns the positions of the editable parts
func EditableIndexes(parts []models.Part) []int {
	var idx []int
	for i, p := range parts {
		if p.IsEditable() {
			idx = append(idx, i)
		}
	}
	return idx
}
