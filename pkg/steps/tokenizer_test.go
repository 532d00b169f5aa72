package steps

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/stepper/pkg/models"
)

func static(s string) models.Part   { return models.Part{Text: s, Kind: models.PartStatic} }
func editable(s string) models.Part { return models.Part{Text: s, Kind: models.PartEditable} }

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []models.Part
	}{
		{
			name:     "single placeholder",
			template: `Click on "Text"`,
			want:     []models.Part{static("Click on "), static(`"`), editable("Text"), static(`"`)},
		},
		{
			name:     "two placeholders",
			template: `Click on "Text" after "Text"`,
			want: []models.Part{
				static("Click on "), static(`"`), editable("Text"), static(`"`),
				static(" after "), static(`"`), editable("Text"), static(`"`),
			},
		},
		{
			name:     "placeholder match ignores case",
			template: `Type "TEXT"`,
			want:     []models.Part{static("Type "), static(`"`), editable("TEXT"), static(`"`)},
		},
		{
			name:     "other quoted words stay static",
			template: `Open "Settings"`,
			want:     []models.Part{static("Open "), static(`"`), static("Settings"), static(`"`)},
		},
		{
			name:     "unbalanced quote",
			template: `Click on "Text`,
			want:     []models.Part{static("Click on "), static(`"`), editable("Text")},
		},
		{
			name:     "no quotes",
			template: "Scroll down",
			want:     []models.Part{static("Scroll down")},
		},
		{
			name:     "bare placeholder word",
			template: "text",
			want:     []models.Part{editable("text")},
		},
		{
			name:     "adjacent quotes",
			template: `""`,
			want:     []models.Part{static(`"`), static(`"`)},
		},
		{
			name:     "empty template",
			template: "",
			want:     []models.Part{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.template)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.template, diff)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	for _, tmpl := range models.DefaultTemplates {
		assert.Equal(t, tmpl, Render(Tokenize(tmpl)))
	}
}

func TestTokenizerCustomQuotes(t *testing.T) {
	tok := NewTokenizer("value", "“”")
	got := tok.Tokenize("Fill “Value” here")

	want := []models.Part{static("Fill "), static("“"), editable("Value"), static("”"), static(" here")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("custom quotes mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTokenizerDefaults(t *testing.T) {
	tok := NewTokenizer(" ", "")
	assert.Equal(t, DefaultPlaceholder, tok.Placeholder)
	assert.Equal(t, DefaultQuotes, tok.Quotes)
}

func TestEditableIndexes(t *testing.T) {
	parts := Tokenize(`Click on "Text" for "Text"`)
	assert.Equal(t, []int{2, 6}, EditableIndexes(parts))
	assert.Nil(t, EditableIndexes(Tokenize("Scroll")))
}
