package composer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/stepper/pkg/models"
)

func composedSteps(t *testing.T) []models.Step {
	t.Helper()
	c := newTestComposer(t, nil)
	c.ChooseSuggestion(`Click on "Text"`)
	c.ChooseSuggestion(`Click on "Text" after "Text"`)
	require.True(t, c.SelectPart(1, 2))
	require.True(t, c.BindVariable(models.Variable{ID: 5, Name: "front-end"}))
	return c.Steps()
}

func TestComposeSteps(t *testing.T) {
	steps := composedSteps(t)

	tests := []struct {
		name   string
		output models.OutputSettings
		want   string
	}{
		{
			name:   "numbered text",
			output: models.OutputSettings{Format: "text", Numbered: true},
			want:   "1. Click on \"Text\"\n2. Click on \"front-end\" after \"Text\"\n",
		},
		{
			name:   "plain text",
			output: models.OutputSettings{Format: "text"},
			want:   "Click on \"Text\"\nClick on \"front-end\" after \"Text\"\n",
		},
		{
			name:   "markdown list",
			output: models.OutputSettings{Format: "markdown", Heading: "## STEPS"},
			want:   "## STEPS\n\n- Click on \"Text\"\n- Click on \"`front-end`\" after \"Text\"\n",
		},
		{
			name:   "numbered markdown without heading",
			output: models.OutputSettings{Format: "md", Numbered: true},
			want:   "1. Click on \"Text\"\n2. Click on \"`front-end`\" after \"Text\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.DefaultSettings()
			settings.Output = tt.output

			got, err := ComposeSteps(steps, settings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeMarkdownBacktickText(t *testing.T) {
	c := newTestComposer(t, nil)
	c.ChooseSuggestion(`Click on "Text"`)
	require.True(t, c.BeginManualEdit(0, 2))
	require.True(t, c.UpdateEditBuffer("a`b"))
	require.True(t, c.CommitEdit())

	settings := models.DefaultSettings()
	settings.Output = models.OutputSettings{Format: "markdown", Numbered: true}

	got, err := ComposeSteps(c.Steps(), settings)
	require.NoError(t, err)
	assert.Equal(t, "1. Click on \"``a`b``\"\n", got)
}

func TestCodeSpan(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Logout", want: "`Logout`"},
		{text: "a`b", want: "``a`b``"},
		{text: "a``b`c", want: "```a``b`c```"},
		{text: "`tick", want: "`` `tick ``"},
		{text: "tick`", want: "`` tick` ``"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, codeSpan(tt.text))
		})
	}
}

func TestComposeStepsErrors(t *testing.T) {
	_, err := ComposeSteps(nil, nil)
	assert.EqualError(t, err, "cannot compose steps: no steps defined")

	settings := models.DefaultSettings()
	settings.Output.Format = "html"
	_, err = ComposeSteps(composedSteps(t), settings)
	assert.EqualError(t, err, "unsupported output format: html")
}

func TestComposeStepsDefaultSettings(t *testing.T) {
	got, err := ComposeSteps(composedSteps(t), nil)
	require.NoError(t, err)
	assert.Contains(t, got, "2. Click on \"front-end\"")
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.md")
	require.NoError(t, WriteOutput("1. Click on \"OK\"\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1. Click on \"OK\"\n", string(data))

	err = WriteOutput("x", filepath.Join(t.TempDir(), "missing", "dir", "out.md"))
	assert.Error(t, err)
}
