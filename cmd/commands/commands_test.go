package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/stepper/pkg/files"
)

const loginScript = `actions:
  - open: true
  - choose: 'Click on "Text" for "Text"'
  - select: {step: 0, part: 2}
  - bind: mahadev
  - edit: {step: 0, part: 6}
  - buffer: Logout
  - commit: true
`

// setupProject runs the test in a fresh directory
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	t.Setenv("STEPPER_LOG_LEVEL", "")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("1.2.3")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "stepper version 1.2.3\n", out)
}

func TestInitCommand(t *testing.T) {
	setupProject(t)

	out, errOut, err := execute(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initializing stepper project")
	assert.Contains(t, out, "Created .stepper/settings.yaml")
	assert.Empty(t, errOut, "nothing is replaced on a fresh project")
	assert.FileExists(t, files.SettingsPath())
	assert.DirExists(t, filepath.Join(files.StepperDir, files.ScriptsDir))

	// existing settings are kept unless confirmed
	require.NoError(t, os.WriteFile(files.SettingsPath(), []byte("variables:\n  - {id: 1, name: only}\n"), 0644))

	out, _, err = execute(t, "n\n", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Overwrite?")
	assert.Contains(t, out, "Kept existing settings")
	data, err := os.ReadFile(files.SettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "only")

	out, errOut, err = execute(t, "", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Updating stepper project")
	assert.Contains(t, errOut, "Replacing .stepper/settings.yaml with default settings")
	data, err = os.ReadFile(files.SettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "mahadev")
}

func TestTokenizeCommand(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "", "tokenize", `Click on "Text" for "Text"`)
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, `editable  "Text"`)
	assert.Contains(t, out, `static    " for "`)
	assert.Contains(t, out, "8 part(s), 2 editable")

	out, _, err = execute(t, "", "tokenize", `Click on "Text" for "Text"`, "-o", "json")
	require.NoError(t, err)

	var result struct {
		Parts []struct {
			Text string `json:"text"`
			Kind string `json:"kind"`
		} `json:"parts"`
		Editable []int `json:"editable"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []int{2, 6}, result.Editable)
	require.Len(t, result.Parts, 8)
	assert.Equal(t, "editable", result.Parts[2].Kind)
	assert.Equal(t, "Click on ", result.Parts[0].Text)

	_, _, err = execute(t, "", "tokenize", "  ")
	assert.EqualError(t, err, "template cannot be empty")
}

func TestVariablesCommand(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "", "variables", "sh")
	require.NoError(t, err)
	assert.Contains(t, out, "3  shivam")
	assert.Contains(t, out, "1 variable(s) found")

	out, _, err = execute(t, "", "vars", "end", "-o", "json")
	require.NoError(t, err)
	var result VariablesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "front-end", result.Variables[0].Name)

	out, _, err = execute(t, "", "variables", "--limit", "3", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 3")

	out, _, err = execute(t, "", "variables", "zzz", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVariablesFromConfigFile(t *testing.T) {
	dir := setupProject(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variables:\n  - {id: 10, name: checkout}\n"), 0644))

	out, _, err := execute(t, "", "variables", "--config", path, "-o", "json")
	require.NoError(t, err)
	var result VariablesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "checkout", result.Variables[0].Name)

	_, _, err = execute(t, "", "variables", "--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestSuggestionsCommand(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "", "suggestions", "after")
	require.NoError(t, err)
	assert.Contains(t, out, `Click on "Text" after "Text"`)
	assert.Contains(t, out, "1 suggestion(s) found")

	out, _, err = execute(t, "", "suggestions", "-o", "json")
	require.NoError(t, err)
	var result SuggestionsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Count)
}

func TestSearchTablesTruncateLongEntries(t *testing.T) {
	dir := setupProject(t)
	long := `Click on "Text" in the settings panel after scrolling past the advanced section`
	name := strings.Repeat("very-long-variable-", 4)
	path := filepath.Join(dir, "long.yaml")
	content := "catalog:\n  templates:\n    - '" + long + "'\nvariables:\n  - {id: 1, name: " + name + "}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, _, err := execute(t, "", "suggestions", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, long[:57]+"...")

	out, _, err = execute(t, "", "variables", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, name)
	assert.Contains(t, out, name[:37]+"...")

	// structured output keeps the full text
	out, _, err = execute(t, "", "suggestions", "--config", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "advanced section")
}

func TestComposeCommand(t *testing.T) {
	t.Run("script from stdin", func(t *testing.T) {
		setupProject(t)

		out, _, err := execute(t, loginScript, "compose", "-")
		require.NoError(t, err)
		assert.Equal(t, "1. Click on \"mahadev\" for \"Logout\"\n", out)
	})

	t.Run("markdown to file", func(t *testing.T) {
		dir := setupProject(t)
		script := filepath.Join(dir, "login.yaml")
		require.NoError(t, os.WriteFile(script, []byte(loginScript), 0644))

		out, _, err := execute(t, "", "compose", script, "--format", "markdown", "--file", "STEPS.md")
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote 1 step(s) to STEPS.md")

		data, err := os.ReadFile(filepath.Join(dir, "STEPS.md"))
		require.NoError(t, err)
		assert.Equal(t, "## STEPS\n\n1. Click on \"`mahadev`\" for \"`Logout`\"\n", string(data))
	})

	t.Run("copy", func(t *testing.T) {
		setupProject(t)

		var copied string
		old := writeClipboard
		writeClipboard = func(s string) error {
			copied = s
			return nil
		}
		t.Cleanup(func() { writeClipboard = old })

		out, _, err := execute(t, loginScript, "compose", "-", "--copy")
		require.NoError(t, err)
		assert.Equal(t, "1. Click on \"mahadev\" for \"Logout\"\n", copied)
		assert.Contains(t, out, "1 step(s) → clipboard")
	})

	t.Run("clipboard failure", func(t *testing.T) {
		setupProject(t)

		old := writeClipboard
		writeClipboard = func(string) error { return errors.New("no display") }
		t.Cleanup(func() { writeClipboard = old })

		_, _, err := execute(t, loginScript, "compose", "-", "-c")
		assert.EqualError(t, err, "failed to copy to clipboard: no display")
	})

	t.Run("json", func(t *testing.T) {
		setupProject(t)

		out, _, err := execute(t, loginScript, "compose", "-", "-o", "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "1. Click on \"mahadev\" for \"Logout\"\n", result["composed"])
		assert.NotContains(t, result, "file")
		assert.Contains(t, out, `"binding": "mahadev"`)
	})
}

func TestComposeCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown variable",
			stdin:   "actions:\n  - choose: 'Click on \"Text\"'\n  - select: {step: 0, part: 2}\n  - bind: nobody\n",
			args:    []string{"compose", "-"},
			wantErr: "failed to run script: action 3: unknown variable: nobody",
		},
		{
			name:    "no steps",
			stdin:   "actions:\n  - open: true\n",
			args:    []string{"compose", "-"},
			wantErr: "cannot compose steps: no steps defined",
		},
		{
			name:    "unsupported step format",
			stdin:   "actions:\n  - choose: 'Click on \"Text\"'\n",
			args:    []string{"compose", "-", "--format", "html"},
			wantErr: "unsupported output format: html",
		},
		{
			name:    "missing script",
			args:    []string{"compose", "missing.yaml"},
			wantErr: "path does not exist",
		},
		{
			name:    "unknown key",
			stdin:   "actions:\n  - jump: true\n",
			args:    []string{"compose", "-"},
			wantErr: "failed to parse script YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "", "variables", "-o", "xml")
	assert.EqualError(t, err, "invalid output format: xml (must be: text, json, or yaml)")
}

func TestTUIRequiresTerminal(t *testing.T) {
	setupProject(t)

	old := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = old })

	_, _, err := execute(t, "")
	assert.ErrorContains(t, err, "needs an interactive terminal")

	_, _, err = execute(t, "", "annotate")
	assert.ErrorContains(t, err, "stepper annotate needs an interactive terminal")
}

func TestLogLevelFlagWritesLogFile(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, loginScript, "compose", "-", "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(files.StepperDir, files.LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "command started")
	assert.Contains(t, string(data), "variable bound")
}
