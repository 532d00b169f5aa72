package composer

import (
	"fmt"
	"strings"

	"github.com/pluqqy/stepper/pkg/files"
	"github.com/pluqqy/stepper/pkg/models"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// ComposeSteps renders the step list using the output settings
func ComposeSteps(steps []models.Step, settings *models.Settings) (string, error) {
	if len(steps) == 0 {
		return "", fmt.Errorf("cannot compose steps: no steps defined")
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}
	out := settings.Output

	var output strings.Builder
	switch strings.ToLower(out.Format) {
	case "", FormatText:
		for i, step := range steps {
			if out.Numbered {
				output.WriteString(fmt.Sprintf("%d. ", i+1))
			}
			output.WriteString(step.Text())
			output.WriteString("\n")
		}
	case FormatMarkdown, "md":
		if out.Heading != "" {
			output.WriteString(fmt.Sprintf("%s\n\n", out.Heading))
		}
		for i, step := range steps {
			if out.Numbered {
				output.WriteString(fmt.Sprintf("%d. ", i+1))
			} else {
				output.WriteString("- ")
			}
			output.WriteString(markdownStep(step))
			output.WriteString("\n")
		}
	default:
		return "", fmt.Errorf("unsupported output format: %s", out.Format)
	}

	return output.String(), nil
}

// markdownStep wraps edited and bound placeholder text in code spans
func markdownStep(step models.Step) string {
	var b strings.Builder
	for _, p := range step.Parts {
		if p.IsEditable() && (p.Edited || p.Binding != "") && p.Text != "" {
			b.WriteString(codeSpan(p.Text))
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// WriteOutput writes composed steps to outputPath, or the default output
// file when outputPath is empty
func WriteOutput(content string, outputPath string) error {
	if outputPath == "" {
		outputPath = files.DefaultOutputFile
	}

	if err := files.WriteFile(outputPath, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return nil
}

// codeSpan fences text with one more backtick than its longest backtick run,
// padding with spaces when the text starts or ends with a backtick
func codeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}
