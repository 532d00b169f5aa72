package composer

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Script is an ordered list of composer actions read from YAML
type Script struct {
	Actions []ScriptAction `yaml:"actions"`
}

// ScriptAction holds exactly one composer action
type ScriptAction struct {
	Open       *bool    `yaml:"open,omitempty"`
	Choose     *string  `yaml:"choose,omitempty"`
	Select     *PartRef `yaml:"select,omitempty"`
	Bind       *string  `yaml:"bind,omitempty"`
	Edit       *PartRef `yaml:"edit,omitempty"`
	Buffer     *string  `yaml:"buffer,omitempty"`
	Commit     *bool    `yaml:"commit,omitempty"`
	Remove     *int     `yaml:"remove,omitempty"`
	Search     *string  `yaml:"search,omitempty"`
	Dismiss    *bool    `yaml:"dismiss,omitempty"`
	Ok         *bool    `yaml:"ok,omitempty"`
	Cancel     *bool    `yaml:"cancel,omitempty"`
	CancelEdit *bool    `yaml:"cancel_edit,omitempty"`
}

// PartRef addresses a part by zero-based step and part index
type PartRef struct {
	Step int `yaml:"step"`
	Part int `yaml:"part"`
}

// LoadScript decodes a script, rejecting unknown keys
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return &script, nil
		}
		return nil, fmt.Errorf("failed to parse script YAML: %w", err)
	}
	return &script, nil
}

// LoadScriptFile reads a script from path, or stdin when path is "-"
func LoadScriptFile(path string) (*Script, error) {
	if path == "-" {
		return LoadScript(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()

	return LoadScript(f)
}

// Action converts the entry into the composer action it names. The
// composer is needed to resolve variable names for bind.
func (a ScriptAction) Action(c *Composer) (Action, error) {
	var actions []Action

	if a.Open != nil && *a.Open {
		actions = append(actions, OpenSuggestions{})
	}
	if a.Choose != nil {
		actions = append(actions, ChooseSuggestion{Template: *a.Choose})
	}
	if a.Select != nil {
		actions = append(actions, SelectPart{Step: a.Select.Step, Part: a.Select.Part})
	}
	if a.Bind != nil {
		v, ok := c.opts.Directory.Lookup(*a.Bind)
		if !ok {
			return nil, fmt.Errorf("unknown variable: %s", *a.Bind)
		}
		actions = append(actions, BindVariable{Variable: v})
	}
	if a.Edit != nil {
		actions = append(actions, BeginManualEdit{Step: a.Edit.Step, Part: a.Edit.Part})
	}
	if a.Buffer != nil {
		actions = append(actions, UpdateEditBuffer{Text: *a.Buffer})
	}
	if a.Commit != nil && *a.Commit {
		actions = append(actions, CommitEdit{})
	}
	if a.Remove != nil {
		actions = append(actions, RemoveStep{Index: *a.Remove})
	}
	if a.Search != nil {
		actions = append(actions, UpdateSearchQuery{Text: *a.Search})
	}
	if a.Dismiss != nil && *a.Dismiss {
		actions = append(actions, DismissOverlays{})
	}
	if a.Ok != nil && *a.Ok {
		actions = append(actions, ClosePicker{Confirm: true})
	}
	if a.Cancel != nil && *a.Cancel {
		actions = append(actions, ClosePicker{Confirm: false})
	}
	if a.CancelEdit != nil && *a.CancelEdit {
		actions = append(actions, CancelEdit{})
	}

	switch len(actions) {
	case 0:
		return nil, fmt.Errorf("empty action")
	case 1:
		return actions[0], nil
	default:
		return nil, fmt.Errorf("action has %d operations, expected exactly one", len(actions))
	}
}

// Run dispatches every script action in order. Actions the composer
// ignores (a bind without a target, an index out of range) are not errors.
func Run(c *Composer, script *Script) error {
	if script == nil {
		return nil
	}
	for i, entry := range script.Actions {
		action, err := entry.Action(c)
		if err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
		if !c.Dispatch(action) {
			c.log.Debug("script action ignored", zap.Int("index", i+1))
		}
	}
	return nil
}
