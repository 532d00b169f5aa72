package models

import "strings"

// Variable is a named global value that can be bound into a placeholder part
type Variable struct {
	ID   int    `yaml:"id" json:"id" mapstructure:"id"`
	Name string `yaml:"name" json:"name" mapstructure:"name"`
}

// PartKind classifies a step segment
type PartKind int

const (
	PartStatic PartKind = iota
	PartEditable
)

// String returns the lowercase name of the kind
func (k PartKind) String() string {
	switch k {
	case PartEditable:
		return "editable"
	default:
		return "static"
	}
}

// MarshalText lets the kind appear by name in JSON and YAML output
func (k PartKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Part is one segment of a step
type Part struct {
	Text    string   `yaml:"text" json:"text"`
	Kind    PartKind `yaml:"kind" json:"kind"`
	Edited  bool     `yaml:"edited" json:"edited"`
	Binding string   `yaml:"binding,omitempty" json:"binding,omitempty"` // variable name bound into the part
}

// IsEditable reports whether the part is a placeholder
func (p Part) IsEditable() bool {
	return p.Kind == PartEditable
}

// Step is one composed item built from a template
type Step struct {
	ID    string `yaml:"id" json:"id"`
	Parts []Part `yaml:"parts" json:"parts"`
}

// Clone returns a deep copy of the step
func (s Step) Clone() Step {
	parts := make([]Part, len(s.Parts))
	copy(parts, s.Parts)
	return Step{ID: s.ID, Parts: parts}
}

// Text joins the part texts into the displayed step
func (s Step) Text() string {
	var b strings.Builder
	for _, p := range s.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// EditingTarget addresses a single part inside the step list
type EditingTarget struct {
	Step int `yaml:"step" json:"step"`
	Part int `yaml:"part" json:"part"`
}
