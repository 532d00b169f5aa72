package composer

import "github.com/pluqqy/stepper/pkg/models"

// State is an immutable copy of the composer state for renderers
type State struct {
	Steps              []models.Step
	Target             *models.EditingTarget
	Mode               EditMode
	EditBuffer         string
	SuggestionsOpen    bool
	VariablePickerOpen bool
	SearchQuery        string
}

// Snapshot returns a deep copy of the current state
func (c *Composer) Snapshot() State {
	s := State{
		Steps:              c.Steps(),
		Mode:               c.mode,
		EditBuffer:         c.editBuffer,
		SuggestionsOpen:    c.suggestionsOpen,
		VariablePickerOpen: c.variablePickerOpen,
		SearchQuery:        c.searchQuery,
	}
	if c.target != nil {
		t := *c.target
		s.Target = &t
	}
	return s
}

// IsTarget reports whether the given part is the editing target
func (s State) IsTarget(stepIndex, partIndex int) bool {
	return s.Target != nil && s.Target.Step == stepIndex && s.Target.Part == partIndex
}

// PartState is the display classification of a part
type PartState int

const (
	PartStateStatic PartState = iota
	PartStateEditable
	PartStateEdited
	PartStateEditing
	PartStateBound
)

// String returns the lowercase name of the state
func (p PartState) String() string {
	switch p {
	case PartStateEditable:
		return "editable"
	case PartStateEdited:
		return "edited"
	case PartStateEditing:
		return "editing"
	case PartStateBound:
		return "bound"
	default:
		return "static"
	}
}

// PartState classifies a part for styling. Being edited takes precedence
// over bound, which takes precedence over edited.
func (s State) PartState(stepIndex, partIndex int) PartState {
	if stepIndex < 0 || stepIndex >= len(s.Steps) {
		return PartStateStatic
	}
	parts := s.Steps[stepIndex].Parts
	if partIndex < 0 || partIndex >= len(parts) {
		return PartStateStatic
	}

	part := parts[partIndex]
	switch {
	case !part.IsEditable():
		return PartStateStatic
	case s.IsTarget(stepIndex, partIndex):
		return PartStateEditing
	case part.Binding != "":
		return PartStateBound
	case part.Edited:
		return PartStateEdited
	default:
		return PartStateEditable
	}
}
