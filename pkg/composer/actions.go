package composer

import "github.com/pluqqy/stepper/pkg/models"

// Action is a single user intent delivered to Dispatch
type Action interface {
	action()
}

type (
	OpenSuggestions   struct{}
	ChooseSuggestion  struct{ Template string }
	SelectPart        struct{ Step, Part int }
	BindVariable      struct{ Variable models.Variable }
	BeginManualEdit   struct{ Step, Part int }
	UpdateEditBuffer  struct{ Text string }
	CommitEdit        struct{}
	RemoveStep        struct{ Index int }
	UpdateSearchQuery struct{ Text string }
	DismissOverlays   struct{}
	ClosePicker       struct{ Confirm bool }
	CancelEdit        struct{}
)

func (OpenSuggestions) action()   {}
func (ChooseSuggestion) action()  {}
func (SelectPart) action()        {}
func (BindVariable) action()      {}
func (BeginManualEdit) action()   {}
func (UpdateEditBuffer) action()  {}
func (CommitEdit) action()        {}
func (RemoveStep) action()        {}
func (UpdateSearchQuery) action() {}
func (DismissOverlays) action()   {}
func (ClosePicker) action()       {}
func (CancelEdit) action()        {}

// Dispatch applies an action and reports whether it changed anything the
// operation considers valid. Unknown actions return false.
func (c *Composer) Dispatch(a Action) bool {
	switch a := a.(type) {
	case OpenSuggestions:
		c.OpenSuggestions()
		return true
	case ChooseSuggestion:
		c.ChooseSuggestion(a.Template)
		return true
	case SelectPart:
		return c.SelectPart(a.Step, a.Part)
	case BindVariable:
		return c.BindVariable(a.Variable)
	case BeginManualEdit:
		return c.BeginManualEdit(a.Step, a.Part)
	case UpdateEditBuffer:
		return c.UpdateEditBuffer(a.Text)
	case CommitEdit:
		return c.CommitEdit()
	case RemoveStep:
		return c.RemoveStep(a.Index)
	case UpdateSearchQuery:
		c.UpdateSearchQuery(a.Text)
		return true
	case DismissOverlays:
		c.DismissOverlays()
		return true
	case ClosePicker:
		c.ClosePicker(a.Confirm)
		return true
	case CancelEdit:
		return c.CancelEdit()
	default:
		return false
	}
}
