// Package composer owns the step list and the editing state of the step
// editor. The presentation layer renders a Snapshot and reports user input
// through the operations below (or Dispatch); it never mutates steps itself.
package composer

import (
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/pkg/models"
)

// EditMode says how the current editing target was selected
type EditMode int

const (
	EditNone    EditMode = iota
	EditPicking          // target chosen for variable binding
	EditManual           // target switched to inline text editing
)

// String returns the lowercase name of the mode
func (m EditMode) String() string {
	switch m {
	case EditPicking:
		return "picking"
	case EditManual:
		return "manual"
	default:
		return "none"
	}
}

// Composer is the step editor state machine. It is not safe for concurrent
// use; the UI event loop calls it from a single goroutine.
type Composer struct {
	opts Options
	log  *zap.Logger

	steps      []models.Step
	target     *models.EditingTarget
	mode       EditMode
	editBuffer string

	suggestionsOpen    bool
	variablePickerOpen bool
	searchQuery        string
}

// New creates an empty composer
func New(opts Options) *Composer {
	opts.fillDefaults()
	return &Composer{
		opts:  opts,
		log:   opts.Logger.Named("composer"),
		steps: []models.Step{},
	}
}

// OpenSuggestions shows the suggestion overlay
func (c *Composer) OpenSuggestions() {
	c.suggestionsOpen = true
	if c.opts.ExclusiveOverlays && c.variablePickerOpen {
		c.closePicker()
	}
	c.log.Debug("suggestions opened")
}

// ChooseSuggestion tokenizes template and appends it as a new step
func (c *Composer) ChooseSuggestion(template string) models.Step {
	step := models.Step{
		ID:    c.opts.NewID(),
		Parts: c.opts.Tokenizer.Tokenize(template),
	}
	c.steps = append(c.steps, step)
	c.suggestionsOpen = false

	c.log.Debug("step added",
		zap.String("id", step.ID),
		zap.Int("index", len(c.steps)-1),
		zap.String("template", template),
	)
	return step.Clone()
}

// SelectPart targets an editable part for variable binding and opens the
// variable picker. A pending manual edit is committed first. Out of range or
// static parts are ignored.
func (c *Composer) SelectPart(stepIndex, partIndex int) bool {
	if !c.isEditable(stepIndex, partIndex) {
		return false
	}

	if c.mode == EditManual {
		c.CommitEdit()
		c.resetEditing()
	}
	c.target = &models.EditingTarget{Step: stepIndex, Part: partIndex}
	c.mode = EditPicking
	c.variablePickerOpen = true
	if c.opts.ExclusiveOverlays {
		c.suggestionsOpen = false
	}

	c.log.Debug("part selected", zap.Int("step", stepIndex), zap.Int("part", partIndex))
	return true
}

// BindVariable writes the variable name into the targeted part, closes the
// picker and clears the target. Binding does not mark the part as edited.
func (c *Composer) BindVariable(v models.Variable) bool {
	part := c.targetPart()
	if part == nil {
		return false
	}

	part.Text = v.Name
	part.Edited = false
	part.Binding = v.Name

	c.log.Debug("variable bound",
		zap.Int("step", c.target.Step),
		zap.Int("part", c.target.Part),
		zap.String("variable", v.Name),
	)

	c.variablePickerOpen = false
	c.resetEditing()
	return true
}

// BeginManualEdit switches an editable part to inline editing, seeding the
// edit buffer with its current text. A picker opened for binding is closed.
func (c *Composer) BeginManualEdit(stepIndex, partIndex int) bool {
	if !c.isEditable(stepIndex, partIndex) {
		return false
	}

	if c.mode == EditPicking {
		c.closePicker()
	}
	c.blurManualEdit(stepIndex, partIndex)
	if c.mode == EditManual && c.target.Step == stepIndex && c.target.Part == partIndex {
		return true
	}

	c.target = &models.EditingTarget{Step: stepIndex, Part: partIndex}
	c.mode = EditManual
	c.editBuffer = c.steps[stepIndex].Parts[partIndex].Text

	c.log.Debug("manual edit started", zap.Int("step", stepIndex), zap.Int("part", partIndex))
	return true
}

// UpdateEditBuffer replaces the edit buffer verbatim
func (c *Composer) UpdateEditBuffer(text string) bool {
	if c.mode != EditManual {
		return false
	}
	c.editBuffer = text
	return true
}

// CommitEdit writes the edit buffer into the targeted part and marks it
// edited. The target is kept unless ClearTargetOnCommit is set.
func (c *Composer) CommitEdit() bool {
	if c.mode != EditManual {
		return false
	}
	part := c.targetPart()
	if part == nil {
		return false
	}

	part.Text = c.editBuffer
	part.Edited = true
	part.Binding = ""

	c.log.Debug("edit committed",
		zap.Int("step", c.target.Step),
		zap.Int("part", c.target.Part),
	)

	if c.opts.ClearTargetOnCommit {
		c.resetEditing()
	}
	return true
}

// RemoveStep deletes the step at index. A target on the removed step is
// dropped without committing; a target on a later step follows it.
func (c *Composer) RemoveStep(index int) bool {
	if index < 0 || index >= len(c.steps) {
		return false
	}

	removed := c.steps[index]
	c.steps = append(c.steps[:index], c.steps[index+1:]...)

	if c.target != nil {
		switch {
		case c.target.Step == index:
			if c.mode == EditPicking {
				c.variablePickerOpen = false
			}
			c.resetEditing()
		case c.target.Step > index:
			c.target.Step--
		}
	}

	c.log.Debug("step removed", zap.Int("index", index), zap.String("id", removed.ID))
	return true
}

// UpdateSearchQuery stores the variable search text
func (c *Composer) UpdateSearchQuery(text string) {
	c.searchQuery = text
}

// SearchResults returns the directory entries matching the search query
func (c *Composer) SearchResults() []models.Variable {
	return c.opts.Directory.Search(c.searchQuery)
}

// DismissOverlays closes both overlays, committing a pending manual edit
// first, and clears the editing target
func (c *Composer) DismissOverlays() {
	if c.mode == EditManual {
		c.CommitEdit()
	}
	c.suggestionsOpen = false
	c.variablePickerOpen = false
	c.resetEditing()
}

// ClosePicker handles the picker's Ok (confirm) and Cancel buttons. Both
// close the picker and drop a target selected for binding. Cancel also
// abandons a manual edit when CancelDiscardsEdit is set.
func (c *Composer) ClosePicker(confirm bool) {
	c.closePicker()
	if !confirm && c.opts.CancelDiscardsEdit && c.mode == EditManual {
		c.log.Debug("manual edit abandoned")
		c.resetEditing()
	}
}

// CancelEdit leaves inline editing. The edit is discarded when
// CancelDiscardsEdit is set and committed otherwise.
func (c *Composer) CancelEdit() bool {
	if c.mode != EditManual {
		return false
	}
	if c.opts.CancelDiscardsEdit {
		c.log.Debug("manual edit abandoned")
		c.resetEditing()
		return true
	}
	c.DismissOverlays()
	return true
}

// Len returns the number of steps
func (c *Composer) Len() int {
	return len(c.steps)
}

// Steps returns a deep copy of the step list
func (c *Composer) Steps() []models.Step {
	out := make([]models.Step, len(c.steps))
	for i, s := range c.steps {
		out[i] = s.Clone()
	}
	return out
}

// Target returns the editing target, if any
func (c *Composer) Target() (models.EditingTarget, bool) {
	if c.target == nil {
		return models.EditingTarget{}, false
	}
	return *c.target, true
}

// Mode returns how the current target was selected
func (c *Composer) Mode() EditMode {
	return c.mode
}

// EditBuffer returns the pending inline edit text
func (c *Composer) EditBuffer() string {
	return c.editBuffer
}

// SuggestionsOpen reports whether the suggestion overlay is visible
func (c *Composer) SuggestionsOpen() bool {
	return c.suggestionsOpen
}

// VariablePickerOpen reports whether the variable overlay is visible
func (c *Composer) VariablePickerOpen() bool {
	return c.variablePickerOpen
}

// SearchQuery returns the variable search text
func (c *Composer) SearchQuery() string {
	return c.searchQuery
}

func (c *Composer) isEditable(stepIndex, partIndex int) bool {
	if stepIndex < 0 || stepIndex >= len(c.steps) {
		return false
	}
	parts := c.steps[stepIndex].Parts
	if partIndex < 0 || partIndex >= len(parts) {
		return false
	}
	return parts[partIndex].IsEditable()
}

func (c *Composer) targetPart() *models.Part {
	if c.target == nil || !c.isEditable(c.target.Step, c.target.Part) {
		return nil
	}
	return &c.steps[c.target.Step].Parts[c.target.Part]
}

// blurManualEdit commits a manual edit running on a part other than the
// given one, the way focus leaving an input does
func (c *Composer) blurManualEdit(stepIndex, partIndex int) {
	if c.mode != EditManual {
		return
	}
	if c.target.Step == stepIndex && c.target.Part == partIndex {
		return
	}
	c.CommitEdit()
	c.resetEditing()
}

func (c *Composer) closePicker() {
	c.variablePickerOpen = false
	if c.mode == EditPicking {
		c.resetEditing()
	}
}

func (c *Composer) resetEditing() {
	c.target = nil
	c.mode = EditNone
	c.editBuffer = ""
}
