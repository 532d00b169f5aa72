package composer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/steps"
	"github.com/pluqqy/stepper/pkg/variables"
)

// Options configures a Composer
type Options struct {
	// ExclusiveOverlays closes the other overlay whenever one is opened
	// (default: true)
	ExclusiveOverlays bool

	// CancelDiscardsEdit makes Cancel abandon a pending manual edit instead
	// of behaving exactly like Ok (default: false)
	CancelDiscardsEdit bool

	// ClearTargetOnCommit drops the editing target after CommitEdit
	// (default: false, the target survives repeated blur commits)
	ClearTargetOnCommit bool

	// NewID generates step ids (default: time-ordered UUIDv7)
	NewID func() string

	Directory *variables.Directory
	Tokenizer *steps.Tokenizer
	Logger    *zap.Logger
}

// DefaultOptions returns the default composer configuration
func DefaultOptions() Options {
	return Options{
		ExclusiveOverlays:   true,
		CancelDiscardsEdit:  false,
		ClearTargetOnCommit: false,
	}
}

// OptionsFromSettings builds composer options from loaded settings
func OptionsFromSettings(settings *models.Settings, dir *variables.Directory, logger *zap.Logger) Options {
	opts := DefaultOptions()
	if settings != nil {
		opts.ExclusiveOverlays = settings.Composer.ExclusiveOverlays
		opts.CancelDiscardsEdit = settings.Composer.CancelDiscardsEdit
		opts.ClearTargetOnCommit = settings.Composer.ClearTargetOnCommit
		opts.Tokenizer = steps.NewTokenizer(settings.Catalog.Placeholder, settings.Catalog.Quotes)
	}
	opts.Directory = dir
	opts.Logger = logger
	return opts
}

func (o *Options) fillDefaults() {
	if o.NewID == nil {
		o.NewID = newStepID
	}
	if o.Directory == nil {
		o.Directory = variables.Default()
	}
	if o.Tokenizer == nil {
		o.Tokenizer = steps.NewTokenizer(steps.DefaultPlaceholder, steps.DefaultQuotes)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

func newStepID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
