package models

// Settings represents the application configuration
type Settings struct {
	Catalog   CatalogSettings   `yaml:"catalog" mapstructure:"catalog"`
	Variables []Variable        `yaml:"variables" mapstructure:"variables"`
	Composer  ComposerSettings  `yaml:"composer" mapstructure:"composer"`
	Output    OutputSettings    `yaml:"output" mapstructure:"output"`
	UI        UISettings        `yaml:"ui" mapstructure:"ui"`
	Logging   LoggingSettings   `yaml:"logging" mapstructure:"logging"`
	Annotator AnnotatorSettings `yaml:"annotator" mapstructure:"annotator"`
}

// CatalogSettings holds the suggested templates and how they are split
type CatalogSettings struct {
	Templates   []string `yaml:"templates" mapstructure:"templates"`
	Placeholder string   `yaml:"placeholder" mapstructure:"placeholder"`
	Quotes      string   `yaml:"quotes" mapstructure:"quotes"` // every rune is a quote character
}

// ComposerSettings toggles the behaviors that differed between editor variants
type ComposerSettings struct {
	ExclusiveOverlays   bool `yaml:"exclusive_overlays" mapstructure:"exclusive_overlays"`
	CancelDiscardsEdit  bool `yaml:"cancel_discards_edit" mapstructure:"cancel_discards_edit"`
	ClearTargetOnCommit bool `yaml:"clear_target_on_commit" mapstructure:"clear_target_on_commit"`
}

// OutputSettings controls how composed steps are exported
type OutputSettings struct {
	Format   string `yaml:"format" mapstructure:"format"` // "text" or "markdown"
	Heading  string `yaml:"heading" mapstructure:"heading"`
	Numbered bool   `yaml:"numbered" mapstructure:"numbered"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp   bool `yaml:"show_help" mapstructure:"show_help"`
	WrapWidth  int  `yaml:"wrap_width" mapstructure:"wrap_width"`
	MaxResults int  `yaml:"max_results" mapstructure:"max_results"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	Level string `yaml:"level" mapstructure:"level"` // empty means silent
	File  string `yaml:"file" mapstructure:"file"`
}

// AnnotatorSettings holds the initial boxes of the annotator board
type AnnotatorSettings struct {
	Boxes []Box `yaml:"boxes" mapstructure:"boxes"`
}

// Box is a labelled rectangle in terminal cells
type Box struct {
	ID     int `yaml:"id" mapstructure:"id"`
	X      int `yaml:"x" mapstructure:"x"`
	Y      int `yaml:"y" mapstructure:"y"`
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// DefaultTemplates are the suggestions offered when no catalog is configured
var DefaultTemplates = []string{
	`Click on "Text"`,
	`Click on "Text" after "Text"`,
	`Click on "Text" for "Text"`,
}

// DefaultVariables is the global variable directory shipped with the tool
var DefaultVariables = []Variable{
	{ID: 1, Name: "test"},
	{ID: 2, Name: "mahadev"},
	{ID: 3, Name: "shivam"},
	{ID: 4, Name: "dubey"},
	{ID: 5, Name: "front-end"},
	{ID: 6, Name: "back-end"},
	{ID: 7, Name: "Mern-Stack"},
}

// DefaultBoxes lays out five boxes in two rows
var DefaultBoxes = []Box{
	{ID: 1, X: 2, Y: 1, Width: 16, Height: 5},
	{ID: 2, X: 22, Y: 1, Width: 16, Height: 5},
	{ID: 3, X: 42, Y: 1, Width: 16, Height: 5},
	{ID: 4, X: 2, Y: 8, Width: 16, Height: 5},
	{ID: 5, X: 22, Y: 8, Width: 16, Height: 5},
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	templates := make([]string, len(DefaultTemplates))
	copy(templates, DefaultTemplates)
	variables := make([]Variable, len(DefaultVariables))
	copy(variables, DefaultVariables)
	boxes := make([]Box, len(DefaultBoxes))
	copy(boxes, DefaultBoxes)

	return &Settings{
		Catalog: CatalogSettings{
			Templates:   templates,
			Placeholder: "text",
			Quotes:      `"`,
		},
		Variables: variables,
		Composer: ComposerSettings{
			ExclusiveOverlays:   true,
			CancelDiscardsEdit:  false,
			ClearTargetOnCommit: false,
		},
		Output: OutputSettings{
			Format:   "text",
			Heading:  "## STEPS",
			Numbered: true,
		},
		UI: UISettings{
			ShowHelp:   false,
			WrapWidth:  0,
			MaxResults: 8,
		},
		Logging: LoggingSettings{
			Level: "",
			File:  ".stepper/stepper.log",
		},
		Annotator: AnnotatorSettings{
			Boxes: boxes,
		},
	}
}
