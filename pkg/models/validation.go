package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Settings validation errors
var (
	ErrEmptyTemplate       = errors.New("template cannot be empty")
	ErrEmptyVariableName   = errors.New("variable name cannot be empty")
	ErrDuplicateVariableID = errors.New("duplicate variable id")
	ErrEmptyPlaceholder    = errors.New("placeholder word cannot be empty")
	ErrNoQuoteCharacters   = errors.New("at least one quote character is required")
	ErrInvalidBox          = errors.New("annotator box must have a positive size")
)

// ValidateVariables checks names and id uniqueness
func ValidateVariables(vars []Variable) error {
	seen := make(map[int]bool, len(vars))
	for _, v := range vars {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("variable %d: %w", v.ID, ErrEmptyVariableName)
		}
		if seen[v.ID] {
			return fmt.Errorf("variable %d (%s): %w", v.ID, v.Name, ErrDuplicateVariableID)
		}
		seen[v.ID] = true
	}
	return nil
}

// Validate checks the settings for values the composer cannot work with
func (s *Settings) Validate() error {
	for i, tmpl := range s.Catalog.Templates {
		if strings.TrimSpace(tmpl) == "" {
			return fmt.Errorf("catalog template %d: %w", i+1, ErrEmptyTemplate)
		}
	}

	if strings.TrimSpace(s.Catalog.Placeholder) == "" {
		return ErrEmptyPlaceholder
	}

	if utf8.RuneCountInString(s.Catalog.Quotes) == 0 {
		return ErrNoQuoteCharacters
	}

	if err := ValidateVariables(s.Variables); err != nil {
		return err
	}

	for _, b := range s.Annotator.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("box %d: %w", b.ID, ErrInvalidBox)
		}
	}

	return nil
}
