// Package catalog holds the suggested step templates.
package catalog

import (
	"fmt"
	"strings"

	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/search"
)

// Catalog is an immutable, ordered list of templates
type Catalog struct {
	templates []string
}

// New creates a catalog from templates. The slice is copied.
func New(templates []string) (*Catalog, error) {
	for i, tmpl := range templates {
		if strings.TrimSpace(tmpl) == "" {
			return nil, fmt.Errorf("template %d: %w", i+1, models.ErrEmptyTemplate)
		}
	}
	c := &Catalog{templates: make([]string, len(templates))}
	copy(c.templates, templates)
	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, _ := New(models.DefaultTemplates)
	return c
}

// Templates returns every template in catalog order
func (c *Catalog) Templates() []string {
	out := make([]string, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Search filters templates by query, prefix matches first
func (c *Catalog) Search(query string) []string {
	return search.Rank(c.templates, query, func(s string) string { return s })
}
