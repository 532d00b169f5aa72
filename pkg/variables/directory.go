// Package variables holds the global variable directory that placeholder
// parts can be bound to.
package variables

import (
	"strings"

	"github.com/pluqqy/stepper/pkg/models"
	"github.com/pluqqy/stepper/pkg/search"
)

// Directory is an immutable, ordered list of variables
type Directory struct {
	vars []models.Variable
}

// NewDirectory creates a directory from vars. The slice is copied.
func NewDirectory(vars []models.Variable) (*Directory, error) {
	if err := models.ValidateVariables(vars); err != nil {
		return nil, err
	}
	d := &Directory{vars: make([]models.Variable, len(vars))}
	copy(d.vars, vars)
	return d, nil
}

// Default returns the built-in directory
func Default() *Directory {
	d, _ := NewDirectory(models.DefaultVariables)
	return d
}

// All returns every variable in directory order
func (d *Directory) All() []models.Variable {
	out := make([]models.Variable, len(d.vars))
	copy(out, d.vars)
	return out
}

// Len returns the number of variables
func (d *Directory) Len() int {
	return len(d.vars)
}

// Search returns the variables whose name contains query, ignoring case.
// Names starting with query come first; otherwise directory order is kept.
func (d *Directory) Search(query string) []models.Variable {
	return search.Rank(d.vars, query, func(v models.Variable) string {
		return v.Name
	})
}

// Lookup finds a variable by name, ignoring case
func (d *Directory) Lookup(name string) (models.Variable, bool) {
	for _, v := range d.vars {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return models.Variable{}, false
}

// Get finds a variable by id
func (d *Directory) Get(id int) (models.Variable, bool) {
	for _, v := range d.vars {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variable{}, false
}
