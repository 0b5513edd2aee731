// Package category holds the fixed registry of activity categories.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies activities for display. Color is an opaque token
// passed through to renderers.
type Category struct {
	ID    string `json:"id" mapstructure:"id"`
	Label string `json:"label" mapstructure:"label"`
	Color string `json:"color" mapstructure:"color"`
}

// Unknown is what renderers show for an id that is not registered.
var Unknown = Category{Label: "Uncategorized"}

// Defaults returns the built-in categories. Labels are English; set
// categories in the config to use other labels.
func Defaults() []Category {
	return []Category{
		{ID: "work", Label: "Work", Color: "bg-purple-500"},
		{ID: "personal", Label: "Personal", Color: "bg-blue-500"},
		{ID: "health", Label: "Health", Color: "bg-green-500"},
		{ID: "study", Label: "Study", Color: "bg-amber-500"},
		{ID: "social", Label: "Social", Color: "bg-pink-500"},
	}
}

// Registry is an immutable, ordered set of categories.
type Registry struct {
	list []Category
	byID map[string]int
}

// NewRegistry builds a registry; ids must be non-empty and unique.
func NewRegistry(cats ...Category) (*Registry, error) {
	r := &Registry{
		list: make([]Category, 0, len(cats)),
		byID: make(map[string]int, len(cats)),
	}
	for _, c := range cats {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			return nil, errors.New("category: id required")
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("category: duplicate id %q", c.ID)
		}
		if c.Label == "" {
			c.Label = c.ID
		}
		r.byID[c.ID] = len(r.list)
		r.list = append(r.list, c)
	}
	return r, nil
}

// Default is the registry of Defaults.
func Default() *Registry {
	r, err := NewRegistry(Defaults()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds the category with id. A missing id is an expected outcome,
// not an error.
func (r *Registry) Lookup(id string) (Category, bool) {
	if r == nil {
		return Category{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return Category{}, false
	}
	return r.list[i], true
}

// Display is Lookup with the Unknown fallback applied.
func (r *Registry) Display(id string) Category {
	if c, ok := r.Lookup(id); ok {
		return c
	}
	return Unknown
}

// All returns the categories in registration order.
func (r *Registry) All() []Category {
	if r == nil {
		return nil
	}
	out := make([]Category, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.list)
}

// IDs lists the registered ids, for completion and prompts.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, r.Len())
	for _, c := range r.All() {
		ids = append(ids, c.ID)
	}
	return ids
}
