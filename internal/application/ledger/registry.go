// Package ledger owns the per-user financial state: the active month lists, the month
// archive and the category registry, and persists them through the StateStore port.
package ledger

import (
	"strings"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// Registry is the ordered set of categories of one user.
// Names are unique case-insensitively.
type Registry struct {
	items []entity.Category
}

// NewRegistry builds a registry from stored categories, dropping empty and duplicate names.
func NewRegistry(categories []entity.Category) *Registry {
	r := &Registry{items: make([]entity.Category, 0, len(categories))}
	for _, c := range categories {
		r.Add(c)
	}
	return r
}

// DefaultRegistry returns the registry given to users with no stored categories.
func DefaultRegistry() *Registry {
	r := &Registry{}
	for _, name := range entity.DefaultCategoryNames {
		r.Add(entity.Category{Name: name})
	}
	return r
}

// List returns a copy of the categories in registry order.
func (r *Registry) List() []entity.Category {
	out := make([]entity.Category, len(r.items))
	copy(out, r.items)
	return out
}

// Add normalizes and appends a category. Empty names and case-insensitive duplicates
// are ignored; added is false in that case.
func (r *Registry) Add(in entity.Category) (entity.Category, bool) {
	c := entity.Category{
		Name:  strings.TrimSpace(in.Name),
		Color: strings.TrimSpace(in.Color),
		Icon:  strings.TrimSpace(in.Icon),
	}
	if c.Name == "" || r.indexOf(c.Name) >= 0 {
		return entity.Category{}, false
	}
	if c.Color == "" {
		c.Color = entity.PaletteColor(len(r.items))
	}
	if c.Icon == "" {
		c.Icon = entity.DefaultCategoryIcon
	}
	r.items = append(r.items, c)
	return c, true
}

// Rename changes the name of the category matching oldName. When newName already names
// another category the two are merged into the existing one.
// It returns the exact stored names to cascade from and to, and ok=false when nothing changes.
func (r *Registry) Rename(oldName, newName string) (from, to string, ok bool) {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" || oldName == newName {
		return "", "", false
	}

	from, to = oldName, newName
	i := r.indexOf(oldName)
	if i >= 0 {
		from = r.items[i].Name
	}
	if from == newName {
		return "", "", false
	}

	j := r.indexOf(newName)
	switch {
	case j >= 0 && j != i:
		to = r.items[j].Name
		if i >= 0 {
			r.removeAt(i)
		}
	case i >= 0:
		r.items[i].Name = newName
	}
	return from, to, true
}

// Delete removes the category matching name and returns its stored name.
func (r *Registry) Delete(name string) (string, bool) {
	i := r.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return "", false
	}
	stored := r.items[i].Name
	r.removeAt(i)
	return stored, true
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return &Registry{items: r.List()}
}

func (r *Registry) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

func (r *Registry) removeAt(i int) {
	r.items = append(r.items[:i], r.items[i+1:]...)
}
