package catalog

import "fmt"

// Registry holds the catalogs of every available quiz type.
type Registry struct {
	order    []QuizType
	catalogs map[QuizType]*Catalog
}

// NewRegistry builds a registry from the given definitions.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{catalogs: make(map[QuizType]*Catalog)}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry with the bundled quiz types.
func Builtin() *Registry {
	r, err := NewRegistry(CountryCapitalsDefinition(), USStateCapitalsDefinition(), CountryFlagsDefinition())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid builtin data: %v", err))
	}
	return r
}

// Register adds or replaces the catalog for def.Type.
func (r *Registry) Register(def Definition) error {
	c, err := newCatalog(def)
	if err != nil {
		return err
	}
	if _, exists := r.catalogs[def.Type]; !exists {
		r.order = append(r.order, def.Type)
	}
	r.catalogs[def.Type] = c
	return nil
}

// Get returns the catalog for a quiz type.
func (r *Registry) Get(qt QuizType) (*Catalog, error) {
	c, ok := r.catalogs[qt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuizType, qt)
	}
	return c, nil
}

// Has reports whether a catalog is registered for qt.
func (r *Registry) Has(qt QuizType) bool {
	_, ok := r.catalogs[qt]
	return ok
}

// Types returns registered quiz types in registration order.
func (r *Registry) Types() []QuizType {
	out := make([]QuizType, len(r.order))
	copy(out, r.order)
	return out
}

// Items returns all items for qt, or nil when qt is not registered.
func (r *Registry) Items(qt QuizType) []Item {
	c, ok := r.catalogs[qt]
	if !ok {
		return nil
	}
	return c.Items()
}

// Categories returns the categories of qt in first-seen order.
func (r *Registry) Categories(qt QuizType) []string {
	c, ok := r.catalogs[qt]
	if !ok {
		return nil
	}
	return c.Categories()
}

// Filter returns the items of qt in category, or all items when category is empty.
func (r *Registry) Filter(qt QuizType, category string) []Item {
	c, ok := r.catalogs[qt]
	if !ok {
		return nil
	}
	return c.Filter(category)
}
