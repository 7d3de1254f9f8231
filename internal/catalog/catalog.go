package catalog

import "fmt"

// Catalog is an immutable, indexed list of items for one quiz type.
type Catalog struct {
	def        Definition
	byID       map[string]int
	byCategory map[string][]Item
	categories []string
}

// newCatalog validates the definition and builds its indices.
func newCatalog(def Definition) (*Catalog, error) {
	if def.Type == "" {
		return nil, fmt.Errorf("definition has no quiz type")
	}
	if len(def.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", def.Type, ErrEmptyCatalog)
	}

	items := make([]Item, len(def.Items))
	copy(items, def.Items)
	def.Items = items

	c := &Catalog{
		def:        def,
		byID:       make(map[string]int, len(items)),
		byCategory: make(map[string][]Item),
	}
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("%s: item %d has empty id", def.Type, i)
		}
		if it.Answer == "" {
			return nil, fmt.Errorf("%s: item %q has empty answer", def.Type, it.ID)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate item id %q", def.Type, it.ID)
		}
		c.byID[it.ID] = i
		if _, seen := c.byCategory[it.Category]; !seen {
			c.categories = append(c.categories, it.Category)
		}
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	return c, nil
}

// Definition returns the quiz type definition. Items are not copied.
func (c *Catalog) Definition() Definition {
	return c.def
}

// Type returns the catalog's quiz type.
func (c *Catalog) Type() QuizType {
	return c.def.Type
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.def.Items)
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.def.Items))
	copy(out, c.def.Items)
	return out
}

// Item looks up an item by ID.
func (c *Catalog) Item(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.def.Items[i], true
}

// Categories returns category names in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Filter returns the items of one category, or all items when category is empty.
// An unknown category yields an empty pool.
func (c *Catalog) Filter(category string) []Item {
	if category == "" {
		return c.Items()
	}
	src := c.byCategory[category]
	out := make([]Item, len(src))
	copy(out, src)
	return out
}
