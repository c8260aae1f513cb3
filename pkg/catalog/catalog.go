package catalog

import (
	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// Item is a single selectable entity: a candidate allocation with an upfront
// cost and an expected value/return.
type Item struct {
	Name  string  `yaml:"name"`
	Cost  float64 `yaml:"cost"`
	Value float64 `yaml:"value"`
}

// Efficiency is the value obtained per unit of cost.
func (it Item) Efficiency() float64 {
	return it.Value / it.Cost
}

// ROI is the percentage return on investment, (value-cost)/cost * 100.
func (it Item) ROI() float64 {
	return (it.Value - it.Cost) / it.Cost * 100
}

// Catalog is an immutable, ordered collection of items. Chromosome bit i
// refers to item i, so order is significant and fixed for the lifetime of a
// run.
type Catalog struct {
	items []Item
}

// New validates the given items and returns a Catalog. Names must be unique
// and non-empty, and every cost and value must be positive. An empty item
// list is legal and yields a zero-length catalog.
func New(items []Item) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, errors.WithFields(
				errors.New(errors.InvalidItem, "item name must not be empty"),
				errors.Fields{"index": i})
		}
		if it.Cost <= 0 {
			return nil, errors.WithFields(
				errors.New(errors.InvalidItem, "item cost must be positive"),
				errors.Fields{"name": it.Name, "cost": it.Cost})
		}
		if it.Value <= 0 {
			return nil, errors.WithFields(
				errors.New(errors.InvalidItem, "item value must be positive"),
				errors.Fields{"name": it.Name, "value": it.Value})
		}
		if _, dup := seen[it.Name]; dup {
			return nil, errors.WithFields(
				errors.New(errors.DuplicateItemName, "item names must be unique"),
				errors.Fields{"name": it.Name})
		}
		seen[it.Name] = struct{}{}
	}

	copied := make([]Item, len(items))
	copy(copied, items)
	return &Catalog{items: copied}, nil
}

// Len returns the number of items, which is also the chromosome length.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item at index i.
func (c *Catalog) Item(i int) Item {
	return c.items[i]
}

// Items returns a copy of the item list.
func (c *Catalog) Items() []Item {
	copied := make([]Item, len(c.items))
	copy(copied, c.items)
	return copied
}

// Totals sums cost and value over the items flagged by include. include must
// have the catalog's length.
func (c *Catalog) Totals(include []bool) (cost, value float64) {
	for i, selected := range include {
		if selected {
			cost += c.items[i].Cost
			value += c.items[i].Value
		}
	}
	return cost, value
}
