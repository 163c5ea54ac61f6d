package model

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type Size struct {
	Label string
	Price decimal.Decimal
}

// CatalogEntry is one purchasable item with its sizes in declared order.
type CatalogEntry struct {
	Item  string
	Sizes []Size
}

// Catalog is the static item → size → unit price table. It is immutable
// once built; every lookup is a pure read.
type Catalog struct {
	entries []CatalogEntry
	index   map[string]int
}

func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.Wrap(ErrInvalidCatalog, "catalog has no items")
	}

	catalog := &Catalog{
		entries: make([]CatalogEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if entry.Item == "" {
			return nil, errors.Wrap(ErrInvalidCatalog, "item name is empty")
		}
		if _, exists := catalog.index[entry.Item]; exists {
			return nil, errors.Wrapf(ErrInvalidCatalog, "item %q is declared twice", entry.Item)
		}
		if len(entry.Sizes) == 0 {
			return nil, errors.Wrapf(ErrInvalidCatalog, "item %q has no sizes", entry.Item)
		}

		seen := make(map[string]bool, len(entry.Sizes))
		sizes := make([]Size, 0, len(entry.Sizes))
		for _, size := range entry.Sizes {
			if size.Label == "" {
				return nil, errors.Wrapf(ErrInvalidCatalog, "item %q has a size without label", entry.Item)
			}
			if seen[size.Label] {
				return nil, errors.Wrapf(ErrInvalidCatalog, "item %q declares size %q twice", entry.Item, size.Label)
			}
			if size.Price.IsNegative() {
				return nil, errors.Wrapf(ErrInvalidCatalog, "item %q size %q has negative price", entry.Item, size.Label)
			}
			seen[size.Label] = true
			sizes = append(sizes, size)
		}

		catalog.index[entry.Item] = len(catalog.entries)
		catalog.entries = append(catalog.entries, CatalogEntry{Item: entry.Item, Sizes: sizes})
	}
	return catalog, nil
}

// DefaultCatalog returns the shop's menu.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]CatalogEntry{
		{Item: "Latte", Sizes: []Size{
			{Label: "Small", Price: decimal.RequireFromString("3.00")},
			{Label: "Medium", Price: decimal.RequireFromString("4.00")},
			{Label: "Large", Price: decimal.RequireFromString("5.00")},
		}},
		{Item: "Espresso", Sizes: []Size{
			{Label: "Small", Price: decimal.RequireFromString("1.25")},
			{Label: "Medium", Price: decimal.RequireFromString("2.50")},
			{Label: "Large", Price: decimal.RequireFromString("3.25")},
		}},
		{Item: "Double Shot Espresso", Sizes: []Size{
			{Label: "Small", Price: decimal.RequireFromString("2.50")},
		}},
		{Item: "Banana Bread", Sizes: []Size{
			{Label: "Small", Price: decimal.RequireFromString("2.00")},
		}},
	})
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) Exists(item string) bool {
	_, ok := c.index[item]
	return ok
}

// PriceOf returns the unit price of item in size. ok is false when the
// item is unknown or not sold in that size.
func (c *Catalog) PriceOf(item, size string) (price decimal.Decimal, ok bool) {
	i, exists := c.index[item]
	if !exists {
		return decimal.Zero, false
	}
	for _, s := range c.entries[i].Sizes {
		if s.Label == size {
			return s.Price, true
		}
	}
	return decimal.Zero, false
}

// AvailableSizes lists the size labels of item in declared order, or nil
// for an unknown item.
func (c *Catalog) AvailableSizes(item string) []string {
	i, exists := c.index[item]
	if !exists {
		return nil
	}
	labels := make([]string, 0, len(c.entries[i].Sizes))
	for _, s := range c.entries[i].Sizes {
		labels = append(labels, s.Label)
	}
	return labels
}

func (c *Catalog) Entries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, CatalogEntry{
			Item:  entry.Item,
			Sizes: append([]Size(nil), entry.Sizes...),
		})
	}
	return entries
}

// FormatPrice renders an amount the way the order summary shows it.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
