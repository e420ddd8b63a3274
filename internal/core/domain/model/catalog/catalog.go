// Package catalog holds the read-only pricing reference data: per-item unit
// prices and volumes, per-area crew labor rates, and ladder-truck duration
// tiers. The catalog is the single source of truth for monetary values; any
// price arriving from outside the backend is replaced by a catalog lookup
// before it participates in a calculation.
package catalog

import (
	"errors"

	"haulaway/internal/pkg/errs"
)

// Ladder tier names as they appear on the customer-facing form.
const (
	LadderTierUnder10Floors = "10층 미만"
	LadderTierOver10Floors  = "10층 이상"
)

// ItemCatalogEntry is an immutable reference row describing one orderable item,
// looked up by (Category, Name).
type ItemCatalogEntry struct {
	Category    string
	Name        string
	DisplayName string
	UnitPrice   int
	UnitVolume  float64
}

// NewItemCatalogEntry validates and creates a catalog row.
func NewItemCatalogEntry(category, name, displayName string, unitPrice int, unitVolume float64) (ItemCatalogEntry, error) {
	if category == "" {
		return ItemCatalogEntry{}, errs.NewValueIsRequiredError("category")
	}
	if name == "" {
		return ItemCatalogEntry{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return ItemCatalogEntry{}, errs.NewValueIsInvalidError("unitPrice")
	}
	if unitVolume < 0 {
		return ItemCatalogEntry{}, errs.NewValueIsInvalidError("unitVolume")
	}
	if displayName == "" {
		displayName = name
	}

	return ItemCatalogEntry{
		Category:    category,
		Name:        name,
		DisplayName: displayName,
		UnitPrice:   unitPrice,
		UnitVolume:  unitVolume,
	}, nil
}

// AreaRate is the per-crew-size base labor price for one service zone.
// Price1..Price3 correspond to crews of one, two and three workers.
type AreaRate struct {
	AreaName string
	Price1   int
	Price2   int
	Price3   int
}

// NewAreaRate validates and creates an area rate. Prices must be strictly
// increasing with crew size.
func NewAreaRate(areaName string, price1, price2, price3 int) (AreaRate, error) {
	if areaName == "" {
		return AreaRate{}, errs.NewValueIsRequiredError("areaName")
	}
	if price1 < 0 || !(price1 < price2 && price2 < price3) {
		return AreaRate{}, errs.NewValueIsInvalidErrorWithCause("areaRate",
			errors.New("prices must satisfy 0 <= price1 < price2 < price3"))
	}

	return AreaRate{AreaName: areaName, Price1: price1, Price2: price2, Price3: price3}, nil
}

// PriceForCrew returns the labor price for the given crew size.
// Crew sizes outside 1..3 clamp to the nearest tier.
func (r AreaRate) PriceForCrew(crewSize int) int {
	switch {
	case crewSize <= 1:
		return r.Price1
	case crewSize == 2:
		return r.Price2
	default:
		return r.Price3
	}
}

// DurationPrice is one hour-bucket entry of a ladder tier.
type DurationPrice struct {
	DurationLabel string
	Price         int
}

// LadderTier is the ladder-truck price bracket for one floor-height category.
// DurationPrices is ordered by hour bucket; index 0 is the base rate.
type LadderTier struct {
	TierName       string
	DurationPrices []DurationPrice
}

// NewLadderTier validates and creates a ladder tier with at least a base rate.
func NewLadderTier(tierName string, durationPrices []DurationPrice) (LadderTier, error) {
	if tierName == "" {
		return LadderTier{}, errs.NewValueIsRequiredError("tierName")
	}
	if len(durationPrices) == 0 {
		return LadderTier{}, errs.NewValueIsRequiredError("durationPrices")
	}

	prices := make([]DurationPrice, len(durationPrices))
	copy(prices, durationPrices)
	return LadderTier{TierName: tierName, DurationPrices: prices}, nil
}

// PriceForHours returns the price of the requested hour bucket. Out-of-range
// indexes fall back to the base rate at index 0 rather than failing, so a
// malformed request still yields a reviewable number.
func (t LadderTier) PriceForHours(hours int) int {
	if len(t.DurationPrices) == 0 {
		return 0
	}
	if hours < 0 || hours >= len(t.DurationPrices) {
		return t.DurationPrices[0].Price
	}
	return t.DurationPrices[hours].Price
}

type itemKey struct {
	category string
	name     string
}

// Catalog is an in-memory snapshot of the pricing reference data. It is
// immutable after construction and safe for concurrent readers.
type Catalog struct {
	items   map[itemKey]ItemCatalogEntry
	areas   map[string]AreaRate
	ladders map[string]LadderTier
}

// NewCatalog builds the lookup structures from reference rows.
// Later duplicates overwrite earlier ones.
func NewCatalog(items []ItemCatalogEntry, areas []AreaRate, ladders []LadderTier) *Catalog {
	c := &Catalog{
		items:   make(map[itemKey]ItemCatalogEntry, len(items)),
		areas:   make(map[string]AreaRate, len(areas)),
		ladders: make(map[string]LadderTier, len(ladders)),
	}
	for _, item := range items {
		c.items[itemKey{category: item.Category, name: item.Name}] = item
	}
	for _, area := range areas {
		c.areas[area.AreaName] = area
	}
	for _, ladder := range ladders {
		c.ladders[ladder.TierName] = ladder
	}
	return c
}

// LookupItem finds a catalog row by (category, name).
func (c *Catalog) LookupItem(category, name string) (ItemCatalogEntry, bool) {
	entry, ok := c.items[itemKey{category: category, name: name}]
	return entry, ok
}

// LookupArea finds the labor rate for a service zone.
func (c *Catalog) LookupArea(areaName string) (AreaRate, bool) {
	rate, ok := c.areas[areaName]
	return rate, ok
}

// LookupLadderTier finds the ladder price bracket by tier name.
func (c *Catalog) LookupLadderTier(tierName string) (LadderTier, bool) {
	tier, ok := c.ladders[tierName]
	return tier, ok
}
