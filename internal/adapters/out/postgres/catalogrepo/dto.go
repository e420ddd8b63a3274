// Package catalogrepo loads and seeds the pricing reference tables. The rows
// change rarely and only through operations tooling, so the repository exposes
// a whole-catalog Load rather than per-row lookups.
package catalogrepo

import "haulaway/internal/core/domain/model/catalog"

// ItemDTO is one orderable item reference row.
type ItemDTO struct {
	Category    string `gorm:"primaryKey"`
	Name        string `gorm:"primaryKey"`
	DisplayName string
	UnitPrice   int
	UnitVolume  float64
}

// TableName overrides GORM's naming convention.
func (ItemDTO) TableName() string {
	return "catalog_items"
}

// AreaRateDTO is the per-crew labor price row of one service zone.
type AreaRateDTO struct {
	AreaName string `gorm:"primaryKey"`
	Price1   int
	Price2   int
	Price3   int
}

// TableName overrides GORM's naming convention.
func (AreaRateDTO) TableName() string {
	return "catalog_area_rates"
}

// LadderPriceDTO is one hour bucket of a ladder tier. Hours is the bucket
// index, 0 being the base rate.
type LadderPriceDTO struct {
	TierName      string `gorm:"primaryKey"`
	Hours         int    `gorm:"primaryKey"`
	DurationLabel string
	Price         int
}

// TableName overrides GORM's naming convention.
func (LadderPriceDTO) TableName() string {
	return "catalog_ladder_prices"
}

func itemFromDomain(entry catalog.ItemCatalogEntry) ItemDTO {
	return ItemDTO{
		Category:    entry.Category,
		Name:        entry.Name,
		DisplayName: entry.DisplayName,
		UnitPrice:   entry.UnitPrice,
		UnitVolume:  entry.UnitVolume,
	}
}

func areaFromDomain(rate catalog.AreaRate) AreaRateDTO {
	return AreaRateDTO{
		AreaName: rate.AreaName,
		Price1:   rate.Price1,
		Price2:   rate.Price2,
		Price3:   rate.Price3,
	}
}
