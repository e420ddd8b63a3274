package catalogrepo

import (
	"context"
	"sort"

	"haulaway/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Load reads all reference rows and builds the in-memory catalog snapshot.
func (r *GormCatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	var itemDTOs []ItemDTO
	if err := r.db.WithContext(ctx).Find(&itemDTOs).Error; err != nil {
		return nil, err
	}

	var areaDTOs []AreaRateDTO
	if err := r.db.WithContext(ctx).Find(&areaDTOs).Error; err != nil {
		return nil, err
	}

	var ladderDTOs []LadderPriceDTO
	if err := r.db.WithContext(ctx).Order("tier_name, hours").Find(&ladderDTOs).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.ItemCatalogEntry, 0, len(itemDTOs))
	for _, dto := range itemDTOs {
		entry, err := catalog.NewItemCatalogEntry(dto.Category, dto.Name, dto.DisplayName, dto.UnitPrice, dto.UnitVolume)
		if err != nil {
			return nil, err
		}
		items = append(items, entry)
	}

	areas := make([]catalog.AreaRate, 0, len(areaDTOs))
	for _, dto := range areaDTOs {
		rate, err := catalog.NewAreaRate(dto.AreaName, dto.Price1, dto.Price2, dto.Price3)
		if err != nil {
			return nil, err
		}
		areas = append(areas, rate)
	}

	ladders, err := buildLadderTiers(ladderDTOs)
	if err != nil {
		return nil, err
	}

	return catalog.NewCatalog(items, areas, ladders), nil
}

// Seed inserts the default reference rows into an empty store. Existing rows
// win: conflicts are skipped so repeated startups never overwrite operator
// edits.
func (r *GormCatalogRepository) Seed(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	for _, entry := range catalog.DefaultItems() {
		dto := itemFromDomain(entry)
		if err := db.Where(ItemDTO{Category: dto.Category, Name: dto.Name}).
			FirstOrCreate(&dto).Error; err != nil {
			return err
		}
	}

	for _, rate := range catalog.DefaultAreaRates() {
		dto := areaFromDomain(rate)
		if err := db.Where(AreaRateDTO{AreaName: dto.AreaName}).
			FirstOrCreate(&dto).Error; err != nil {
			return err
		}
	}

	for _, tier := range catalog.DefaultLadderTiers() {
		for hours, price := range tier.DurationPrices {
			dto := LadderPriceDTO{
				TierName:      tier.TierName,
				Hours:         hours,
				DurationLabel: price.DurationLabel,
				Price:         price.Price,
			}
			if err := db.Where(LadderPriceDTO{TierName: dto.TierName, Hours: dto.Hours}).
				FirstOrCreate(&dto).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// buildLadderTiers groups hour-bucket rows into ordered tiers.
func buildLadderTiers(dtos []LadderPriceDTO) ([]catalog.LadderTier, error) {
	grouped := make(map[string][]LadderPriceDTO)
	names := make([]string, 0)
	for _, dto := range dtos {
		if _, seen := grouped[dto.TierName]; !seen {
			names = append(names, dto.TierName)
		}
		grouped[dto.TierName] = append(grouped[dto.TierName], dto)
	}
	sort.Strings(names)

	tiers := make([]catalog.LadderTier, 0, len(names))
	for _, name := range names {
		rows := grouped[name]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Hours < rows[j].Hours })

		prices := make([]catalog.DurationPrice, 0, len(rows))
		for _, row := range rows {
			prices = append(prices, catalog.DurationPrice{
				DurationLabel: row.DurationLabel,
				Price:         row.Price,
			})
		}

		tier, err := catalog.NewLadderTier(name, prices)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}
