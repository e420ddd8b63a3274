package ports

import (
	"context"

	"haulaway/internal/core/domain/model/catalog"
)

// CatalogRepository loads the pricing reference data. The catalog is read at
// startup into an immutable in-memory snapshot; Seed populates an empty store
// with the default rows.
type CatalogRepository interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
	Seed(ctx context.Context) error
}
