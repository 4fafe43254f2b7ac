package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ inventory.Catalog = repoCatalog{}

// repoCatalog adapta los repositorios (atados a la transacción en curso) al Catalog del validador.
type repoCatalog struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
}

func (c repoCatalog) ProductExists(ctx context.Context, productID string) (bool, error) {
	p, err := c.products.GetByID(ctx, productID)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

func (c repoCatalog) LocationExists(ctx context.Context, locationID string) (bool, error) {
	l, err := c.locations.GetByID(ctx, locationID)
	if err != nil {
		return false, err
	}
	return l != nil, nil
}
