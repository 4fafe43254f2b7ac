package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create falla con domain.ErrDuplicateKey si el product_id ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
	// Update falla con domain.ErrNotFound si el producto no existe.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
	// Delete falla con domain.ErrNotFound o domain.ErrHasDependents si algún movimiento lo referencia.
	Delete(ctx context.Context, productID string) error
}
