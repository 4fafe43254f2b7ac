package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	// Create falla con domain.ErrDuplicateKey si el location_id ya existe.
	Create(ctx context.Context, location *entity.Location) error
	// GetByID devuelve (nil, nil) si la ubicación no existe.
	GetByID(ctx context.Context, locationID string) (*entity.Location, error)
	// Update falla con domain.ErrNotFound si la ubicación no existe.
	Update(ctx context.Context, location *entity.Location) error
	List(ctx context.Context) ([]*entity.Location, error)
	Count(ctx context.Context) (int, error)
	// Delete falla con domain.ErrNotFound, o domain.ErrHasDependents si algún
	// movimiento la usa como origen o destino.
	Delete(ctx context.Context, locationID string) error
}
