package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del ledger de movimientos.
// El ledger es append-only: no hay Update.
type MovementRepository interface {
	// Create asigna MovementID y Timestamp (si está en cero) y agrega la fila.
	Create(ctx context.Context, movement *entity.Movement) error
	// GetByID devuelve (nil, nil) si el movimiento no existe.
	GetByID(ctx context.Context, movementID int64) (*entity.Movement, error)
	// List devuelve el ledger completo, más reciente primero.
	List(ctx context.Context) ([]*entity.Movement, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error)
	Count(ctx context.Context) (int, error)
	// Delete falla con domain.ErrNotFound si el movimiento no existe.
	Delete(ctx context.Context, movementID int64) error
}
