package ports

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Si fn devuelve error se hace Rollback y no queda estado parcial visible; si no, Commit.
// Cada operación de escritura (alta, cambio, baja) corre en una sola llamada a Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		locations repository.LocationRepository,
		movements repository.MovementRepository,
	) error) error
}
