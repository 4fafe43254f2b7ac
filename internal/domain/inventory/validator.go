package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

// Catalog es la vista de solo lectura que necesita el validador para comprobar referencias.
type Catalog interface {
	ProductExists(ctx context.Context, productID string) (bool, error)
	LocationExists(ctx context.Context, locationID string) (bool, error)
}

// MovementCandidate es un movimiento aún no admitido en el ledger.
// Cadenas vacías en FromLocation/ToLocation significan "sin extremo".
type MovementCandidate struct {
	ProductID    string
	FromLocation string
	ToLocation   string
	Qty          int64
}

// ValidateMovement aplica las reglas de admisión en orden y corta en el primer fallo:
//  1. el producto existe            → ErrUnknownProduct
//  2. el origen, si viene, existe    → ErrUnknownLocation
//  3. el destino, si viene, existe   → ErrUnknownLocation
//  4. hay al menos un extremo        → ErrMissingEndpoint
//  5. origen != destino              → ErrSameEndpoint
//
// No verifica que el stock resultante sea no negativo: una salida puede dejar
// stock negativo sin ser rechazada. Los errores del Catalog se devuelven tal cual.
func ValidateMovement(ctx context.Context, cat Catalog, c MovementCandidate) error {
	ok, err := cat.ProductExists(ctx, c.ProductID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownProduct
	}
	if c.FromLocation != "" {
		ok, err := cat.LocationExists(ctx, c.FromLocation)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUnknownLocation
		}
	}
	if c.ToLocation != "" {
		ok, err := cat.LocationExists(ctx, c.ToLocation)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUnknownLocation
		}
	}
	if c.FromLocation == "" && c.ToLocation == "" {
		return domain.ErrMissingEndpoint
	}
	if c.FromLocation == c.ToLocation {
		return domain.ErrSameEndpoint
	}
	return nil
}
