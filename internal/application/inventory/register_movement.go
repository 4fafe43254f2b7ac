package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// RegisterMovement valida y agrega un movimiento al ledger en una sola transacción.
//
// La cantidad debe ser positiva (domain.ErrInvalidInput). Las reglas de referencia
// las aplica inventory.ValidateMovement sobre los repositorios de la misma tx.
// No se rechaza una salida que deje stock negativo; solo se registra un warning.
// actor es el subject del token (vacío sin auth) y se propaga al log y al evento.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, actor string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	candidate := inventory.MovementCandidate{
		ProductID:    strings.TrimSpace(in.ProductID),
		FromLocation: trimmed(in.FromLocation),
		ToLocation:   trimmed(in.ToLocation),
		Qty:          in.Qty,
	}
	if candidate.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if candidate.Qty <= 0 {
		return nil, fmt.Errorf("%w: qty debe ser un entero positivo", domain.ErrInvalidInput)
	}

	movement := &entity.Movement{
		Timestamp:    uc.now(),
		ProductID:    candidate.ProductID,
		FromLocation: candidate.FromLocation,
		ToLocation:   candidate.ToLocation,
		Qty:          candidate.Qty,
	}
	var sourceBalance *int64

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		locations repository.LocationRepository,
		movements repository.MovementRepository,
	) error {
		cat := repoCatalog{products: products, locations: locations}
		if err := inventory.ValidateMovement(ctx, cat, candidate); err != nil {
			return err
		}
		if err := movements.Create(ctx, movement); err != nil {
			return err
		}
		if movement.FromLocation == "" {
			return nil
		}
		// Saldo del origen después del movimiento, solo para observabilidad.
		history, err := movements.ListByProduct(ctx, movement.ProductID)
		if err != nil {
			return err
		}
		balance := inventory.Aggregate(history).Get(movement.ProductID, movement.FromLocation)
		sourceBalance = &balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("movement_id", movement.MovementID).
		Str("product_id", movement.ProductID).
		Str("type", movement.Type()).
		Int64("qty", movement.Qty).
		Str("actor", actor).
		Msg("movimiento registrado")
	if sourceBalance != nil && *sourceBalance < 0 {
		uc.log.Warn().
			Str("product_id", movement.ProductID).
			Str("location_id", movement.FromLocation).
			Int64("balance", *sourceBalance).
			Msg("el movimiento deja stock negativo en el origen")
	}
	uc.publish(ctx, ports.EventMovementRecorded, actor, movement)

	out := toMovementResponse(movement)
	return &out, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
