package ports

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// Tipos de evento del ledger.
const (
	EventMovementRecorded = "movement.recorded"
	EventMovementDeleted  = "movement.deleted"
)

// MovementEvent se publica después del Commit de un alta o baja de movimiento.
// Actor es el subject del token que hizo el cambio; vacío si el API corre sin auth.
type MovementEvent struct {
	Type       string
	Movement   entity.Movement
	Actor      string
	OccurredAt time.Time
}

// MovementEventPublisher puerto de salida para notificar cambios del ledger a otros sistemas.
// Un fallo al publicar no revierte la transacción (ya fue confirmada).
type MovementEventPublisher interface {
	PublishMovement(ctx context.Context, event MovementEvent) error
}
