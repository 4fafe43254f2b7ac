package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// MovementUseCase administra el ledger: alta validada, baja por id y consultas.
// Cada alta/baja corre en una transacción; los eventos se publican después del Commit.
type MovementUseCase struct {
	txRunner  ports.TxRunner
	movements repository.MovementRepository
	publisher ports.MovementEventPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewMovementUseCase construye el caso de uso. publisher puede ser nil (no se publican eventos).
func NewMovementUseCase(
	txRunner ports.TxRunner,
	movements repository.MovementRepository,
	publisher ports.MovementEventPublisher,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		publisher: publisher,
		log:       log.Named("movements"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List devuelve el ledger completo, más reciente primero.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	list, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return items, nil
}

// GetByID obtiene un movimiento por id.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMovementResponse(m)
	return &out, nil
}

// DeleteMovement elimina un movimiento del ledger. No hay efecto en cascada:
// solo cambia el stock que se derive en lecturas posteriores.
// actor identifica a quien hace el cambio (subject del token) y va en logs y eventos.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, actor string, id int64) error {
	var deleted *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.LocationRepository,
		movements repository.MovementRepository,
	) error {
		m, err := movements.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if err := movements.Delete(ctx, id); err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Int64("movement_id", id).
		Str("product_id", deleted.ProductID).
		Str("actor", actor).
		Msg("movimiento eliminado")
	uc.publish(ctx, ports.EventMovementDeleted, actor, deleted)
	return nil
}

func (uc *MovementUseCase) publish(ctx context.Context, eventType, actor string, m *entity.Movement) {
	if uc.publisher == nil || m == nil {
		return
	}
	event := ports.MovementEvent{Type: eventType, Movement: *m, Actor: actor, OccurredAt: uc.now()}
	if err := uc.publisher.PublishMovement(ctx, event); err != nil {
		uc.log.Error().Err(err).
			Str("event", eventType).
			Int64("movement_id", m.MovementID).
			Msg("no se pudo publicar el evento de movimiento")
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		MovementID:   m.MovementID,
		Timestamp:    m.Timestamp,
		ProductID:    m.ProductID,
		FromLocation: optional(m.FromLocation),
		ToLocation:   optional(m.ToLocation),
		Qty:          m.Qty,
		Type:         m.Type(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
