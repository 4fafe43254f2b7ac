package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `movement_id, timestamp, product_id, from_location, to_location, qty`

// Create inserta el movimiento; movement_id lo asigna la secuencia BIGSERIAL.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.Timestamp.IsZero() {
		movement.Timestamp = time.Now().UTC()
	}
	query := `
		INSERT INTO product_movements (timestamp, product_id, from_location, to_location, qty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING movement_id`
	err := r.q.QueryRow(ctx, query,
		movement.Timestamp, movement.ProductID,
		nullable(movement.FromLocation), nullable(movement.ToLocation), movement.Qty,
	).Scan(&movement.MovementID)
	if err != nil {
		return domain.NewStoreError("create movement", err)
	}
	return nil
}

// GetByID obtiene un movimiento por id.
func (r *MovementRepo) GetByID(ctx context.Context, movementID int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM product_movements WHERE movement_id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get movement", err)
	}
	return m, nil
}

// List devuelve el ledger completo, más reciente primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM product_movements ORDER BY timestamp DESC, movement_id DESC`
	return r.list(ctx, "list movements", query)
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM product_movements
		WHERE product_id = $1 ORDER BY timestamp DESC, movement_id DESC`
	return r.list(ctx, "list movements by product", query, productID)
}

func (r *MovementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, domain.NewStoreError("scan movement", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	return list, nil
}

// Count devuelve el número de movimientos del ledger.
func (r *MovementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product_movements`).Scan(&n); err != nil {
		return 0, domain.NewStoreError("count movements", err)
	}
	return n, nil
}

// Delete elimina un movimiento por id.
func (r *MovementRepo) Delete(ctx context.Context, movementID int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_movements WHERE movement_id = $1`, movementID)
	if err != nil {
		return domain.NewStoreError("delete movement", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var from, to *string
	if err := row.Scan(&m.MovementID, &m.Timestamp, &m.ProductID, &from, &to, &m.Qty); err != nil {
		return nil, err
	}
	m.FromLocation = deref(from)
	m.ToLocation = deref(to)
	m.Timestamp = m.Timestamp.UTC()
	return &m, nil
}
