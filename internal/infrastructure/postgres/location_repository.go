package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `location_id, name, address, created_at, updated_at`

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		location.LocationID, location.Name, location.Address, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		return domain.NewStoreError("insert location", err)
	}
	return nil
}

// GetByID obtiene una ubicación por location_id.
func (r *LocationRepo) GetByID(ctx context.Context, locationID string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, locationID).Scan(
		&l.LocationID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get location", err)
	}
	return &l, nil
}

// Update actualiza name y address.
func (r *LocationRepo) Update(ctx context.Context, location *entity.Location) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE locations SET name = $2, address = $3, updated_at = $4
		WHERE location_id = $1`,
		location.LocationID, location.Name, location.Address, location.UpdatedAt,
	)
	if err != nil {
		return domain.NewStoreError("update location", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las ubicaciones ordenadas por location_id.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY location_id`)
	if err != nil {
		return nil, domain.NewStoreError("list locations", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.LocationID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, domain.NewStoreError("scan location", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list locations", err)
	}
	return list, nil
}

// Count devuelve el número de ubicaciones.
func (r *LocationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&n); err != nil {
		return 0, domain.NewStoreError("count locations", err)
	}
	return n, nil
}

// Delete elimina una ubicación que no es origen ni destino de ningún movimiento.
func (r *LocationRepo) Delete(ctx context.Context, locationID string) error {
	var exists, referenced bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM locations WHERE location_id = $1),
		       EXISTS (SELECT 1 FROM product_movements WHERE from_location = $1 OR to_location = $1)`,
		locationID,
	).Scan(&exists, &referenced)
	if err != nil {
		return domain.NewStoreError("check location dependents", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if referenced {
		return domain.ErrHasDependents
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM locations WHERE location_id = $1`, locationID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return domain.NewStoreError("delete location", err)
	}
	return nil
}
