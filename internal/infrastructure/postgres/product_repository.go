package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, name, description, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		product.ProductID, product.Name, product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		return domain.NewStoreError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por product_id.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&p.ProductID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get product", err)
	}
	return &p, nil
}

// Update actualiza name y description. product_id es inmutable.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, updated_at = $4
		WHERE product_id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ProductID, product.Name, product.Description, product.UpdatedAt,
	)
	if err != nil {
		return domain.NewStoreError("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos ordenados por product_id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.NewStoreError("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.NewStoreError("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list products", err)
	}
	return list, nil
}

// Count devuelve el número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, domain.NewStoreError("count products", err)
	}
	return n, nil
}

// Delete elimina un producto sin movimientos. La FK de product_movements respalda la verificación.
func (r *ProductRepo) Delete(ctx context.Context, productID string) error {
	var exists, referenced bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1),
		       EXISTS (SELECT 1 FROM product_movements WHERE product_id = $1)`,
		productID,
	).Scan(&exists, &referenced)
	if err != nil {
		return domain.NewStoreError("check product dependents", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if referenced {
		return domain.ErrHasDependents
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return domain.NewStoreError("delete product", err)
	}
	return nil
}
