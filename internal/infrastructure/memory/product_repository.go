package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	a access
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.products[product.ProductID]; ok {
			return domain.ErrDuplicateKey
		}
		st.products[product.ProductID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, productID string) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.read(func(st *state) error {
		if p, ok := st.products[productID]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.a.write(func(st *state) error {
		current, ok := st.products[product.ProductID]
		if !ok {
			return domain.ErrNotFound
		}
		current.Name = product.Name
		current.Description = product.Description
		current.UpdatedAt = product.UpdatedAt
		st.products[product.ProductID] = current
		return nil
	})
}

// List ordena por product_id para una salida estable.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.a.read(func(st *state) error {
		out = make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			p := p
			out = append(out, &p)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, err
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.a.read(func(st *state) error {
		n = len(st.products)
		return nil
	})
	return n, err
}

func (r *ProductRepo) Delete(_ context.Context, productID string) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.products[productID]; !ok {
			return domain.ErrNotFound
		}
		for _, m := range st.movements {
			if m.ProductID == productID {
				return domain.ErrHasDependents
			}
		}
		delete(st.products, productID)
		return nil
	})
}
