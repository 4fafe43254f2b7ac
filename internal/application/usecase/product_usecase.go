package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las escrituras corren en una transacción.
type ProductUseCase struct {
	tx   ports.TxRunner
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx ports.TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{tx: tx, repo: repo}
}

// Create crea un producto. Falla con domain.ErrDuplicateKey si el product_id ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(in.ProductID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: product_id y name son requeridos", domain.ErrInvalidInput)
	}
	if strings.Contains(id, "/") {
		return nil, fmt.Errorf("%w: product_id no puede contener '/'", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ProductID:   id,
		Name:        name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por su product_id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update cambia name y/o description. Los campos nil se conservan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
	}
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		product.UpdatedAt = time.Now().UTC()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto sin historial de movimientos (domain.ErrHasDependents si lo tiene).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		return products.Delete(ctx, id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
