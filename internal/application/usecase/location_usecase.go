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

// LocationUseCase casos de uso CRUD para ubicaciones (bodegas, tiendas).
type LocationUseCase struct {
	tx   ports.TxRunner
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(tx ports.TxRunner, repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{tx: tx, repo: repo}
}

// Create crea una ubicación. Falla con domain.ErrDuplicateKey si el location_id ya existe.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	id := strings.TrimSpace(in.LocationID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: location_id y name son requeridos", domain.ErrInvalidInput)
	}
	if strings.Contains(id, "/") {
		return nil, fmt.Errorf("%w: location_id no puede contener '/'", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	location := &entity.Location{
		LocationID: id,
		Name:       name,
		Address:    in.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		return locations.Create(ctx, location)
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por su location_id.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(location), nil
}

// Update cambia name y/o address.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
	}
	var updated *entity.Location
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		location, err := locations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if location == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			location.Name = strings.TrimSpace(*in.Name)
		}
		if in.Address != nil {
			location.Address = *in.Address
		}
		location.UpdatedAt = time.Now().UTC()
		if err := locations.Update(ctx, location); err != nil {
			return err
		}
		updated = location
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(updated), nil
}

// List lista todas las ubicaciones.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación que no aparece como origen ni destino en ningún movimiento.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		return locations.Delete(ctx, id)
	})
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		Address:    l.Address,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
