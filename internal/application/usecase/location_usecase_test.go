package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

func TestLocationUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewLocationUseCase(store, store.Locations())

	_, err := uc.Create(ctx, dto.CreateLocationRequest{LocationID: "L2", Name: "Tienda"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateLocationRequest{LocationID: "L1", Name: "Bodega", Address: "Calle 1"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateLocationRequest{LocationID: "L1", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	out, err := uc.Update(ctx, "L1", dto.UpdateLocationRequest{Name: strPtr("Bodega central")})
	require.NoError(t, err)
	assert.Equal(t, "Bodega central", out.Name)
	assert.Equal(t, "Calle 1", out.Address)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "L1", list[0].LocationID)

	require.NoError(t, uc.Delete(ctx, "L2"))
	_, err = uc.GetByID(ctx, "L2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationUseCase_DeleteReferencedAsSource(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewLocationUseCase(store, store.Locations())
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ProductID: "P1", Name: "Widget"}))
	_, err := uc.Create(ctx, dto.CreateLocationRequest{LocationID: "L1", Name: "Bodega"})
	require.NoError(t, err)
	require.NoError(t, store.Movements().Create(ctx, &entity.Movement{ProductID: "P1", FromLocation: "L1", Qty: 3}))

	assert.ErrorIs(t, uc.Delete(ctx, "L1"), domain.ErrHasDependents)
}

func TestLocationUseCase_CreateRechazaSlash(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewLocationUseCase(store, store.Locations())

	_, err := uc.Create(context.Background(), dto.CreateLocationRequest{LocationID: "A/B", Name: "Bodega"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Espacios y no-ASCII sí son válidos.
	out, err := uc.Create(context.Background(), dto.CreateLocationRequest{LocationID: "BODEGA-Ñ", Name: "Bodega Ñ"})
	require.NoError(t, err)
	assert.Equal(t, "BODEGA-Ñ", out.LocationID)
}
