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

func strPtr(s string) *string { return &s }

func TestProductUseCase_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store, store.Products())

	out, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: "  P1 ", Name: " Widget ", Description: "azul"})
	require.NoError(t, err)
	assert.Equal(t, "P1", out.ProductID)
	assert.Equal(t, "Widget", out.Name)
	assert.False(t, out.CreatedAt.IsZero())

	got, err := uc.GetByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "azul", got.Description)

	_, err = uc.GetByID(ctx, "PX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_CreateValidation(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store, store.Products())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{ProductID: "P1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "sin id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Un id con '/' no se podría direccionar en /api/products/{id}.
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{ProductID: "P/1", Name: "Widget"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store, store.Products())

	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: "P1", Name: "Widget"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{ProductID: "P1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	got, err := uc.GetByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name, "el duplicado no debe sobrescribir")
}

func TestProductUseCase_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store, store.Products())
	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: "P1", Name: "Widget", Description: "azul"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "P1", dto.UpdateProductRequest{Description: strPtr("rojo")})
	require.NoError(t, err)
	assert.Equal(t, "Widget", out.Name)
	assert.Equal(t, "rojo", out.Description)

	_, err = uc.Update(ctx, "P1", dto.UpdateProductRequest{Name: strPtr("   ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "PX", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_DeleteWithHistory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store, store.Products())
	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: "P1", Name: "Widget"})
	require.NoError(t, err)
	require.NoError(t, store.Locations().Create(ctx, &entity.Location{LocationID: "L1", Name: "A"}))
	require.NoError(t, store.Movements().Create(ctx, &entity.Movement{ProductID: "P1", ToLocation: "L1", Qty: 1}))

	assert.ErrorIs(t, uc.Delete(ctx, "P1"), domain.ErrHasDependents)
	assert.ErrorIs(t, uc.Delete(ctx, "PX"), domain.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
