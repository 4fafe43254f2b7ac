package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

func seedBasics(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ProductID: "P1", Name: "Laptop"}))
	require.NoError(t, s.Locations().Create(ctx, &entity.Location{LocationID: "L1", Name: "Main"}))
	require.NoError(t, s.Locations().Create(ctx, &entity.Location{LocationID: "L2", Name: "Store"}))
}

func TestStore_DuplicateKey(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()

	err := s.Products().Create(ctx, &entity.Product{ProductID: "P1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	err = s.Locations().Create(ctx, &entity.Location{LocationID: "L1", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	p, err := s.Products().GetByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name, "el original no debe cambiar")
}

func TestStore_UpdateNotFound(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	assert.ErrorIs(t, s.Products().Update(ctx, &entity.Product{ProductID: "PX"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Locations().Update(ctx, &entity.Location{LocationID: "LX"}), domain.ErrNotFound)
}

func TestStore_DeleteConDependientes(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()
	require.NoError(t, s.Movements().Create(ctx, &entity.Movement{ProductID: "P1", FromLocation: "L1", ToLocation: "L2", Qty: 3}))

	assert.ErrorIs(t, s.Products().Delete(ctx, "P1"), domain.ErrHasDependents)
	assert.ErrorIs(t, s.Locations().Delete(ctx, "L1"), domain.ErrHasDependents, "referenciada como origen")
	assert.ErrorIs(t, s.Locations().Delete(ctx, "L2"), domain.ErrHasDependents, "referenciada como destino")
	assert.ErrorIs(t, s.Products().Delete(ctx, "PX"), domain.ErrNotFound)

	require.NoError(t, s.Locations().Create(ctx, &entity.Location{LocationID: "L3", Name: "Huérfana"}))
	assert.NoError(t, s.Locations().Delete(ctx, "L3"))
}

func TestStore_MovementIDsCrecientes(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()

	first := &entity.Movement{ProductID: "P1", ToLocation: "L1", Qty: 1}
	second := &entity.Movement{ProductID: "P1", ToLocation: "L1", Qty: 2}
	require.NoError(t, s.Movements().Create(ctx, first))
	require.NoError(t, s.Movements().Delete(ctx, first.MovementID))
	require.NoError(t, s.Movements().Create(ctx, second))

	assert.Equal(t, int64(1), first.MovementID)
	assert.Equal(t, int64(2), second.MovementID, "los ids no se reutilizan")
	assert.False(t, second.Timestamp.IsZero())
	assert.ErrorIs(t, s.Movements().Delete(ctx, first.MovementID), domain.ErrNotFound)
}

func TestStore_ListMovimientosMasRecientePrimero(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Movements().Create(ctx, &entity.Movement{ProductID: "P1", ToLocation: "L1", Qty: 1}))
	}

	list, err := s.Movements().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].MovementID > list[1].MovementID)
	assert.True(t, list[1].MovementID > list[2].MovementID)
}

func TestStore_RunRollbackNoDejaEstadoParcial(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, movements repository.MovementRepository) error {
		if err := products.Create(ctx, &entity.Product{ProductID: "P2", Name: "Chair"}); err != nil {
			return err
		}
		if err := movements.Create(ctx, &entity.Movement{ProductID: "P2", ToLocation: "L1", Qty: 5}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, "P2")
	require.NoError(t, err)
	assert.Nil(t, p)
	n, err := s.Movements().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_RunCommit(t *testing.T) {
	s := memory.NewStore()
	seedBasics(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, movements repository.MovementRepository) error {
		// Dentro de la tx se ve lo escrito por la misma tx.
		if err := products.Create(ctx, &entity.Product{ProductID: "P2", Name: "Chair"}); err != nil {
			return err
		}
		p, err := products.GetByID(ctx, "P2")
		if err != nil || p == nil {
			return errors.New("no visible dentro de la tx")
		}
		return movements.Create(ctx, &entity.Movement{ProductID: "P2", ToLocation: "L1", Qty: 5})
	})
	require.NoError(t, err)

	byProduct, err := s.Movements().ListByProduct(ctx, "P2")
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, int64(5), byProduct[0].Qty)
}

func TestStore_RunContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Run(ctx, func(repository.ProductRepository, repository.LocationRepository, repository.MovementRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
