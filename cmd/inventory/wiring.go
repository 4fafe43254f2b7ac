package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// storage agrupa el TxRunner y los repositorios de lectura del driver elegido.
type storage struct {
	tx        ports.TxRunner
	products  repository.ProductRepository
	locations repository.LocationRepository
	movements repository.MovementRepository
	close     func()
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		return &storage{
			tx:        store,
			products:  store.Products(),
			locations: store.Locations(),
			movements: store.Movements(),
			close:     func() {},
		}, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &storage{
			tx:        postgres.NewTxRunner(pool),
			products:  postgres.NewProductRepository(pool),
			locations: postgres.NewLocationRepository(pool),
			movements: postgres.NewMovementRepository(pool),
			close:     pool.Close,
		}, nil
	}
}
