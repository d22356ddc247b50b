package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/seed"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-restaurante/pkg/config"
	"github.com/jhoicas/inventario-restaurante/pkg/logger"
)

// storage repositorios y tx runner del driver elegido.
type storage struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	movements  repository.MovementRepository
	users      repository.UserRepository
	tx         inventory.TxRunner
	ping       func(ctx context.Context) error
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		st := &storage{
			products:   store.Products(),
			categories: store.Categories(),
			movements:  store.Movements(),
			users:      store.Users(),
			tx:         store,
			close:      func() {},
		}
		// En memoria no hay nada persistido: se cargan los datos por defecto y los ejemplos.
		seeder := seed.NewSeeder(st.users, st.categories, st.products,
			inventory.NewApplyMovementUseCase(st.tx, log.Component("seed")), log.Component("seed"))
		if _, err := seeder.Defaults(ctx); err != nil {
			return nil, err
		}
		if _, err := seeder.Examples(ctx); err != nil {
			return nil, err
		}
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return st, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if cfg.Storage.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return postgresStorage(pool), nil
	}
	return nil, fmt.Errorf("driver de almacenamiento no soportado: %s", cfg.Storage.Driver)
}

func postgresStorage(pool *pgxpool.Pool) *storage {
	return &storage{
		products:   postgres.NewProductRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		movements:  postgres.NewMovementRepository(pool),
		users:      postgres.NewUserRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		ping:       pool.Ping,
		close:      pool.Close,
	}
}
