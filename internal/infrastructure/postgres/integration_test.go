package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
	"github.com/jhoicas/inventario-restaurante/pkg/config"
)

// Requiere una base PostgreSQL desechable: INVENTARIO_TEST_DATABASE_URL=postgres://...
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("INVENTARIO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("INVENTARIO_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool, zerolog.Nop()))
	return pool
}

type pgFixture struct {
	pool    *pgxpool.Pool
	uc      *inventory.ApplyMovementUseCase
	product *entity.Product
	actor   *entity.User
}

func newPGFixture(t *testing.T, stock int64) *pgFixture {
	t.Helper()
	pool := testPool(t)
	ctx := context.Background()
	now := time.Now()

	cat := &entity.Category{ID: uuid.NewString(), Name: "Insumos " + uuid.NewString()[:8], CreatedAt: now}
	require.NoError(t, NewCategoryRepository(pool).Create(ctx, cat))
	actor := &entity.User{ID: uuid.NewString(), Name: "Empleado", Role: entity.RoleEmpleado, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, NewUserRepository(pool).Create(ctx, actor))
	p := &entity.Product{
		ID: uuid.NewString(), Name: "Carne Molida", Unit: entity.UnitKg, MinStock: 3,
		CategoryID: cat.ID, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewProductRepository(pool).Create(ctx, p))

	f := &pgFixture{
		pool:    pool,
		uc:      inventory.NewApplyMovementUseCase(NewTxRunner(pool), zerolog.Nop()),
		product: p,
		actor:   actor,
	}
	if stock > 0 {
		_, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
			ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: stock, ActorID: actor.ID,
		})
		require.NoError(t, err)
	}
	return f
}

func TestPostgres_SalidasConcurrentesSerializadas(t *testing.T) {
	f := newPGFixture(t, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.ApplyMovement(ctx, inventory.MovementInput{
				ProductID: f.product.ID, Direction: entity.DirectionDecrease, Quantity: 6, ActorID: f.actor.ID,
			})
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	p, err := NewProductRepository(f.pool).GetByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.CurrentStock)

	sum, err := NewMovementRepository(f.pool).SumSignedByProduct(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sum)
}

func TestPostgres_CheckDeStockNoNegativo(t *testing.T) {
	f := newPGFixture(t, 2)
	err := NewProductRepository(f.pool).UpdateStock(context.Background(), f.product.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestPostgres_FalloDentroDeLaTxHaceRollback(t *testing.T) {
	f := newPGFixture(t, 5)
	ctx := context.Background()

	boom := errors.New("boom")
	err := NewTxRunner(f.pool).Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository, _ repository.UserRepository) error {
		if err := products.UpdateStock(ctx, f.product.ID, 99); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := NewProductRepository(f.pool).GetByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.CurrentStock)
}

func TestPostgres_MovimientosSonSoloInsercion(t *testing.T) {
	f := newPGFixture(t, 1)
	_, err := f.pool.Exec(context.Background(), `DELETE FROM movements WHERE product_id = $1`, f.product.ID)
	assert.Error(t, err)
}

func TestPostgres_IDNoUUIDEsInexistente(t *testing.T) {
	pool := testPool(t)
	p, err := NewProductRepository(pool).GetByID(context.Background(), "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPostgres_ListRecentYUsuarios(t *testing.T) {
	f := newPGFixture(t, 3)
	ctx := context.Background()

	recent, err := NewMovementRepository(f.pool).ListRecent(ctx, 200)
	require.NoError(t, err)
	var found bool
	for _, d := range recent {
		if d.ProductID == f.product.ID {
			found = true
			assert.Equal(t, "Carne Molida", d.ProductName)
			assert.Equal(t, "Empleado", d.ActorName)
		}
	}
	assert.True(t, found)

	email := uuid.NewString()[:8] + "@restaurante.com"
	users := NewUserRepository(f.pool)
	now := time.Now()
	require.NoError(t, users.Create(ctx, &entity.User{ID: uuid.NewString(), Name: "Ana", Email: email, Role: entity.RoleEmpleado, CreatedAt: now, UpdatedAt: now}))
	err = users.Create(ctx, &entity.User{ID: uuid.NewString(), Name: "Ana 2", Email: email, Role: entity.RoleEmpleado, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestPostgres_FiltrosPorUUID(t *testing.T) {
	f := newPGFixture(t, 5)
	ctx := context.Background()

	list, err := NewProductRepository(f.pool).List(ctx, repository.ProductFilter{CategoryID: f.product.CategoryID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.product.ID, list[0].ID)

	movs, err := NewMovementRepository(f.pool).ListByProduct(ctx, f.product.ID, nil, nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, int64(5), movs[0].Quantity)
}
