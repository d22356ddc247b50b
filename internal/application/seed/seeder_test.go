package seed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/seed"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/memory"
)

func newSeeder(store *memory.Store) *seed.Seeder {
	ledger := inventory.NewApplyMovementUseCase(store, zerolog.Nop())
	return seed.NewSeeder(store.Users(), store.Categories(), store.Products(), ledger, zerolog.Nop())
}

func TestDefaults_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newSeeder(store)

	first, err := s.Defaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Users: 2, Categories: 5}, first)

	second, err := s.Defaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, second, "la segunda ejecución no crea nada")

	admin, err := store.Users().GetByAccessCode(ctx, "728654")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)
}

func TestExamples_StockInicialPorElLibro(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newSeeder(store)
	_, err := s.Defaults(ctx)
	require.NoError(t, err)

	res, err := s.Examples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Products)

	products, err := store.Products().List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	for _, p := range products {
		sum, err := store.Movements().SumSignedByProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.CurrentStock, sum, "stock de %s debe cuadrar con sus movimientos", p.Name)
	}

	again, err := s.Examples(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Products)
}

func TestExamples_SinAdministrador_Error(t *testing.T) {
	store := memory.NewStore()
	_, err := newSeeder(store).Examples(context.Background())
	assert.Error(t, err)
}
