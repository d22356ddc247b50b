package inventory_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/memory"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	uc       *inventory.ApplyMovementUseCase
	lowStock *inventory.LowStockUseCase
	queries  *inventory.MovementQueryUseCase
	category *entity.Category
	actor    *entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	cat := &entity.Category{ID: uuid.NewString(), Name: "Insumos", CreatedAt: time.Now()}
	require.NoError(t, store.Categories().Create(ctx, cat))
	actor := &entity.User{ID: uuid.NewString(), Name: "Empleado", AccessCode: "123456", Role: entity.RoleEmpleado}
	require.NoError(t, store.Users().Create(ctx, actor))

	return &fixture{
		store:    store,
		uc:       inventory.NewApplyMovementUseCase(store, zerolog.Nop()),
		lowStock: inventory.NewLowStockUseCase(store.Products()),
		queries:  inventory.NewMovementQueryUseCase(store.Products(), store.Movements(), store),
		category: cat,
		actor:    actor,
	}
}

// newProduct crea un producto y registra su stock inicial como entrada del libro.
func (f *fixture) newProduct(t *testing.T, name string, stock, min int64) *entity.Product {
	t.Helper()
	ctx := context.Background()
	p := &entity.Product{
		ID:         uuid.NewString(),
		Name:       name,
		Unit:       entity.UnitUnidad,
		MinStock:   min,
		CategoryID: f.category.ID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, f.store.Products().Create(ctx, p))
	if stock > 0 {
		_, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
			ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: stock,
			Reason: "Inventario inicial", ActorID: f.actor.ID,
		})
		require.NoError(t, err)
	}
	return p
}

func (f *fixture) stockOf(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.CurrentStock
}

func (f *fixture) movementCount(t *testing.T, id string) int {
	t.Helper()
	list, err := f.store.Movements().ListByProduct(context.Background(), id, nil, nil, 0, 0)
	require.NoError(t, err)
	return len(list)
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

type mockTxRunner struct{ mock.Mock }

func (m *mockTxRunner) Run(ctx context.Context, fn func(
	repository.ProductRepository, repository.MovementRepository, repository.UserRepository,
) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// failingTxRunner ejecuta sobre el almacén real pero la inserción del movimiento falla.
type failingTxRunner struct{ store *memory.Store }

type failingMovements struct{ repository.MovementRepository }

func (failingMovements) Create(context.Context, *entity.Movement) error {
	return errors.New("disco lleno")
}

func (r failingTxRunner) Run(ctx context.Context, fn func(
	repository.ProductRepository, repository.MovementRepository, repository.UserRepository,
) error) error {
	return r.store.Run(ctx, func(p repository.ProductRepository, m repository.MovementRepository, u repository.UserRepository) error {
		return fn(p, failingMovements{m}, u)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Escenarios
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSacaDelStockBajo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.newProduct(t, "Pan de Hamburguesa", 5, 10)

	low, err := f.lowStock.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids(low), p.ID)

	res, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: 8, Reason: "Compra", ActorID: f.actor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), res.Product.CurrentStock)
	assert.Equal(t, int64(8), res.Movement.Quantity)
	assert.Equal(t, "Compra", res.Movement.Reason)
	assert.Equal(t, f.actor.ID, res.Movement.ActorID)
	assert.Equal(t, int64(13), f.stockOf(t, p.ID))

	low, err = f.lowStock.ListLowStock(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids(low), p.ID)
}

func TestApplyMovement_SalidaMayorQueStockRechazada(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Carne Molida", 3, 3)

	_, err := f.uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionDecrease, Quantity: 5, ActorID: f.actor.ID,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), f.stockOf(t, p.ID))
	assert.Equal(t, 1, f.movementCount(t, p.ID))
}

func TestLowStock_ProductoAgotadoEnAmbasListas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.newProduct(t, "Helado de Vainilla", 0, 10)
	f.newProduct(t, "Agua Purificada", 30, 20)

	low, err := f.lowStock.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, ids(low))

	depleted, err := f.lowStock.ListDepleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, ids(depleted))

	summary, err := f.lowStock.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StockSummaryResponse{Total: 2, LowStock: 1, Depleted: 1}, *summary)
}

func TestApplyMovement_CantidadInvalidaSeRechazaAntesDeConsultar(t *testing.T) {
	for _, q := range []int64{0, -2} {
		runner := new(mockTxRunner)
		uc := inventory.NewApplyMovementUseCase(runner, zerolog.Nop())

		_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
			ProductID: "no-existe", Direction: entity.DirectionDecrease, Quantity: q, ActorID: "nadie",
		})
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
		runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	}
}

func TestApplyMovement_TipoInvalidoSeRechazaAntesDeConsultar(t *testing.T) {
	runner := new(mockTxRunner)
	uc := inventory.NewApplyMovementUseCase(runner, zerolog.Nop())

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: "x", Direction: "ajuste", Quantity: 1, ActorID: "y",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestApplyMovement_SalidasConcurrentesNoDejanStockNegativo(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Papas Fritas Grandes", 10, 20)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.ApplyMovement(context.Background(), inventory.MovementInput{
				ProductID: p.ID, Direction: entity.DirectionDecrease, Quantity: 6, ActorID: f.actor.ID,
			})
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, int64(4), f.stockOf(t, p.ID))
	assert.Equal(t, 2, f.movementCount(t, p.ID))
}

// ─────────────────────────────────────────────────────────────────────────────
// Propiedades
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_FalloAlInsertarNoDejaEfectos(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Refresco de Naranja", 7, 15)

	uc := inventory.NewApplyMovementUseCase(failingTxRunner{f.store}, zerolog.Nop())
	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionDecrease, Quantity: 2, ActorID: f.actor.ID,
	})
	require.Error(t, err)
	assert.Equal(t, int64(7), f.stockOf(t, p.ID))
	assert.Equal(t, 1, f.movementCount(t, p.ID))
}

func TestApplyMovement_ContextoCanceladoEsReintentable(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Papas Fritas Pequeñas", 4, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: 1, ActorID: f.actor.ID,
	})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.True(t, domain.IsRetryable(err))
	assert.Equal(t, int64(4), f.stockOf(t, p.ID))
}

func TestApplyMovement_SecuenciaAleatoriaConcilia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.newProduct(t, "Hamburguesa Clásica", 0, 10)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		dir := entity.DirectionIncrease
		if rng.Intn(2) == 0 {
			dir = entity.DirectionDecrease
		}
		_, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
			ProductID: p.ID, Direction: dir, Quantity: int64(rng.Intn(9) + 1), ActorID: f.actor.ID,
		})
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
		assert.GreaterOrEqual(t, f.stockOf(t, p.ID), int64(0))
	}

	rec, err := f.queries.Reconcile(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, rec.Consistent)
	assert.Equal(t, rec.CurrentStock, rec.MovementSum)
	assert.Equal(t, f.stockOf(t, p.ID), rec.CurrentStock)
}

func TestApplyMovement_NoEsIdempotente(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Agua Purificada", 0, 20)
	in := inventory.MovementInput{ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: 3, ActorID: f.actor.ID}

	_, err := f.uc.ApplyMovement(context.Background(), in)
	require.NoError(t, err)
	_, err = f.uc.ApplyMovement(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(6), f.stockOf(t, p.ID))
	assert.Equal(t, 2, f.movementCount(t, p.ID))
}

func TestApplyMovement_MotivoPorDefecto(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Carne Molida", 10, 3)

	res, err := f.uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionDecrease, Quantity: 1, Reason: "   ", ActorID: f.actor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Salida de stock", res.Movement.Reason)
}

func TestApplyMovement_ProductoYUsuarioInexistentes(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Hamburguesa con Queso", 2, 10)
	ctx := context.Background()

	_, err := f.uc.ApplyMovement(ctx, inventory.MovementInput{
		ProductID: uuid.NewString(), Direction: entity.DirectionIncrease, Quantity: 1, ActorID: "",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = f.uc.ApplyMovement(ctx, inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: 1, ActorID: "",
	})
	assert.ErrorIs(t, err, domain.ErrActorNotFound)

	_, err = f.uc.ApplyMovement(ctx, inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionIncrease, Quantity: 1, ActorID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrActorNotFound)
	assert.Equal(t, int64(2), f.stockOf(t, p.ID))
}

// ─────────────────────────────────────────────────────────────────────────────
// Request y consultas
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyMovementFromRequest_ValidaCantidad(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Pan de Hamburguesa", 1, 5)
	ctx := context.Background()

	for _, q := range []string{"2.5", "0", "-1", "9223372036854775808"} {
		_, err := f.uc.ApplyMovementFromRequest(ctx, f.actor.ID, dto.RegisterMovementRequest{
			ProductID: p.ID, Type: "entrada", Quantity: dto.NewQuantity(decimal.RequireFromString(q)),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, q)
	}

	res, err := f.uc.ApplyMovementFromRequest(ctx, f.actor.ID, dto.RegisterMovementRequest{
		ProductID: p.ID, Type: " entrada ", Quantity: dto.NewQuantity(decimal.NewFromInt(4)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Product.CurrentStock)
	assert.Equal(t, "entrada", res.Movement.Type)
	assert.Equal(t, "Entrada de stock", res.Movement.Reason)
}

func TestMovementQuery_ListRecentMasRecientePrimero(t *testing.T) {
	f := newFixture(t)
	p := f.newProduct(t, "Agua Purificada", 5, 20)
	_, err := f.uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID: p.ID, Direction: entity.DirectionDecrease, Quantity: 2, ActorID: f.actor.ID,
	})
	require.NoError(t, err)

	res, err := f.queries.ListRecent(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, inventory.DefaultRecentLimit, res.Page.Limit)
	assert.Equal(t, "salida", res.Items[0].Type)
	assert.Equal(t, "Agua Purificada", res.Items[0].ProductName)
	assert.Equal(t, "Insumos", res.Items[0].CategoryName)
	assert.Equal(t, "Empleado", res.Items[0].UserName)

	res, err = f.queries.ListRecent(context.Background(), dto.PageRequest{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxRecentLimit, res.Page.Limit)
}

func TestMovementQuery_ListByProductInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.queries.ListByProduct(context.Background(), uuid.NewString(), dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = f.queries.Reconcile(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
