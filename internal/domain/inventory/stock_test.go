package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
)

func TestApplyDelta_Entrada(t *testing.T) {
	got, err := inventory.ApplyDelta(5, entity.DirectionIncrease, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(13), got)
}

func TestApplyDelta_SalidaExacta(t *testing.T) {
	got, err := inventory.ApplyDelta(6, entity.DirectionDecrease, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestApplyDelta_SalidaInsuficiente(t *testing.T) {
	got, err := inventory.ApplyDelta(3, entity.DirectionDecrease, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 3")
	assert.Equal(t, int64(3), got, "el stock no cambia si la salida se rechaza")
}

func TestApplyDelta_CantidadNoPositiva(t *testing.T) {
	for _, q := range []int64{0, -2} {
		_, err := inventory.ApplyDelta(10, entity.DirectionIncrease, q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", q)
	}
}

func TestApplyDelta_TipoInvalido(t *testing.T) {
	_, err := inventory.ApplyDelta(10, entity.Direction("ajuste"), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestDefaultReason(t *testing.T) {
	assert.Equal(t, "Entrada de stock", inventory.DefaultReason(entity.DirectionIncrease))
	assert.Equal(t, "Salida de stock", inventory.DefaultReason(entity.DirectionDecrease))
}

func TestListLowStock_ConservaOrden(t *testing.T) {
	products := []*entity.Product{
		{Name: "Carne Molida", CurrentStock: 2, MinStock: 3},
		{Name: "Agua", CurrentStock: 40, MinStock: 20},
		{Name: "Pan", CurrentStock: 5, MinStock: 5},
		{Name: "Helado", CurrentStock: 0, MinStock: 10},
	}
	low := inventory.ListLowStock(products)
	require.Len(t, low, 3)
	assert.Equal(t, "Carne Molida", low[0].Name)
	assert.Equal(t, "Pan", low[1].Name, "stock igual al mínimo cuenta como bajo")
	assert.Equal(t, "Helado", low[2].Name)

	depleted := inventory.ListDepleted(products)
	require.Len(t, depleted, 1)
	assert.Equal(t, "Helado", depleted[0].Name)
}

func TestListLowStock_Vacio(t *testing.T) {
	assert.Empty(t, inventory.ListLowStock(nil))
	assert.NotNil(t, inventory.ListDepleted(nil))
}

func TestStockStatusYShortfall(t *testing.T) {
	cases := []struct {
		current, min int64
		status       string
		shortfall    int64
	}{
		{0, 10, inventory.StatusDepleted, 10},
		{4, 10, inventory.StatusLow, 6},
		{10, 10, inventory.StatusLow, 0},
		{11, 10, inventory.StatusNormal, 0},
	}
	for _, c := range cases {
		p := &entity.Product{CurrentStock: c.current, MinStock: c.min}
		assert.Equal(t, c.status, inventory.StockStatus(p))
		assert.Equal(t, c.shortfall, inventory.Shortfall(p))
	}
}

func TestSignedSum(t *testing.T) {
	movs := []*entity.Movement{
		{Direction: entity.DirectionIncrease, Quantity: 10},
		{Direction: entity.DirectionDecrease, Quantity: 4},
		{Direction: entity.DirectionIncrease, Quantity: 1},
	}
	assert.Equal(t, int64(7), inventory.SignedSum(movs))
}
