package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

func TestGenerateLowStockPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("Hamburguesas Don Pepe")
	products := []*entity.Product{
		{Name: "Carne Molida", CategoryName: "Insumos", Unit: "kg", CurrentStock: 1, MinStock: 3},
		{Name: "Papas Fritas Grandes", CategoryName: "Papas y Acompañamientos", Unit: "porción", CurrentStock: 0, MinStock: 20},
	}

	doc, err := g.GenerateLowStockPDF(context.Background(), products, time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateLowStockPDF_SinFaltantes(t *testing.T) {
	doc, err := NewMarotoPDFGenerator("").GenerateLowStockPDF(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
