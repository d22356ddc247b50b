package report

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// LowStockPDFGenerator genera la versión PDF del reporte de faltantes.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}
