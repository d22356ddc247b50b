package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// ReportUseCase construye el reporte de faltantes a partir del catálogo vigente.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	generator   LowStockPDFGenerator
	loc         *time.Location
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. loc es la zona horaria del restaurante (nil = UTC).
func NewReportUseCase(productRepo repository.ProductRepository, generator LowStockPDFGenerator, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{productRepo: productRepo, generator: generator, loc: loc, now: time.Now}
}

func (uc *ReportUseCase) lowStock(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	catalog.SortProducts(products)
	return inventory.ListLowStock(products), nil
}

// LowStockText reporte en texto plano listo para compartir.
func (uc *ReportUseCase) LowStockText(ctx context.Context) (string, error) {
	products, err := uc.lowStock(ctx)
	if err != nil {
		return "", err
	}
	return FormatLowStock(products, uc.now().In(uc.loc)), nil
}

// LowStockPDF reporte en PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, string, error) {
	products, err := uc.lowStock(ctx)
	if err != nil {
		return nil, "", err
	}
	now := uc.now().In(uc.loc)
	doc, err := uc.generator.GenerateLowStockPDF(ctx, products, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return doc, fmt.Sprintf("faltantes-%s.pdf", now.Format("20060102-1504")), nil
}
