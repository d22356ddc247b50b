package inventory

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// LowStockUseCase consulta los productos por nivel de stock sobre una instantánea del catálogo.
type LowStockUseCase struct {
	productRepo repository.ProductRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(productRepo repository.ProductRepository) *LowStockUseCase {
	return &LowStockUseCase{productRepo: productRepo}
}

func (uc *LowStockUseCase) snapshot(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	catalog.SortProducts(products)
	return products, nil
}

// ListLowStock productos con stock en o por debajo del mínimo, ordenados por nombre.
func (uc *LowStockUseCase) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.ListLowStock(products), nil
}

// ListDepleted productos agotados, ordenados por nombre.
func (uc *LowStockUseCase) ListDepleted(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.ListDepleted(products), nil
}

// Summary conteo total, en stock bajo y agotados.
func (uc *LowStockUseCase) Summary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		Total:    len(products),
		LowStock: len(inventory.ListLowStock(products)),
		Depleted: len(inventory.ListDepleted(products)),
	}, nil
}
