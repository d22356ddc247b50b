package inventory

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 200
)

// MovementQueryUseCase lecturas del libro de movimientos.
type MovementQueryUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	txRunner    TxRunner
}

// NewMovementQueryUseCase construye el caso de uso. txRunner se usa para la conciliación.
func NewMovementQueryUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository, txRunner TxRunner) *MovementQueryUseCase {
	return &MovementQueryUseCase{productRepo: productRepo, movRepo: movRepo, txRunner: txRunner}
}

// ListRecent últimos movimientos con nombres de producto, categoría y usuario, del más reciente al más antiguo.
func (uc *MovementQueryUseCase) ListRecent(ctx context.Context, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage(DefaultRecentLimit, MaxRecentLimit)
	list, err := uc.movRepo.ListRecent(ctx, page.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementDetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.NewMovementDetailResponse(d))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Total: len(items)},
	}, nil
}

// ListByProduct historial de un producto, del más reciente al más antiguo.
func (uc *MovementQueryUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.ProductMovementListResponse, error) {
	page.DefaultPage(DefaultRecentLimit, MaxRecentLimit)
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.movRepo.ListByProduct(ctx, product.ID, nil, nil, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.NewMovementResponse(m))
	}
	return &dto.ProductMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Reconcile compara el stock del producto con la suma firmada de sus movimientos.
// Bloquea la fila del producto para que ningún movimiento se confirme entre ambas lecturas.
func (uc *MovementQueryUseCase) Reconcile(ctx context.Context, productID string) (*dto.ReconciliationResponse, error) {
	var out *dto.ReconciliationResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		_ repository.UserRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		sum, err := movRepo.SumSignedByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		out = &dto.ReconciliationResponse{
			ProductID:    product.ID,
			CurrentStock: product.CurrentStock,
			MovementSum:  sum,
			Consistent:   sum == product.CurrentStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
