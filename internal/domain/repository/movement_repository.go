package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// MovementDetail movimiento con los nombres de producto, categoría y usuario (lectura).
type MovementDetail struct {
	entity.Movement
	ProductName  string
	ProductUnit  string
	CategoryName string
	ActorName    string
}

// MovementRepository puerto del libro de movimientos. Es de solo inserción: no existe
// operación para modificar o eliminar un movimiento.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListRecent devuelve los últimos movimientos, del más reciente al más antiguo.
	ListRecent(ctx context.Context, limit int) ([]MovementDetail, error)
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// SumSignedByProduct suma las cantidades firmadas de todos los movimientos del producto.
	SumSignedByProduct(ctx context.Context, productID string) (int64, error)
}
