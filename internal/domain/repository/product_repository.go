package repository

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	CategoryID string
	Search     string // coincidencia parcial por nombre, sin distinguir mayúsculas
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStock escribe el contador de stock. Solo lo usa el libro de movimientos.
	UpdateStock(ctx context.Context, id string, stock int64) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
