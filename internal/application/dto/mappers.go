package dto

import (
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// NewProductResponse construye la salida de un producto con su estado de stock.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Status:       inventory.StockStatus(p),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProductResponses mapea una lista de productos.
func NewProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// NewCategoryResponse construye la salida de una categoría.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// NewMovementResponse construye la salida de un movimiento.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		Type:      string(m.Direction),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		ProductID: m.ProductID,
		UserID:    m.ActorID,
		CreatedAt: m.CreatedAt,
	}
}

// NewMovementDetailResponse construye la salida de un movimiento con nombres.
func NewMovementDetailResponse(d repository.MovementDetail) MovementDetailResponse {
	return MovementDetailResponse{
		MovementResponse: NewMovementResponse(&d.Movement),
		ProductName:      d.ProductName,
		Unit:             d.ProductUnit,
		CategoryName:     d.CategoryName,
		UserName:         d.ActorName,
	}
}

// NewUserResponse construye la salida de un usuario.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
