// Package inventory contiene las reglas puras del libro de stock: cálculo del nuevo saldo,
// motivo por defecto y clasificación de productos por nivel de stock.
package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// Estados de stock de un producto.
const (
	StatusDepleted = "agotado"
	StatusLow      = "bajo"
	StatusNormal   = "normal"
)

// ApplyDelta calcula el nuevo stock tras aplicar un movimiento sobre current.
// Una salida mayor que el stock disponible devuelve ErrInsufficientStock.
func ApplyDelta(current int64, dir entity.Direction, quantity int64) (int64, error) {
	if quantity <= 0 {
		return current, domain.ErrInvalidQuantity
	}
	switch dir {
	case entity.DirectionIncrease:
		if current > math.MaxInt64-quantity {
			return current, domain.ErrInvalidQuantity
		}
		return current + quantity, nil
	case entity.DirectionDecrease:
		if quantity > current {
			return current, fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, current, quantity)
		}
		return current - quantity, nil
	}
	return current, domain.ErrInvalidDirection
}

// DefaultReason motivo usado cuando quien registra el movimiento no indica uno.
func DefaultReason(dir entity.Direction) string {
	if dir == entity.DirectionDecrease {
		return "Salida de stock"
	}
	return "Entrada de stock"
}

// IsLowStock indica si el producto está en o por debajo de su stock mínimo.
func IsLowStock(p *entity.Product) bool {
	return p.CurrentStock <= p.MinStock
}

// IsDepleted indica si el producto no tiene existencias.
func IsDepleted(p *entity.Product) bool {
	return p.CurrentStock == 0
}

// Shortfall cantidad que falta para alcanzar el stock mínimo (0 si no falta nada).
func Shortfall(p *entity.Product) int64 {
	if p.CurrentStock >= p.MinStock {
		return 0
	}
	return p.MinStock - p.CurrentStock
}

// StockStatus clasifica el producto en agotado, bajo o normal.
func StockStatus(p *entity.Product) string {
	switch {
	case IsDepleted(p):
		return StatusDepleted
	case IsLowStock(p):
		return StatusLow
	default:
		return StatusNormal
	}
}

// ListLowStock devuelve los productos con stock en o por debajo del mínimo, en el orden de entrada.
func ListLowStock(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// ListDepleted devuelve los productos agotados, en el orden de entrada.
func ListDepleted(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if IsDepleted(p) {
			out = append(out, p)
		}
	}
	return out
}

// SignedSum suma las cantidades firmadas de una secuencia de movimientos.
func SignedSum(movements []*entity.Movement) int64 {
	var total int64
	for _, m := range movements {
		total += m.SignedQuantity()
	}
	return total
}
