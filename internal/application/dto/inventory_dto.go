package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity se decodifica como decimal para poder rechazar valores no enteros.
type RegisterMovementRequest struct {
	ProductID string   `json:"producto_id"`
	Type      string   `json:"tipo"` // entrada | salida
	Quantity  Quantity `json:"cantidad"`
	Reason    string   `json:"motivo,omitempty"`
}

// Quantity cantidad tal como llega en el body. Lo que no es un número queda en cero y
// la validación del movimiento lo rechaza como cantidad inválida.
type Quantity struct {
	decimal.Decimal
}

// NewQuantity envuelve un decimal.
func NewQuantity(d decimal.Decimal) Quantity { return Quantity{Decimal: d} }

// UnmarshalJSON acepta números y strings numéricos; cualquier otro valor deja cantidad cero.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	if err := q.Decimal.UnmarshalJSON(b); err != nil {
		q.Decimal = decimal.Zero
	}
	return nil
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"tipo"`
	Quantity  int64     `json:"cantidad"`
	Reason    string    `json:"motivo"`
	ProductID string    `json:"producto_id"`
	UserID    string    `json:"usuario_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementDetailResponse movimiento con nombres de producto, categoría y usuario.
type MovementDetailResponse struct {
	MovementResponse
	ProductName  string `json:"producto"`
	Unit         string `json:"unidad"`
	CategoryName string `json:"categoria"`
	UserName     string `json:"usuario"`
}

// RegisterMovementResponse resultado del libro: producto actualizado y movimiento creado.
type RegisterMovementResponse struct {
	Message  string           `json:"message"`
	Product  ProductResponse  `json:"producto"`
	Movement MovementResponse `json:"movimiento"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementDetailResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// ProductMovementListResponse historial de un producto.
type ProductMovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockSummaryResponse conteos del catálogo por nivel de stock.
type StockSummaryResponse struct {
	Total    int `json:"total"`
	LowStock int `json:"stock_bajo"`
	Depleted int `json:"agotados"`
}

// ReconciliationResponse comparación entre el contador de stock y la suma de movimientos.
type ReconciliationResponse struct {
	ProductID    string `json:"producto_id"`
	CurrentStock int64  `json:"stock_actual"`
	MovementSum  int64  `json:"suma_movimientos"`
	Consistent   bool   `json:"consistente"`
}
