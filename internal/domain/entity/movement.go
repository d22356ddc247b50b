package entity

import "time"

// Direction tipo de movimiento de stock.
type Direction string

// Tipos de movimiento.
const (
	DirectionIncrease Direction = "entrada"
	DirectionDecrease Direction = "salida"
)

// Valid indica si d es uno de los dos tipos admitidos.
func (d Direction) Valid() bool {
	return d == DirectionIncrease || d == DirectionDecrease
}

// Movement es un asiento inmutable del libro de stock: una vez creado no se actualiza ni se borra.
type Movement struct {
	ID        string
	Direction Direction
	Quantity  int64 // siempre > 0; el signo lo da Direction
	Reason    string
	ProductID string
	ActorID   string
	CreatedAt time.Time
}

// SignedQuantity devuelve +Quantity para entradas y -Quantity para salidas.
func (m *Movement) SignedQuantity() int64 {
	if m.Direction == DirectionDecrease {
		return -m.Quantity
	}
	return m.Quantity
}
