package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas.
const (
	UnitUnidad  = "unidad"
	UnitKg      = "kg"
	UnitLitro   = "litro"
	UnitPaquete = "paquete"
	UnitPorcion = "porción"
)

// ValidUnit indica si u es una unidad de medida admitida.
func ValidUnit(u string) bool {
	switch u {
	case UnitUnidad, UnitKg, UnitLitro, UnitPaquete, UnitPorcion:
		return true
	}
	return false
}

// Product representa un producto del inventario del restaurante.
// CurrentStock es un contador cacheado: solo lo modifica el libro de movimientos y siempre
// coincide con la suma de las cantidades firmadas de sus movimientos.
type Product struct {
	ID           string
	Name         string
	Description  string
	Unit         string
	MinStock     int64            // punto de reorden
	CurrentStock int64            // nunca negativo
	Price        *decimal.Decimal // opcional
	CategoryID   string
	CategoryName string // solo lectura (join con categories)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
