package entity

import "time"

// Category representa una categoría del menú o de insumos (Hamburguesas, Bebidas, Insumos...).
// Las categorías no se eliminan.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
