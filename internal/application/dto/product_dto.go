package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0 y solo cambia vía movimientos.
type CreateProductRequest struct {
	Name        string           `json:"nombre"`
	Description string           `json:"descripcion"`
	MinStock    int64            `json:"stock_minimo"`
	Unit        string           `json:"unidad"`
	Price       *decimal.Decimal `json:"precio"`
	CategoryID  string           `json:"categoria_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"nombre"`
	Description  string           `json:"descripcion"`
	Unit         string           `json:"unidad"`
	MinStock     int64            `json:"stock_minimo"`
	CurrentStock int64            `json:"stock_actual"`
	Price        *decimal.Decimal `json:"precio"`
	CategoryID   string           `json:"categoria_id"`
	CategoryName string           `json:"categoria,omitempty"`
	Status       string           `json:"estado"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogCategoryResponse una categoría con sus productos.
type CatalogCategoryResponse struct {
	CategoryResponse
	Products []ProductResponse `json:"productos"`
}

// CatalogResponse catálogo agrupado por categoría.
type CatalogResponse struct {
	Categories []CatalogCategoryResponse `json:"categorias"`
}
