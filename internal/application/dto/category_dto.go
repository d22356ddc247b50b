package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}
