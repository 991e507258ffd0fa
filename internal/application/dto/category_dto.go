package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
	Orden  *int   `json:"orden,omitempty"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Orden  *int    `json:"orden,omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Orden  int    `json:"orden"`
	Activo bool   `json:"activo"`
}
