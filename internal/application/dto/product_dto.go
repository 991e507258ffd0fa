package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto (los tres precios son obligatorios y > 0).
type CreateProductRequest struct {
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	PrecioMenudeo    decimal.Decimal `json:"precioMenudeo"`
	PrecioMayoreo    decimal.Decimal `json:"precioMayoreo"`
	PrecioProduccion decimal.Decimal `json:"precioProduccion"`
}

// UpdateProductRequest entrada para actualizar un producto. Nombre y Categoria
// son opcionales; los precios siempre se actualizan.
type UpdateProductRequest struct {
	Nombre           *string         `json:"nombre,omitempty"`
	Categoria        *string         `json:"categoria,omitempty"`
	PrecioMenudeo    decimal.Decimal `json:"precioMenudeo"`
	PrecioMayoreo    decimal.Decimal `json:"precioMayoreo"`
	PrecioProduccion decimal.Decimal `json:"precioProduccion"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	PrecioMenudeo    decimal.Decimal `json:"precioMenudeo"`
	PrecioMayoreo    decimal.Decimal `json:"precioMayoreo"`
	PrecioProduccion decimal.Decimal `json:"precioProduccion"`
	Activo           bool            `json:"activo"`
}
