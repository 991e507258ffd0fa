package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo funerario (coronas, cruces, arcos).
// Maneja tres precios: menudeo (mostrador), mayoreo (revendedores) y producción (costo interno).
// La baja es lógica: Activo pasa a false y el registro se conserva por el historial de ventas.
type Product struct {
	ID               string // slug generado desde el nombre (ej. "corona-chica", "corona-chica-1")
	Nombre           string
	Categoria        string
	PrecioMenudeo    decimal.Decimal
	PrecioMayoreo    decimal.Decimal
	PrecioProduccion decimal.Decimal
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
