package entity

import "time"

// Category representa una categoría del catálogo (coronas, cruces, arcos...).
// Orden controla la posición en pantalla; la baja es lógica (Activo = false).
type Category struct {
	ID        string
	Nombre    string
	Orden     int
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
