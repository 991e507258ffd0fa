package entity

import "time"

// Customer representa un cliente de mayoreo.
// Telefono se guarda en forma canónica: exactamente 10 dígitos, sin formato.
// Entre clientes activos el teléfono es único (índice parcial en la base).
// La baja es lógica: el registro se conserva por las ventas que lo referencian.
type Customer struct {
	ID        string
	Nombre    string
	Telefono  string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
