package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers y PATCH /api/customers/:id.
type CreateCustomerRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"` // se normaliza a 10 dígitos
}

// CustomerResponse cliente en respuestas. Sales trae las ventas recientes
// del cliente en el listado (las 10 más nuevas).
type CustomerResponse struct {
	ID        string                 `json:"id"`
	Nombre    string                 `json:"nombre"`
	Telefono  string                 `json:"telefono"`
	CreatedAt string                 `json:"createdAt,omitempty"`
	Sales     []CustomerSaleResponse `json:"sales,omitempty"`
}

// CustomerSaleResponse resumen de venta dentro del listado de clientes.
type CustomerSaleResponse struct {
	ID           string          `json:"id"`
	TicketNumber string          `json:"ticketNumber"`
	Type         string          `json:"type"`
	Total        decimal.Decimal `json:"total"`
	TotalItems   int             `json:"totalItems"`
	CreatedAt    string          `json:"createdAt"`
}
