package dto

import "github.com/shopspring/decimal"

// SaleItemRequest partida del carrito. UnitPrice y TotalPrice se aceptan por
// compatibilidad con el cliente web pero el servidor los recalcula desde el
// catálogo según el tipo de venta; nunca se confía en montos del cliente.
type SaleItemRequest struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice,omitempty"`
	TotalPrice  decimal.Decimal `json:"totalPrice,omitempty"`
}

// CreateSaleRequest body para POST /api/sales.
// Total y TotalItems también se recalculan del lado del servidor.
type CreateSaleRequest struct {
	TicketNumber  string            `json:"ticketNumber,omitempty"` // si va vacío se genera
	Type          string            `json:"type"`                   // menudeo | mayoreo
	Total         decimal.Decimal   `json:"total,omitempty"`
	TotalItems    int               `json:"totalItems,omitempty"`
	CustomerName  string            `json:"customerName,omitempty"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	Items         []SaleItemRequest `json:"items"`
}

// UpdateSaleRequest body para PATCH /api/sales/:id. Reemplaza todas las
// partidas. Aquí sí se admite type "produccion" (ajustes a costo interno).
type UpdateSaleRequest struct {
	Type       string            `json:"type"`
	Total      decimal.Decimal   `json:"total,omitempty"`
	TotalItems int               `json:"totalItems,omitempty"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleResponse venta persistida con partidas y cliente ligado.
type SaleResponse struct {
	ID            string             `json:"id"`
	TicketNumber  string             `json:"ticketNumber"`
	Type          string             `json:"type"`
	Total         decimal.Decimal    `json:"total"`
	TotalItems    int                `json:"totalItems"`
	CustomerName  string             `json:"customerName,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	CustomerID    string             `json:"customerId,omitempty"`
	CreatedAt     string             `json:"createdAt"`
	Items         []SaleItemResponse `json:"items"`
	Customer      *CustomerResponse  `json:"customer,omitempty"`
}

// SaleItemResponse partida en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
