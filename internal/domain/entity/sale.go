package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta: determinan cuál de los tres precios del producto aplica.
// "produccion" solo es alcanzable desde la edición de una venta (costo interno),
// nunca desde las pantallas de captura de menudeo o mayoreo.
const (
	SaleTypeMenudeo    SaleType = "menudeo"
	SaleTypeMayoreo    SaleType = "mayoreo"
	SaleTypeProduccion SaleType = "produccion"
)

// SaleType es el modo de precio de una venta.
type SaleType string

// ParseSaleType valida el tipo recibido en la frontera HTTP.
func ParseSaleType(s string) (SaleType, bool) {
	switch SaleType(s) {
	case SaleTypeMenudeo, SaleTypeMayoreo, SaleTypeProduccion:
		return SaleType(s), true
	}
	return "", false
}

// Sale representa una venta con sus partidas.
// CustomerName y CustomerPhone son una copia histórica tomada al momento de la venta:
// ediciones o bajas posteriores del cliente no reescriben el ticket.
// CustomerID solo se liga en ventas de mayoreo; en menudeo queda vacío aunque
// se haya capturado nombre y teléfono.
type Sale struct {
	ID            string
	TicketNumber  string
	Type          SaleType
	Total         decimal.Decimal
	TotalItems    int
	CustomerName  string
	CustomerPhone string
	CustomerID    string // vacío si la venta no está ligada a un cliente
	CreatedAt     time.Time

	Items    []*SaleItem
	Customer *Customer // cargado en listados cuando CustomerID no es vacío
}

// SaleItem es una partida de la venta. ProductName y UnitPrice son copias
// tomadas del catálogo al crear la venta; no se recalculan con el catálogo vigente.
// Las partidas viven y mueren con su venta: se crean al registrar o editar la
// venta completa y se eliminan todas juntas.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
}
