package dto

import "github.com/shopspring/decimal"

// CorteBucket conteo y suma de ventas de un tipo en el corte de caja.
type CorteBucket struct {
	Ventas int             `json:"ventas"`
	Total  decimal.Decimal `json:"total"`
}

// CorteResponse corte de caja de un día calendario (zona horaria del negocio).
type CorteResponse struct {
	Fecha       string          `json:"fecha"` // YYYY-MM-DD
	Menudeo     CorteBucket     `json:"menudeo"`
	Mayoreo     CorteBucket     `json:"mayoreo"`
	Produccion  CorteBucket     `json:"produccion"`
	TotalVentas int             `json:"totalVentas"`
	Total       decimal.Decimal `json:"total"`
}

// GananciasBucket desglose de ganancias por tipo de venta.
type GananciasBucket struct {
	Ventas   int             `json:"ventas"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Ganancia decimal.Decimal `json:"ganancia"`
}

// GananciasResponse reporte de ganancias: ingresos contra costo de producción
// vigente. MargenGanancia es porcentaje (0 cuando no hay ingresos).
type GananciasResponse struct {
	TotalIngresos  decimal.Decimal `json:"totalIngresos"`
	TotalCostos    decimal.Decimal `json:"totalCostos"`
	GananciaTotal  decimal.Decimal `json:"gananciaTotal"`
	MargenGanancia decimal.Decimal `json:"margenGanancia"`
	Menudeo        GananciasBucket `json:"menudeo"`
	Mayoreo        GananciasBucket `json:"mayoreo"`
}
