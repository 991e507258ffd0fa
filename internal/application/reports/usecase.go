package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// UseCase reportes derivados de las ventas: corte de caja diario y ganancias.
// Ambos son lecturas puras recalculadas en cada consulta; no mutan nada.
type UseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	loc         *time.Location // zona horaria del negocio: define el día del corte
}

// NewUseCase construye el caso de uso.
func NewUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{saleRepo: saleRepo, productRepo: productRepo, loc: loc}
}

// CorteDeCaja suma las ventas cuyo día calendario (en la zona del negocio)
// coincide con fecha (YYYY-MM-DD): conteo y total por tipo más el gran total.
func (uc *UseCase) CorteDeCaja(fecha string) (*dto.CorteResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", fecha, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, fecha)
	}
	from := day
	to := day.AddDate(0, 0, 1)

	sales, err := uc.saleRepo.List(repository.SaleFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	out := &dto.CorteResponse{Fecha: fecha}
	for _, s := range sales {
		out.TotalVentas++
		out.Total = out.Total.Add(s.Total)
		switch s.Type {
		case entity.SaleTypeMenudeo:
			out.Menudeo.Ventas++
			out.Menudeo.Total = out.Menudeo.Total.Add(s.Total)
		case entity.SaleTypeMayoreo:
			out.Mayoreo.Ventas++
			out.Mayoreo.Total = out.Mayoreo.Total.Add(s.Total)
		case entity.SaleTypeProduccion:
			out.Produccion.Ventas++
			out.Produccion.Total = out.Produccion.Total.Add(s.Total)
		}
	}
	return out, nil
}

// ReporteGanancias recorre todas las ventas de menudeo y mayoreo comparando
// el ingreso registrado contra el costo de producción VIGENTE de cada producto
// (no el de la fecha de venta: editar un costo mueve las cifras históricas).
// Las ventas de tipo producción no entran al reporte.
func (uc *UseCase) ReporteGanancias() (*dto.GananciasResponse, error) {
	sales, err := uc.saleRepo.List(repository.SaleFilter{})
	if err != nil {
		return nil, err
	}

	costCache := make(map[string]decimal.Decimal)
	productionCost := func(productID string) (decimal.Decimal, error) {
		if c, ok := costCache[productID]; ok {
			return c, nil
		}
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return decimal.Zero, err
		}
		cost := decimal.Zero
		if product != nil {
			cost = product.PrecioProduccion
		}
		costCache[productID] = cost
		return cost, nil
	}

	out := &dto.GananciasResponse{}
	for _, s := range sales {
		if s.Type != entity.SaleTypeMenudeo && s.Type != entity.SaleTypeMayoreo {
			continue
		}
		saleCost := decimal.Zero
		for _, item := range s.Items {
			cost, err := productionCost(item.ProductID)
			if err != nil {
				return nil, err
			}
			saleCost = saleCost.Add(cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		out.TotalIngresos = out.TotalIngresos.Add(s.Total)
		out.TotalCostos = out.TotalCostos.Add(saleCost)
		switch s.Type {
		case entity.SaleTypeMenudeo:
			out.Menudeo.Ventas++
			out.Menudeo.Ingresos = out.Menudeo.Ingresos.Add(s.Total)
			out.Menudeo.Costos = out.Menudeo.Costos.Add(saleCost)
		case entity.SaleTypeMayoreo:
			out.Mayoreo.Ventas++
			out.Mayoreo.Ingresos = out.Mayoreo.Ingresos.Add(s.Total)
			out.Mayoreo.Costos = out.Mayoreo.Costos.Add(saleCost)
		}
	}

	out.GananciaTotal = out.TotalIngresos.Sub(out.TotalCostos)
	out.Menudeo.Ganancia = out.Menudeo.Ingresos.Sub(out.Menudeo.Costos)
	out.Mayoreo.Ganancia = out.Mayoreo.Ingresos.Sub(out.Mayoreo.Costos)
	if out.TotalIngresos.IsPositive() {
		out.MargenGanancia = out.GananciaTotal.
			Div(out.TotalIngresos).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return out, nil
}
