package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
)

// Resolve devuelve el precio unitario aplicable según el tipo de venta:
// menudeo → PrecioMenudeo, mayoreo → PrecioMayoreo, produccion → PrecioProduccion.
// Función pura sobre el catálogo: mismo producto y tipo, mismo precio.
func Resolve(p *entity.Product, t entity.SaleType) (decimal.Decimal, error) {
	if p == nil {
		return decimal.Zero, fmt.Errorf("%w: producto no resuelto en catálogo", domain.ErrNotFound)
	}
	switch t {
	case entity.SaleTypeMenudeo:
		return p.PrecioMenudeo, nil
	case entity.SaleTypeMayoreo:
		return p.PrecioMayoreo, nil
	case entity.SaleTypeProduccion:
		return p.PrecioProduccion, nil
	}
	return decimal.Zero, fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidInput, t)
}
