package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
)

// SaleFilter acota listados de ventas. Los campos en cero no filtran.
type SaleFilter struct {
	From       time.Time // inclusive
	To         time.Time // exclusive
	CustomerID string
	Limit      int
}

// SaleRepository define el puerto de persistencia para Sale y sus partidas.
// Las operaciones que tocan venta y partidas a la vez (crear, reemplazar
// partidas, eliminar) deben ejecutarse dentro de una transacción; el caso de
// uso las invoca sobre repositorios atados a la tx vía SaleTxRunner.
type SaleRepository interface {
	// Create persiste la venta y todas sus partidas.
	Create(sale *entity.Sale) error
	// GetByID devuelve la venta con partidas, o nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas con partidas y cliente ligado, de la más reciente
	// a la más antigua.
	List(filter SaleFilter) ([]*entity.Sale, error)
	// DeleteItems elimina todas las partidas de la venta.
	DeleteItems(saleID string) error
	// CreateItems inserta partidas nuevas para una venta existente.
	CreateItems(items []*entity.SaleItem) error
	// UpdateTotals actualiza tipo, total y conteo de artículos de la cabecera.
	UpdateTotals(id string, t entity.SaleType, total decimal.Decimal, totalItems int) error
	// Delete elimina la cabecera. Las partidas deben borrarse antes (FK).
	Delete(id string) error
}
