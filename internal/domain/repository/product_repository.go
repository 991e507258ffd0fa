package repository

import "github.com/tu-usuario/pos-funeraria/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetByID devuelve el producto aunque esté inactivo: las ventas históricas
// y el reporte de ganancias necesitan resolver productos dados de baja.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate marca el producto como inactivo (baja lógica).
	Deactivate(id string) error
}
