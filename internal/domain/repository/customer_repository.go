package repository

import "github.com/tu-usuario/pos-funeraria/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste un cliente nuevo. Devuelve domain.ErrDuplicate si el
	// teléfono ya pertenece a otro cliente activo (índice único parcial).
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetActiveByPhone busca un cliente activo por teléfono canónico (10 dígitos).
	GetActiveByPhone(telefono string) (*entity.Customer, error)
	ListActive() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Deactivate marca el cliente como inactivo. Nunca se borra la fila:
	// las ventas históricas lo referencian.
	Deactivate(id string) error
}
