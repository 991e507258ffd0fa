package repository

import "github.com/tu-usuario/pos-funeraria/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre incluyendo categorías inactivas:
	// el alta rechaza duplicados aunque la existente esté dada de baja.
	GetByName(nombre string) (*entity.Category, error)
	GetActiveByName(nombre string) (*entity.Category, error)
	ListActive() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Deactivate(id string) error
}
