package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría. El nombre no puede repetirse, ni siquiera
// contra una categoría dada de baja; el mensaje indica en qué estado está la existente.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		estado := "activa"
		if !existing.Activo {
			estado = "inactiva"
		}
		return nil, fmt.Errorf("%w: ya existe una categoría %q (%s)", domain.ErrDuplicate, in.Nombre, estado)
	}
	orden := 0
	if in.Orden != nil {
		orden = *in.Orden
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Orden:     orden,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías activas por orden de pantalla.
func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza nombre y/u orden.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	if in.Nombre != nil && *in.Nombre != "" && *in.Nombre != category.Nombre {
		other, err := uc.repo.GetByName(*in.Nombre)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: ya existe una categoría %q", domain.ErrDuplicate, *in.Nombre)
		}
		category.Nombre = *in.Nombre
	}
	if in.Orden != nil {
		category.Orden = *in.Orden
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete da de baja lógica a la categoría.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	return uc.repo.Deactivate(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:     c.ID,
		Nombre: c.Nombre,
		Orden:  c.Orden,
		Activo: c.Activo,
	}
}
