package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

func validatePrices(menudeo, mayoreo, produccion decimal.Decimal) error {
	if !menudeo.IsPositive() || !mayoreo.IsPositive() || !produccion.IsPositive() {
		return fmt.Errorf("%w: los tres precios deben ser mayores a 0", domain.ErrInvalidInput)
	}
	return nil
}

// Create da de alta un producto. El ID es un slug del nombre; si ya existe se
// agrega un sufijo numérico hasta encontrar uno libre ("corona-chica-1", "-2"...).
// El ID repetido nunca llega al usuario como error.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if err := validatePrices(in.PrecioMenudeo, in.PrecioMayoreo, in.PrecioProduccion); err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetActiveByName(in.Categoria)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: la categoría %q no existe", domain.ErrInvalidInput, in.Categoria)
	}

	base := slugify(in.Nombre)
	if base == "" {
		return nil, fmt.Errorf("%w: el nombre no produce un identificador válido", domain.ErrInvalidInput)
	}
	id := base
	for counter := 1; ; counter++ {
		existing, err := uc.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
		id = fmt.Sprintf("%s-%d", base, counter)
	}

	now := time.Now()
	product := &entity.Product{
		ID:               id,
		Nombre:           in.Nombre,
		Categoria:        in.Categoria,
		PrecioMenudeo:    in.PrecioMenudeo,
		PrecioMayoreo:    in.PrecioMayoreo,
		PrecioProduccion: in.PrecioProduccion,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos ordenados por categoría.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza precios y, opcionalmente, nombre y categoría.
// El ID (slug) no cambia aunque cambie el nombre: las ventas lo referencian.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validatePrices(in.PrecioMenudeo, in.PrecioMayoreo, in.PrecioProduccion); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if in.Categoria != nil {
		category, err := uc.categoryRepo.GetActiveByName(*in.Categoria)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: la categoría %q no existe", domain.ErrInvalidInput, *in.Categoria)
		}
		product.Categoria = *in.Categoria
	}
	if in.Nombre != nil && *in.Nombre != "" {
		product.Nombre = *in.Nombre
	}
	product.PrecioMenudeo = in.PrecioMenudeo
	product.PrecioMayoreo = in.PrecioMayoreo
	product.PrecioProduccion = in.PrecioProduccion
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete da de baja lógica al producto; las ventas que lo referencian quedan intactas.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return uc.repo.Deactivate(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Categoria:        p.Categoria,
		PrecioMenudeo:    p.PrecioMenudeo,
		PrecioMayoreo:    p.PrecioMayoreo,
		PrecioProduccion: p.PrecioProduccion,
		Activo:           p.Activo,
	}
}
