package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Deactivate(id string) error {
	if p, ok := r.products[id]; ok {
		p.Activo = false
	}
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo(nombres ...string) *memCategoryRepo {
	r := &memCategoryRepo{categories: make(map[string]*entity.Category)}
	for i, nombre := range nombres {
		c := &entity.Category{
			ID:        uuid.New().String(),
			Nombre:    nombre,
			Orden:     i,
			Activo:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		r.categories[c.ID] = c
	}
	return r
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *memCategoryRepo) GetByName(nombre string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) GetActiveByName(nombre string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Activo && c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) ListActive() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.Activo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Deactivate(id string) error {
	if c, ok := r.categories[id]; ok {
		c.Activo = false
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func preciosValidos() (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	return dec("150.00"), dec("120.00"), dec("80.00")
}

func TestProductCreate_GeneraSlugDesdeElNombre(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemCategoryRepo("Coronas"))
	menudeo, mayoreo, produccion := preciosValidos()

	out, err := uc.Create(dto.CreateProductRequest{
		Nombre:           "Corona Chica Fúnebre",
		Categoria:        "Coronas",
		PrecioMenudeo:    menudeo,
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	})
	require.NoError(t, err)

	assert.Equal(t, "corona-chica-funebre", out.ID)
	assert.True(t, out.Activo)
}

func TestProductCreate_ColisionDeSlugAgregaSufijo(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemCategoryRepo("Coronas"))
	menudeo, mayoreo, produccion := preciosValidos()

	req := dto.CreateProductRequest{
		Nombre:           "Corona Chica",
		Categoria:        "Coronas",
		PrecioMenudeo:    menudeo,
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	}

	primera, err := uc.Create(req)
	require.NoError(t, err)
	segunda, err := uc.Create(req)
	require.NoError(t, err)
	tercera, err := uc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, "corona-chica", primera.ID)
	assert.Equal(t, "corona-chica-1", segunda.ID)
	assert.Equal(t, "corona-chica-2", tercera.ID)
}

func TestProductCreate_ExigeTresPreciosPositivos(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo(), newMemCategoryRepo("Coronas"))

	cases := []struct {
		name                         string
		menudeo, mayoreo, produccion string
	}{
		{"menudeo en cero", "0", "120.00", "80.00"},
		{"mayoreo negativo", "150.00", "-1", "80.00"},
		{"producción en cero", "150.00", "120.00", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(dto.CreateProductRequest{
				Nombre:           "Corona Chica",
				Categoria:        "Coronas",
				PrecioMenudeo:    dec(tc.menudeo),
				PrecioMayoreo:    dec(tc.mayoreo),
				PrecioProduccion: dec(tc.produccion),
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestProductCreate_CategoriaDebeExistirYEstarActiva(t *testing.T) {
	categoryRepo := newMemCategoryRepo("Coronas")
	uc := NewProductUseCase(newMemProductRepo(), categoryRepo)
	menudeo, mayoreo, produccion := preciosValidos()

	_, err := uc.Create(dto.CreateProductRequest{
		Nombre:           "Arco Grande",
		Categoria:        "Arcos",
		PrecioMenudeo:    menudeo,
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductUpdate_ElSlugNoCambiaConElNombre(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemCategoryRepo("Coronas"))
	menudeo, mayoreo, produccion := preciosValidos()

	creado, err := uc.Create(dto.CreateProductRequest{
		Nombre:           "Corona Chica",
		Categoria:        "Coronas",
		PrecioMenudeo:    menudeo,
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	})
	require.NoError(t, err)

	nuevoNombre := "Corona Pequeña"
	out, err := uc.Update(creado.ID, dto.UpdateProductRequest{
		Nombre:           &nuevoNombre,
		PrecioMenudeo:    dec("160.00"),
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	})
	require.NoError(t, err)

	assert.Equal(t, "corona-chica", out.ID)
	assert.Equal(t, "Corona Pequeña", out.Nombre)
	assert.True(t, out.PrecioMenudeo.Equal(dec("160.00")))
}

func TestProductDelete_BajaLogica(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewProductUseCase(repo, newMemCategoryRepo("Coronas"))
	menudeo, mayoreo, produccion := preciosValidos()

	creado, err := uc.Create(dto.CreateProductRequest{
		Nombre:           "Corona Chica",
		Categoria:        "Coronas",
		PrecioMenudeo:    menudeo,
		PrecioMayoreo:    mayoreo,
		PrecioProduccion: produccion,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))

	// Sigue resoluble por ID (historial de ventas) pero fuera del listado.
	stored, err := repo.GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Activo)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		entrada string
		salida  string
	}{
		{"Corona Chica", "corona-chica"},
		{"Corona Chica Fúnebre", "corona-chica-funebre"},
		{"  Arco   Grande  ", "arco-grande"},
		{"Cruz #3 (especial)", "cruz-3-especial"},
		{"ÁÉÍÓÚ ñandú", "aeiou-nandu"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.salida, slugify(tc.entrada), "slugify(%q)", tc.entrada)
	}
}
