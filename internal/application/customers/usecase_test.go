package customers

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range r.customers {
		if existing.Activo && existing.Telefono == c.Telefono {
			return fmt.Errorf("%w: teléfono ya registrado", domain.ErrDuplicate)
		}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *memCustomerRepo) GetActiveByPhone(telefono string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Activo && c.Telefono == telefono {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) ListActive() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if c.Activo {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Deactivate(id string) error {
	if c, ok := r.customers[id]; ok {
		c.Activo = false
	}
	return nil
}

// racingCustomerRepo simula perder la carrera del índice único: el primer
// Create devuelve ErrDuplicate y de paso inserta al "ganador", como si otra
// transacción hubiera confirmado primero.
type racingCustomerRepo struct {
	*memCustomerRepo
	raced bool
}

func (r *racingCustomerRepo) Create(c *entity.Customer) error {
	if !r.raced {
		r.raced = true
		winner := &entity.Customer{
			ID:        uuid.New().String(),
			Nombre:    "Ganador Concurrente",
			Telefono:  c.Telefono,
			Activo:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		r.customers[winner.ID] = winner
		return fmt.Errorf("%w: teléfono ya registrado", domain.ErrDuplicate)
	}
	return r.memCustomerRepo.Create(c)
}

type stubSaleRepo struct {
	sales []*entity.Sale
}

func (r *stubSaleRepo) Create(*entity.Sale) error            { return nil }
func (r *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r *stubSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if filter.CustomerID != "" && s.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, s)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
func (r *stubSaleRepo) DeleteItems(string) error               { return nil }
func (r *stubSaleRepo) CreateItems([]*entity.SaleItem) error   { return nil }
func (r *stubSaleRepo) UpdateTotals(string, entity.SaleType, decimal.Decimal, int) error {
	return nil
}
func (r *stubSaleRepo) Delete(string) error { return nil }

func TestResolveOrCreate_CreaYLuegoReutiliza(t *testing.T) {
	repo := newMemCustomerRepo()

	creado, err := ResolveOrCreate(repo, "Flores del Valle", "55 1234 5678")
	require.NoError(t, err)
	assert.Equal(t, "5512345678", creado.Telefono)
	assert.True(t, creado.Activo)

	// Misma llamada con otro nombre: devuelve al existente sin tocarlo.
	resuelto, err := ResolveOrCreate(repo, "Otro Nombre", "5512345678")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, resuelto.ID)
	assert.Equal(t, "Flores del Valle", resuelto.Nombre)
	assert.Len(t, repo.customers, 1)
}

func TestResolveOrCreate_PierdeLaCarreraYReleeAlGanador(t *testing.T) {
	repo := &racingCustomerRepo{memCustomerRepo: newMemCustomerRepo()}

	out, err := ResolveOrCreate(repo, "Flores del Valle", "5512345678")
	require.NoError(t, err)

	assert.Equal(t, "Ganador Concurrente", out.Nombre)
	assert.Len(t, repo.customers, 1)
}

func TestResolveOrCreate_ValidaEntrada(t *testing.T) {
	repo := newMemCustomerRepo()

	_, err := ResolveOrCreate(repo, "", "5512345678")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ResolveOrCreate(repo, "Flores del Valle", "123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	assert.Empty(t, repo.customers)
}

func TestCreate_RechazaTelefonoDuplicado(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewUseCase(repo, &stubSaleRepo{})

	_, err := uc.Create(dto.CreateCustomerRequest{Nombre: "Flores del Valle", Telefono: "5512345678"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCustomerRequest{Nombre: "Otro", Telefono: "(55) 1234 5678"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestUpdate_TelefonoDeOtroClienteEsConflicto(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewUseCase(repo, &stubSaleRepo{})

	a, err := uc.Create(dto.CreateCustomerRequest{Nombre: "Cliente A", Telefono: "5511111111"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCustomerRequest{Nombre: "Cliente B", Telefono: "5522222222"})
	require.NoError(t, err)

	_, err = uc.Update(a.ID, dto.CreateCustomerRequest{Nombre: "Cliente A", Telefono: "5522222222"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	// Actualizar conservando el propio teléfono no es conflicto.
	out, err := uc.Update(a.ID, dto.CreateCustomerRequest{Nombre: "Cliente A Renombrado", Telefono: "5511111111"})
	require.NoError(t, err)
	assert.Equal(t, "Cliente A Renombrado", out.Nombre)
}

func TestDelete_EsBajaLogicaYLiberaElTelefono(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewUseCase(repo, &stubSaleRepo{})

	creado, err := uc.Create(dto.CreateCustomerRequest{Nombre: "Flores del Valle", Telefono: "5512345678"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))

	// El registro sigue existiendo pero inactivo.
	stored, err := repo.GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Activo)

	// El teléfono queda libre para un alta nueva.
	_, err = uc.Create(dto.CreateCustomerRequest{Nombre: "Nuevo Cliente", Telefono: "5512345678"})
	require.NoError(t, err)
}

func TestDelete_ClienteInexistente(t *testing.T) {
	uc := NewUseCase(newMemCustomerRepo(), &stubSaleRepo{})

	err := uc.Delete("no-existe")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestList_AdjuntaVentasRecientesDelCliente(t *testing.T) {
	repo := newMemCustomerRepo()
	saleRepo := &stubSaleRepo{}
	uc := NewUseCase(repo, saleRepo)

	creado, err := uc.Create(dto.CreateCustomerRequest{Nombre: "Flores del Valle", Telefono: "5512345678"})
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		saleRepo.sales = append(saleRepo.sales, &entity.Sale{
			ID:           uuid.New().String(),
			TicketNumber: fmt.Sprintf("TK-%d", i),
			Type:         entity.SaleTypeMayoreo,
			Total:        decimal.NewFromInt(100),
			TotalItems:   1,
			CustomerID:   creado.ID,
			CreatedAt:    time.Now(),
		})
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Sales, 10, "solo las 10 ventas más recientes")
}
