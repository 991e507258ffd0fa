package sales

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// Repositorios en memoria para probar los casos de uso sin PostgreSQL.
// Replican el contrato de los puertos: nil cuando no existe, ErrDuplicate
// en colisión de teléfono activo.

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
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

type memCustomerRepo struct {
	customers map[string]*entity.Customer
	creates   int
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	r.creates++
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

type memSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem // por venta
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{
		sales: make(map[string]*entity.Sale),
		items: make(map[string][]*entity.SaleItem),
	}
}

func (r *memSaleRepo) Create(s *entity.Sale) error {
	header := *s
	header.Items = nil
	header.Customer = nil
	r.sales[s.ID] = &header
	r.items[s.ID] = append([]*entity.SaleItem(nil), s.Items...)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copia := *s
	copia.Items = append([]*entity.SaleItem(nil), r.items[id]...)
	return &copia, nil
}

func (r *memSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for id := range r.sales {
		s, _ := r.GetByID(id)
		if !filter.From.IsZero() && s.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !s.CreatedAt.Before(filter.To) {
			continue
		}
		if filter.CustomerID != "" && s.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memSaleRepo) DeleteItems(saleID string) error {
	delete(r.items, saleID)
	return nil
}

func (r *memSaleRepo) CreateItems(items []*entity.SaleItem) error {
	for _, item := range items {
		r.items[item.SaleID] = append(r.items[item.SaleID], item)
	}
	return nil
}

func (r *memSaleRepo) UpdateTotals(id string, t entity.SaleType, total decimal.Decimal, totalItems int) error {
	s, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	s.Type = t
	s.Total = total
	s.TotalItems = totalItems
	return nil
}

func (r *memSaleRepo) Delete(id string) error {
	delete(r.sales, id)
	return nil
}

// memTxRunner ejecuta fn directamente sobre los repositorios en memoria.
type memTxRunner struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(tx.saleRepo, tx.customerRepo)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func catalogoDePrueba() *memProductRepo {
	return newMemProductRepo(
		&entity.Product{
			ID:               "corona-chica",
			Nombre:           "Corona Chica",
			Categoria:        "Coronas",
			PrecioMenudeo:    dec("20.00"),
			PrecioMayoreo:    dec("15.00"),
			PrecioProduccion: dec("8.00"),
			Activo:           true,
		},
		&entity.Product{
			ID:               "cruz-mediana",
			Nombre:           "Cruz Mediana",
			Categoria:        "Cruces",
			PrecioMenudeo:    dec("25.50"),
			PrecioMayoreo:    dec("19.00"),
			PrecioProduccion: dec("10.00"),
			Activo:           true,
		},
	)
}

type fixture struct {
	uc        *UseCase
	saleRepo  *memSaleRepo
	products  *memProductRepo
	customers *memCustomerRepo
}

func newFixture() *fixture {
	saleRepo := newMemSaleRepo()
	products := catalogoDePrueba()
	customers := newMemCustomerRepo()
	tx := &memTxRunner{saleRepo: saleRepo, customerRepo: customers}
	return &fixture{
		uc:        NewUseCase(tx, saleRepo, products, customers),
		saleRepo:  saleRepo,
		products:  products,
		customers: customers,
	}
}
