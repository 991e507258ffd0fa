package customers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// ResolveOrCreate busca un cliente activo por teléfono y lo crea si no existe.
// Opera sobre el repositorio que recibe, de modo que la venta de mayoreo lo
// invoca con el repositorio atado a su transacción.
//
// La resolución es solo por teléfono: si el cliente ya existe, el nombre
// capturado en la venta NO actualiza el registro (eso es una edición explícita).
// Si dos ventas concurrentes intentan crear el mismo teléfono, el índice único
// hace perder a una; esa pierde releyendo al ganador en vez de fallar.
func ResolveOrCreate(repo repository.CustomerRepository, nombre, telefono string) (*entity.Customer, error) {
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	canonical, err := NormalizePhone(telefono)
	if err != nil {
		return nil, err
	}

	existing, err := repo.GetActiveByPhone(canonical)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Telefono:  canonical,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = repo.Create(customer)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return nil, err
	}
	// Perdimos la carrera contra otra venta: el cliente ya existe, releerlo.
	winner, lookupErr := repo.GetActiveByPhone(canonical)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if winner == nil {
		return nil, err
	}
	return winner, nil
}

// UseCase casos de uso CRUD para clientes de mayoreo.
type UseCase struct {
	repo     repository.CustomerRepository
	saleRepo repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CustomerRepository, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{repo: repo, saleRepo: saleRepo}
}

// Create registra un cliente explícitamente (pantalla de clientes).
func (uc *UseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	canonical, err := NormalizePhone(in.Telefono)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetActiveByPhone(canonical)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cliente con este teléfono", domain.ErrDuplicate)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Telefono:  canonical,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes activos, cada uno con sus 10 ventas más recientes.
func (uc *UseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		resp := toCustomerResponse(c)
		sales, err := uc.saleRepo.List(repository.SaleFilter{CustomerID: c.ID, Limit: 10})
		if err != nil {
			return nil, err
		}
		for _, s := range sales {
			resp.Sales = append(resp.Sales, dto.CustomerSaleResponse{
				ID:           s.ID,
				TicketNumber: s.TicketNumber,
				Type:         string(s.Type),
				Total:        s.Total,
				TotalItems:   s.TotalItems,
				CreatedAt:    s.CreatedAt.Format(time.RFC3339),
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

// Update edita nombre y teléfono de un cliente existente.
// Un teléfono que ya pertenece a OTRO cliente activo es un conflicto.
func (uc *UseCase) Update(id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	canonical, err := NormalizePhone(in.Telefono)
	if err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	other, err := uc.repo.GetActiveByPhone(canonical)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, fmt.Errorf("%w: ya existe un cliente con este teléfono", domain.ErrDuplicate)
	}
	customer.Nombre = in.Nombre
	customer.Telefono = canonical
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete da de baja lógica al cliente; sus ventas conservan el vínculo.
func (uc *UseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return uc.repo.Deactivate(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Telefono:  c.Telefono,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
