package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/application/customers"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/pricing"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// UseCase registra, lista, edita y elimina ventas.
// Los precios unitarios y los totales siempre se recalculan desde el catálogo
// según el tipo de venta; los montos que manda el cliente web se ignoran.
type UseCase struct {
	txRunner     SaleTxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// builtLine partida ya valuada contra el catálogo.
type builtLine struct {
	product   *entity.Product
	quantity  int
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

// buildLines filtra partidas en cero, valida cantidades y resuelve el precio
// unitario de cada producto según el tipo de venta. No persiste nada: o
// devuelve el carrito completo valuado, o un error antes de tocar la base.
func (uc *UseCase) buildLines(t entity.SaleType, items []dto.SaleItemRequest) ([]builtLine, error) {
	lines := make([]builtLine, 0, len(items))
	for _, item := range items {
		if item.Quantity == 0 {
			continue // cantidad cero: la partida simplemente no se registra
		}
		if item.Quantity < 0 {
			return nil, fmt.Errorf("%w: cantidad negativa para producto %s", domain.ErrInvalidInput, item.ProductID)
		}
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: partida sin producto", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		unitPrice, err := pricing.Resolve(product, t)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines = append(lines, builtLine{
			product:   product,
			quantity:  item.Quantity,
			unitPrice: unitPrice,
			total:     unitPrice.Mul(qty),
		})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene partidas", domain.ErrInvalidInput)
	}
	return lines, nil
}

func sumLines(lines []builtLine) (total decimal.Decimal, totalItems int) {
	for _, l := range lines {
		total = total.Add(l.total)
		totalItems += l.quantity
	}
	return total, totalItems
}

// Create registra una venta con sus partidas en una sola transacción.
//
// Menudeo: nombre/teléfono del cliente son opcionales y se guardan solo como
// copia en el ticket, sin ligar ni crear registro de cliente.
// Mayoreo: nombre y teléfono de 10 dígitos son obligatorios; el cliente se
// resuelve o crea dentro de la misma transacción y la venta queda ligada a él.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	t, ok := entity.ParseSaleType(in.Type)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidInput, in.Type)
	}
	if t == entity.SaleTypeProduccion {
		// Producción solo existe en la edición; la captura es menudeo o mayoreo.
		return nil, fmt.Errorf("%w: tipo de venta %q no disponible en captura", domain.ErrInvalidInput, in.Type)
	}

	customerPhone := in.CustomerPhone
	if t == entity.SaleTypeMayoreo {
		if in.CustomerName == "" {
			return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio en mayoreo", domain.ErrInvalidInput)
		}
		canonical, err := customers.NormalizePhone(in.CustomerPhone)
		if err != nil {
			return nil, err
		}
		customerPhone = canonical
	}

	lines, err := uc.buildLines(t, in.Items)
	if err != nil {
		return nil, err
	}
	total, totalItems := sumLines(lines)

	now := time.Now()
	ticket := in.TicketNumber
	if ticket == "" {
		ticket = fmt.Sprintf("TK-%d", now.Unix())
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		TicketNumber:  ticket,
		Type:          t,
		Total:         total,
		TotalItems:    totalItems,
		CustomerName:  in.CustomerName,
		CustomerPhone: customerPhone,
		CreatedAt:     now,
	}
	for _, l := range lines {
		sale.Items = append(sale.Items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   l.product.ID,
			ProductName: l.product.Nombre,
			Quantity:    l.quantity,
			UnitPrice:   l.unitPrice,
			TotalPrice:  l.total,
		})
	}

	var linked *entity.Customer
	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if t == entity.SaleTypeMayoreo {
			customer, err := customers.ResolveOrCreate(customerRepo, in.CustomerName, customerPhone)
			if err != nil {
				return err
			}
			sale.CustomerID = customer.ID
			linked = customer
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	sale.Customer = linked

	return toSaleResponse(sale), nil
}

// List devuelve las ventas más recientes primero, con partidas y cliente.
func (uc *UseCase) List(filter repository.SaleFilter) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Update reemplaza todas las partidas de la venta y actualiza tipo y totales,
// todo dentro de una transacción: un lector concurrente ve el juego de
// partidas anterior o el nuevo, nunca una mezcla ni una venta vacía.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	t, ok := entity.ParseSaleType(in.Type)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidInput, in.Type)
	}
	lines, err := uc.buildLines(t, in.Items)
	if err != nil {
		return nil, err
	}
	total, totalItems := sumLines(lines)

	var updated *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
		}
		if err := saleRepo.DeleteItems(id); err != nil {
			return err
		}
		items := make([]*entity.SaleItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      id,
				ProductID:   l.product.ID,
				ProductName: l.product.Nombre,
				Quantity:    l.quantity,
				UnitPrice:   l.unitPrice,
				TotalPrice:  l.total,
			})
		}
		if err := saleRepo.CreateItems(items); err != nil {
			return err
		}
		if err := saleRepo.UpdateTotals(id, t, total, totalItems); err != nil {
			return err
		}
		sale.Type = t
		sale.Total = total
		sale.TotalItems = totalItems
		sale.Items = items
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(updated), nil
}

// Delete elimina la venta y todas sus partidas en una transacción.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
		}
		if err := saleRepo.DeleteItems(id); err != nil {
			return err
		}
		return saleRepo.Delete(id)
	})
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		TicketNumber:  s.TicketNumber,
		Type:          string(s.Type),
		Total:         s.Total,
		TotalItems:    s.TotalItems,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CustomerID:    s.CustomerID,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	if s.Customer != nil {
		resp.Customer = &dto.CustomerResponse{
			ID:       s.Customer.ID,
			Nombre:   s.Customer.Nombre,
			Telefono: s.Customer.Telefono,
		}
	}
	return resp
}
