package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Las escrituras multi-sentencia (venta + partidas) deben correr sobre una tx
// vía TxRunner; este repositorio no abre transacciones por sí mismo.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y todas sus partidas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, ticket_number, type, total, total_items, customer_name, customer_phone, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TicketNumber, string(sale.Type), sale.Total, sale.TotalItems,
		nullIfEmpty(sale.CustomerName), nullIfEmpty(sale.CustomerPhone), nullIfEmpty(sale.CustomerID),
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.CreateItems(sale.Items)
}

// CreateItems inserta partidas. La FK a products rechaza productos inexistentes
// y hace fallar (y revertir) la transacción completa.
func (r *SaleRepo) CreateItems(items []*entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.SaleID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.TotalPrice,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("insert sale item: producto %s no existe: %w", item.ProductID, err)
			}
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

const saleColumns = `id, ticket_number, type, total, total_items, customer_name, customer_phone, customer_id, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var t string
	var customerName, customerPhone, customerID *string
	err := row.Scan(
		&s.ID, &s.TicketNumber, &t, &s.Total, &s.TotalItems,
		&customerName, &customerPhone, &customerID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Type = entity.SaleType(t)
	s.CustomerName = derefStr(customerName)
	s.CustomerPhone = derefStr(customerPhone)
	s.CustomerID = derefStr(customerID)
	return &s, nil
}

// GetByID obtiene una venta con sus partidas, o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySaleIDs([]string{id})
	if err != nil {
		return nil, err
	}
	sale.Items = items[id]
	return sale, nil
}

// List devuelve ventas con partidas y cliente ligado, de la más reciente a la
// más antigua. Los campos en cero del filtro no acotan.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	n := 0
	if !filter.From.IsZero() {
		n++
		query += fmt.Sprintf(" AND created_at >= $%d", n)
		args = append(args, filter.From)
	}
	if !filter.To.IsZero() {
		n++
		query += fmt.Sprintf(" AND created_at < $%d", n)
		args = append(args, filter.To)
	}
	if filter.CustomerID != "" {
		n++
		query += fmt.Sprintf(" AND customer_id = $%d", n)
		args = append(args, filter.CustomerID)
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	var saleIDs []string
	customerIDs := map[string]struct{}{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
		saleIDs = append(saleIDs, sale.ID)
		if sale.CustomerID != "" {
			customerIDs[sale.CustomerID] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemsBySale, err := r.itemsBySaleIDs(saleIDs)
	if err != nil {
		return nil, err
	}
	customers, err := r.customersByIDs(customerIDs)
	if err != nil {
		return nil, err
	}
	for _, sale := range sales {
		sale.Items = itemsBySale[sale.ID]
		if sale.CustomerID != "" {
			sale.Customer = customers[sale.CustomerID]
		}
	}
	return sales, nil
}

// itemsBySaleIDs carga las partidas de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) itemsBySaleIDs(saleIDs []string) (map[string][]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, total_price
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]*entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[item.SaleID] = append(out[item.SaleID], &item)
	}
	return out, rows.Err()
}

func (r *SaleRepo) customersByIDs(ids map[string]struct{}) (map[string]*entity.Customer, error) {
	out := make(map[string]*entity.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	query := `
		SELECT id, nombre, telefono, activo, created_at, updated_at
		FROM customers WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, list)
	if err != nil {
		return nil, fmt.Errorf("list sale customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale customer: %w", err)
		}
		out[c.ID] = &c
	}
	return out, rows.Err()
}

// DeleteItems elimina todas las partidas de la venta.
func (r *SaleRepo) DeleteItems(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// UpdateTotals actualiza tipo, total y conteo de artículos de la cabecera.
func (r *SaleRepo) UpdateTotals(id string, t entity.SaleType, total decimal.Decimal, totalItems int) error {
	query := `UPDATE sales SET type = $2, total = $3, total_items = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(t), total, totalItems)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de la venta. Llamar DeleteItems antes (FK).
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
