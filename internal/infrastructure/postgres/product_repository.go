package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-funeraria/internal/domain"
	"github.com/tu-usuario/pos-funeraria/internal/domain/entity"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, nombre, categoria, precio_menudeo, precio_mayoreo, precio_produccion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Categoria,
		product.PrecioMenudeo, product.PrecioMayoreo, product.PrecioProduccion,
		product.Activo, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, esté activo o no (las ventas históricas
// y el reporte de ganancias necesitan resolver productos dados de baja).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, nombre, categoria, precio_menudeo, precio_mayoreo, precio_produccion, activo, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Categoria,
		&p.PrecioMenudeo, &p.PrecioMayoreo, &p.PrecioProduccion,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListActive lista productos activos ordenados por categoría.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT id, nombre, categoria, precio_menudeo, precio_mayoreo, precio_produccion, activo, created_at, updated_at
		FROM products WHERE activo ORDER BY categoria, nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Categoria,
			&p.PrecioMenudeo, &p.PrecioMayoreo, &p.PrecioProduccion,
			&p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, categoría y precios.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, categoria = $3, precio_menudeo = $4, precio_mayoreo = $5, precio_produccion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Categoria,
		product.PrecioMenudeo, product.PrecioMayoreo, product.PrecioProduccion,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate baja lógica del producto.
func (r *ProductRepo) Deactivate(id string) error {
	query := `UPDATE products SET activo = false, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}
