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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, nombre, orden, activo, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Nombre, &c.Orden, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, nombre, orden, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Nombre, category.Orden, category.Activo,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByName busca por nombre exacto, incluyendo categorías inactivas.
func (r *CategoryRepo) GetByName(nombre string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE nombre = $1`, nombre)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// GetActiveByName busca una categoría activa por nombre exacto.
func (r *CategoryRepo) GetActiveByName(nombre string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE nombre = $1 AND activo`, nombre)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get active category by name: %w", err)
	}
	return c, nil
}

// ListActive lista categorías activas por orden de pantalla.
func (r *CategoryRepo) ListActive() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE activo ORDER BY orden`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Orden, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y orden.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `UPDATE categories SET nombre = $2, orden = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Nombre, category.Orden, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Deactivate baja lógica de la categoría.
func (r *CategoryRepo) Deactivate(id string) error {
	query := `UPDATE categories SET activo = false, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}
	return nil
}
