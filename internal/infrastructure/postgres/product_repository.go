package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-sync/internal/domain"
	"github.com/jhoicas/catalog-sync/internal/domain/entity"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.price, p.category_id, p.status_id, c.name, s.name, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN statuses s ON s.id = p.status_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.StatusID,
		&p.CategoryName, &p.StatusName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertByName inserta o actualiza (precio, categoría, estado) por nombre en una sola
// sentencia. xmax = 0 en la fila devuelta indica que fue insertada y no actualizada.
// product.ID queda con el ID persistido.
func (r *ProductRepo) UpsertByName(ctx context.Context, product *entity.Product) (bool, error) {
	query := `
		INSERT INTO products (id, name, price, category_id, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			price = EXCLUDED.price,
			category_id = EXCLUDED.category_id,
			status_id = EXCLUDED.status_id,
			updated_at = EXCLUDED.updated_at
		RETURNING id, (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, product.CategoryID, product.StatusID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert product: %w", err)
	}
	return inserted, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, category_id, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.CategoryID, product.StatusID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con los nombres de categoría y estado.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza nombre, precio, categoría y estado.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, category_id = $4, status_id = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.CategoryID, product.StatusID, product.UpdatedAt,
	)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return mapWriteError("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos en orden de alta con paginación; filter.StatusName compara sin
// distinguir mayúsculas. Devuelve también el total sin paginar.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	err := r.q.QueryRow(ctx, `
		SELECT count(*) FROM products p JOIN statuses s ON s.id = p.status_id
		WHERE $1 = '' OR lower(s.name) = lower($1)`, filter.StatusName).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.q.Query(ctx, productSelect+`
		WHERE $1 = '' OR lower(s.name) = lower($1)
		ORDER BY p.created_at, p.id LIMIT $2 OFFSET $3`, filter.StatusName, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapWriteError traduce violaciones de constraints a errores de dominio.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err), isInvalidText(err):
		return domain.ErrInvalidInput
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
