package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-sync/internal/domain/entity"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementación del puerto StatusRepository sobre PostgreSQL (pool o tx).
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// GetOrCreate mismo patrón atómico que CategoryRepo.GetOrCreate, sobre UNIQUE(statuses.name).
func (r *StatusRepo) GetOrCreate(ctx context.Context, name string) (*entity.Status, error) {
	query := `
		INSERT INTO statuses (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`
	var st entity.Status
	if err := r.q.QueryRow(ctx, query, uuid.New().String(), name).Scan(&st.ID, &st.Name, &st.CreatedAt); err != nil {
		return nil, fmt.Errorf("get or create status: %w", err)
	}
	return &st, nil
}

// GetByID obtiene un estado por ID.
func (r *StatusRepo) GetByID(ctx context.Context, id string) (*entity.Status, error) {
	var st entity.Status
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM statuses WHERE id = $1`, id).
		Scan(&st.ID, &st.Name, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &st, nil
}

// List devuelve los estados ordenados por nombre.
func (r *StatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM statuses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var st entity.Status
		if err := rows.Scan(&st.ID, &st.Name, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &st)
	}
	return list, rows.Err()
}
