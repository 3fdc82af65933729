package repository

import (
	"context"

	"github.com/jhoicas/catalog-sync/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// GetOrCreate devuelve la categoría con ese nombre, creándola de forma atómica si no existe.
	GetOrCreate(ctx context.Context, name string) (*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
