package repository

import (
	"context"

	"github.com/jhoicas/catalog-sync/internal/domain/entity"
)

// StatusRepository define el puerto de persistencia para Status (DIP).
type StatusRepository interface {
	// GetOrCreate devuelve el estado con ese nombre, creándolo de forma atómica si no existe.
	GetOrCreate(ctx context.Context, name string) (*entity.Status, error)
	GetByID(ctx context.Context, id string) (*entity.Status, error)
	List(ctx context.Context) ([]*entity.Status, error)
}
