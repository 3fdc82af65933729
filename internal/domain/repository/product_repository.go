package repository

import (
	"context"

	"github.com/jhoicas/catalog-sync/internal/domain/entity"
)

// ProductFilter criterios de listado. StatusName vacío = sin filtro; se compara sin
// distinguir mayúsculas/minúsculas.
type ProductFilter struct {
	StatusName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// UpsertByName inserta el producto o, si ya existe uno con el mismo nombre, actualiza
	// precio, categoría y estado. Devuelve true si el registro fue creado.
	UpsertByName(ctx context.Context, product *entity.Product) (bool, error)
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id string) error
}
