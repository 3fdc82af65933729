package usecase

import (
	"context"

	"github.com/jhoicas/catalog-sync/internal/application/dto"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

// ReferenceUseCase listas de categorías y estados para los formularios de producto.
type ReferenceUseCase struct {
	categories repository.CategoryRepository
	statuses   repository.StatusRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(categories repository.CategoryRepository, statuses repository.StatusRepository) *ReferenceUseCase {
	return &ReferenceUseCase{categories: categories, statuses: statuses}
}

func (uc *ReferenceUseCase) Categories(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NamedResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (uc *ReferenceUseCase) Statuses(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NamedResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
