package catalogsync_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-sync/internal/application/catalogsync"
	"github.com/jhoicas/catalog-sync/internal/domain/entity"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

// memStore almacenamiento en memoria con semántica transaccional: RunSync trabaja sobre
// una copia y solo la publica si fn no devuelve error.
type memStore struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	statuses   map[string]*entity.Status
	products   map[string]*entity.Product

	// failProduct hace fallar el upsert de ese nombre (simula violación de constraint)
	failProduct string
}

var _ catalogsync.TxRunner = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]*entity.Category{},
		statuses:   map[string]*entity.Status{},
		products:   map[string]*entity.Product{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.failProduct = s.failProduct
	for k, v := range s.categories {
		cp := *v
		c.categories[k] = &cp
	}
	for k, v := range s.statuses {
		cp := *v
		c.statuses[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	return c
}

func (s *memStore) RunSync(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := s.clone()
	if err := fn(memCategories{tx}, memStatuses{tx}, memProducts{tx}); err != nil {
		return err
	}
	s.categories, s.statuses, s.products = tx.categories, tx.statuses, tx.products
	return nil
}

func (s *memStore) productNames() []string {
	var out []string
	for k := range s.products {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type memCategories struct{ s *memStore }

func (r memCategories) GetOrCreate(_ context.Context, name string) (*entity.Category, error) {
	if c, ok := r.s.categories[name]; ok {
		return c, nil
	}
	c := &entity.Category{ID: uuid.New().String(), Name: name}
	r.s.categories[name] = c
	return c, nil
}

func (r memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r memCategories) List(context.Context) ([]*entity.Category, error) { return nil, nil }

type memStatuses struct{ s *memStore }

func (r memStatuses) GetOrCreate(_ context.Context, name string) (*entity.Status, error) {
	if st, ok := r.s.statuses[name]; ok {
		return st, nil
	}
	st := &entity.Status{ID: uuid.New().String(), Name: name}
	r.s.statuses[name] = st
	return st, nil
}

func (r memStatuses) GetByID(_ context.Context, id string) (*entity.Status, error) {
	for _, st := range r.s.statuses {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, nil
}

func (r memStatuses) List(context.Context) ([]*entity.Status, error) { return nil, nil }

type memProducts struct{ s *memStore }

var errConstraint = errors.New("violación de constraint simulada")

func (r memProducts) UpsertByName(_ context.Context, p *entity.Product) (bool, error) {
	if p.Name == r.s.failProduct {
		return false, errConstraint
	}
	if existing, ok := r.s.products[p.Name]; ok {
		existing.Price = p.Price
		existing.CategoryID = p.CategoryID
		existing.StatusID = p.StatusID
		existing.UpdatedAt = p.UpdatedAt
		return false, nil
	}
	cp := *p
	r.s.products[p.Name] = &cp
	return true, nil
}

func (r memProducts) Create(context.Context, *entity.Product) error { return nil }
func (r memProducts) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r memProducts) Update(context.Context, *entity.Product) error { return nil }
func (r memProducts) List(context.Context, repository.ProductFilter, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r memProducts) Delete(context.Context, string) error { return nil }
