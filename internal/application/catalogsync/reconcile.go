package catalogsync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
	"github.com/jhoicas/catalog-sync/internal/domain/entity"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

// Report contadores de una reconciliación.
type Report struct {
	Received int
	Created  int
	Updated  int
	Skipped  int
}

// Reconciler fusiona los registros remotos en el almacenamiento local.
type Reconciler struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewReconciler construye el motor de reconciliación.
func NewReconciler(txRunner TxRunner) *Reconciler {
	return &Reconciler{txRunner: txRunner, now: time.Now}
}

// Reconcile aplica todos los registros en una sola transacción: o entran todos los efectos
// o ninguno. Registros sin nombre se omiten sin efecto. Categorías y estados se resuelven
// (get-or-create) antes de escribir el producto.
func (r *Reconciler) Reconcile(ctx context.Context, records []dsync.RemoteRecord) (Report, error) {
	report := Report{Received: len(records)}

	err := r.txRunner.RunSync(ctx, func(
		categoryRepo repository.CategoryRepository,
		statusRepo repository.StatusRepository,
		productRepo repository.ProductRepository,
	) error {
		categories := make(map[string]string)
		statuses := make(map[string]string)

		for i, rec := range records {
			item, ok := rec.Normalize()
			if !ok {
				report.Skipped++
				continue
			}

			categoryID, err := resolve(ctx, categories, item.Category, func(ctx context.Context, name string) (string, error) {
				c, err := categoryRepo.GetOrCreate(ctx, name)
				if err != nil {
					return "", err
				}
				return c.ID, nil
			})
			if err != nil {
				return fmt.Errorf("record %d: category %q: %w", i, item.Category, err)
			}
			statusID, err := resolve(ctx, statuses, item.Status, func(ctx context.Context, name string) (string, error) {
				s, err := statusRepo.GetOrCreate(ctx, name)
				if err != nil {
					return "", err
				}
				return s.ID, nil
			})
			if err != nil {
				return fmt.Errorf("record %d: status %q: %w", i, item.Status, err)
			}

			now := r.now()
			created, err := productRepo.UpsertByName(ctx, &entity.Product{
				ID:         uuid.New().String(),
				Name:       item.Name,
				Price:      item.Price,
				CategoryID: categoryID,
				StatusID:   statusID,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			if err != nil {
				return fmt.Errorf("record %d: product %q: %w", i, item.Name, err)
			}
			if created {
				report.Created++
			} else {
				report.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return Report{Received: len(records)}, err
	}
	return report, nil
}

// resolve memoiza el ID por nombre dentro de la transacción.
func resolve(ctx context.Context, cache map[string]string, name string, getOrCreate func(context.Context, string) (string, error)) (string, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	id, err := getOrCreate(ctx, name)
	if err != nil {
		return "", err
	}
	cache[name] = id
	return id, nil
}
