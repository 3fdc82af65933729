package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalog-sync/internal/application/catalogsync"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

// Ensure TxRunner implements catalogsync.TxRunner.
var _ catalogsync.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSync inicia una transacción, ejecuta fn con repos de catálogo atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) RunSync(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCategoryRepository(tx), NewStatusRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
