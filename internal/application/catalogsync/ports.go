package catalogsync

import (
	"context"

	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
	"github.com/jhoicas/catalog-sync/internal/domain/repository"
)

// Outcome resultado de un intento contra la API remota que no fue un fallo de transporte.
type Outcome int

const (
	// OutcomeSuccess HTTP 200, JSON válido, error == 0 y campo data presente.
	OutcomeSuccess Outcome = iota
	// OutcomeSoftFailure el intento falló pero los demás candidatos siguen siendo válidos.
	OutcomeSoftFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSoftFailure:
		return "soft_failure"
	default:
		return "unknown"
	}
}

// AttemptResult respuesta clasificada de un intento.
type AttemptResult struct {
	Outcome    Outcome
	StatusCode int
	Message    string // "ket" remoto o motivo local del fallo
	Records    []dsync.RemoteRecord
}

// ProductSource puerto de salida hacia la API de inventario externa.
// Un error no nil es un fallo de transporte (red, DNS, timeout): aborta el resto de candidatos.
type ProductSource interface {
	FetchProducts(ctx context.Context, username, password string) (*AttemptResult, error)
}

// TxRunner ejecuta fn dentro de una única transacción con repositorios atados a ella.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	RunSync(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		statusRepo repository.StatusRepository,
		productRepo repository.ProductRepository,
	) error) error
}
