package catalogsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

// Errores del job de sincronización. Ninguno deja cambios en el almacenamiento local.
var (
	ErrCandidatesExhausted = errors.New("sync: todos los candidatos fallaron")
	ErrTransport           = errors.New("sync: fallo de transporte")
	ErrReconcile           = errors.New("sync: reconciliación revertida")
)

// Config parámetros fijos del contrato con la API remota.
type Config struct {
	PasswordPrefix string
	Scheme         dsync.IdentityScheme
	Location       *time.Location // zona con la que se derivan credencial e identidades
}

// Result resumen de una ejecución exitosa.
type Result struct {
	RunID    string
	Username string // candidato que tuvo éxito
	Attempts int
	Report   Report
}

// SyncUseCase job de sincronización: deriva la credencial, prueba los candidatos en orden
// y entrega la lista del primer éxito al Reconciler. Estrictamente secuencial.
type SyncUseCase struct {
	source     ProductSource
	reconciler *Reconciler
	cfg        Config
	now        func() time.Time
	log        zerolog.Logger
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(source ProductSource, reconciler *Reconciler, cfg Config, log zerolog.Logger) *SyncUseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Scheme == (dsync.IdentityScheme{}) {
		cfg.Scheme = dsync.DefaultIdentityScheme
	}
	return &SyncUseCase{
		source:     source,
		reconciler: reconciler,
		cfg:        cfg,
		now:        time.Now,
		log:        log,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SyncUseCase) WithClock(now func() time.Time) *SyncUseCase {
	uc.now = now
	return uc
}

// Run ejecuta una sincronización para username ("auto" o un usuario explícito).
// Termina en exactamente uno de: primer éxito reconciliado, candidatos agotados con solo
// fallos suaves (ErrCandidatesExhausted) o fallo de transporte (ErrTransport, sin probar
// los candidatos restantes).
func (uc *SyncUseCase) Run(ctx context.Context, username string) (*Result, error) {
	runID := uuid.New().String()
	log := uc.log.With().Str("run_id", runID).Logger()

	now := uc.now().In(uc.cfg.Location)
	cred := dsync.DeriveCredential(uc.cfg.PasswordPrefix, now)
	candidates := uc.cfg.Scheme.Candidates(username, now)

	log.Info().
		Str("username", username).
		Str("password_raw", cred.Raw).
		Strs("candidates", candidates).
		Msg("iniciando sincronización")

	for i, candidate := range candidates {
		attempt := i + 1
		alog := log.With().Str("candidate", candidate).Int("attempt", attempt).Logger()
		alog.Info().Msg("intentando candidato")

		res, err := uc.source.FetchProducts(ctx, candidate, cred.Digest)
		if err != nil {
			alog.Error().Err(err).Msg("error de conexión; se abortan los candidatos restantes")
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		if res.Outcome != OutcomeSuccess {
			alog.Warn().
				Int("status_code", res.StatusCode).
				Str("outcome", res.Outcome.String()).
				Str("message", res.Message).
				Msg("intento fallido")
			continue
		}

		alog.Info().Int("records", len(res.Records)).Msg("login exitoso; sincronizando base de datos")
		report, err := uc.reconciler.Reconcile(ctx, res.Records)
		if err != nil {
			alog.Error().Err(err).Msg("reconciliación fallida; transacción revertida")
			return nil, fmt.Errorf("%w: %w", ErrReconcile, err)
		}
		log.Info().
			Int("received", report.Received).
			Int("created", report.Created).
			Int("updated", report.Updated).
			Int("skipped", report.Skipped).
			Msg("sincronización completa")
		return &Result{RunID: runID, Username: candidate, Attempts: attempt, Report: report}, nil
	}

	log.Error().Int("attempts", len(candidates)).Msg("todos los intentos fallaron")
	return nil, ErrCandidatesExhausted
}
