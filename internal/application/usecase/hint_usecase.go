package usecase

import (
	"math/rand"

	"github.com/jhoicas/catalog-sync/internal/application/dto"
)

var hints = []string{
	"Tip: Use the 'Sellable Only' filter to check stock readiness.",
	"Did you know? Products are synced securely using MD5 hashing.",
	"You can update product prices directly from the Edit page.",
	"Deleting a product requires confirmation to prevent accidents.",
	"Check the Network tab to see this hint being fetched!",
	"The background sync ensures your local DB matches the server.",
}

// HintUseCase pista aleatoria de solo lectura (prueba de peticiones XHR desde la UI).
type HintUseCase struct {
	intN func(n int) int
}

// NewHintUseCase usa math/rand; intN permite fijar la secuencia en tests (nil = aleatorio).
func NewHintUseCase(intN func(n int) int) *HintUseCase {
	if intN == nil {
		intN = rand.Intn
	}
	return &HintUseCase{intN: intN}
}

// Random devuelve una pista y un timestamp de 6 dígitos.
func (uc *HintUseCase) Random() dto.HintResponse {
	return dto.HintResponse{
		Status:    "success",
		Hint:      hints[uc.intN(len(hints))],
		Timestamp: 100000 + uc.intN(900000),
	}
}
