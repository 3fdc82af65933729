package catalogsync_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

func at(hour int) time.Time {
	return time.Date(2024, 3, 5, hour, 30, 0, 0, time.UTC)
}

func TestCandidates_AutoHoraIntermedia(t *testing.T) {
	got := catalogsync.DefaultIdentityScheme.Candidates("auto", at(14))
	assert.Equal(t, []string{
		"tesprogrammer050324C14",
		"tesprogrammer050324C13",
		"tesprogrammer050324C15",
	}, got)
}

func TestCandidates_AutoMedianocheDescartaHoraNegativa(t *testing.T) {
	got := catalogsync.DefaultIdentityScheme.Candidates("auto", at(0))
	assert.Equal(t, []string{"tesprogrammer050324C00", "tesprogrammer050324C01"}, got)
}

func TestCandidates_AutoUltimaHoraDescarta24(t *testing.T) {
	got := catalogsync.DefaultIdentityScheme.Candidates("auto", at(23))
	assert.Equal(t, []string{"tesprogrammer050324C23", "tesprogrammer050324C22"}, got)
}

func TestCandidates_AutoTodasLasHoras(t *testing.T) {
	for h := 0; h < 24; h++ {
		got := catalogsync.DefaultIdentityScheme.Candidates("auto", at(h))
		want := 3
		if h == 0 || h == 23 {
			want = 2
		}
		assert.Len(t, got, want, "hora %d", h)
		assert.Equal(t, catalogsync.Dedupe(got), got)
	}
}

func TestCandidates_UsuarioLiteral(t *testing.T) {
	got := catalogsync.DefaultIdentityScheme.Candidates("alice", at(9))
	assert.Equal(t, []string{"alice"}, got)
}

func TestCandidates_UsuarioConMarcadorVaPrimero(t *testing.T) {
	got := catalogsync.DefaultIdentityScheme.Candidates("tesprogrammer050324C09", at(9))
	// el literal coincide con la variante de la hora actual y no se repite
	assert.Equal(t, []string{
		"tesprogrammer050324C09",
		"tesprogrammer050324C08",
		"tesprogrammer050324C10",
	}, got)
}

func TestCandidates_EsquemaPersonalizado(t *testing.T) {
	s := catalogsync.IdentityScheme{Prefix: "svc", Separator: "-", Marker: "svc"}
	got := s.Candidates("auto", at(7))
	assert.Equal(t, []string{"svc050324-07", "svc050324-06", "svc050324-08"}, got)
}

func TestDedupe_ConservaPrimeraAparicion(t *testing.T) {
	got := catalogsync.Dedupe([]string{"b", "a", "b", "c", "a", "c"})
	assert.Equal(t, []string{"b", "a", "c"}, got)
	assert.Empty(t, catalogsync.Dedupe(nil))
}
