package catalogsync_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

// Vectores calculados con md5sum sobre la cadena en claro.
func TestDeriveCredential_VectorExacto(t *testing.T) {
	cases := []struct {
		now    time.Time
		raw    string
		digest string
	}{
		{time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), "bisacoding-05-03-24", "949f077867743bd8835bd6101790b71f"},
		{time.Date(2009, 12, 31, 23, 59, 0, 0, time.UTC), "bisacoding-31-12-09", "cda1fb7eef12e622de4d3adf176d09a7"},
	}
	for _, tc := range cases {
		c := catalogsync.DeriveCredential("bisacoding", tc.now)
		assert.Equal(t, tc.raw, c.Raw)
		assert.Equal(t, tc.digest, c.Digest)
	}
}

func TestDeriveCredential_EstableDuranteElDia(t *testing.T) {
	morning := time.Date(2025, 1, 7, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 1, 7, 23, 59, 59, 0, time.UTC)
	next := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, catalogsync.DeriveCredential("", morning), catalogsync.DeriveCredential("", night))
	assert.NotEqual(t, catalogsync.DeriveCredential("", night).Digest, catalogsync.DeriveCredential("", next).Digest)
}

func TestDeriveCredential_FormatoParaTodoElAnio(t *testing.T) {
	format := regexp.MustCompile(`^bisacoding-\d{2}-\d{2}-\d{2}$`)
	hexDigest := regexp.MustCompile(`^[0-9a-f]{32}$`)

	day := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		c := catalogsync.DeriveCredential("bisacoding", day)
		assert.Regexp(t, format, c.Raw)
		assert.Regexp(t, hexDigest, c.Digest)
		day = day.AddDate(0, 0, 1)
	}
}
