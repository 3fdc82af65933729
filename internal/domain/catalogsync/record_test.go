package catalogsync_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

func decode(t *testing.T, s string) catalogsync.RemoteRecord {
	t.Helper()
	var r catalogsync.RemoteRecord
	require.NoError(t, json.Unmarshal([]byte(s), &r))
	return r
}

func TestNormalize_PrecioNoNumericoYDefectos(t *testing.T) {
	item, ok := decode(t, `{"nama_produk": "Widget", "harga": "abc"}`).Normalize()
	require.True(t, ok)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, int64(0), item.Price)
	assert.Equal(t, "Uncategorized", item.Category)
	assert.Equal(t, "Unknown", item.Status)
}

func TestNormalize_SinNombreSeOmite(t *testing.T) {
	for _, raw := range []string{
		`{"harga": "100", "kategori": "L QUEENLY"}`,
		`{"nama_produk": null}`,
		`{"nama_produk": "   "}`,
		`{"nama_produk": true}`,
	} {
		_, ok := decode(t, raw).Normalize()
		assert.False(t, ok, raw)
	}
}

func TestNormalize_PrecioStringONumero(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{`{"nama_produk": "A", "harga": "12500"}`, 12500},
		{`{"nama_produk": "A", "harga": 12500}`, 12500},
		{`{"nama_produk": "A", "harga": "0"}`, 0},
		{`{"nama_produk": "A", "harga": "-5"}`, 0},
		{`{"nama_produk": "A", "harga": -5}`, 0},
		{`{"nama_produk": "A", "harga": 12.5}`, 0},
		{`{"nama_produk": "A", "harga": "1e3"}`, 0},
		{`{"nama_produk": "A", "harga": " 10"}`, 0},
		{`{"nama_produk": "A", "harga": true}`, 0},
		{`{"nama_produk": "A"}`, 0},
		{`{"nama_produk": "A", "harga": "99999999999999999999"}`, 0},
	}
	for _, tc := range cases {
		item, ok := decode(t, tc.raw).Normalize()
		require.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, item.Price, tc.raw)
	}
}

func TestNormalize_CategoriaYEstado(t *testing.T) {
	item, ok := decode(t, `{"nama_produk": "Pulpen", "harga": "1500", "kategori": "ALAT TULIS KANTOR", "status": "bisa dijual"}`).Normalize()
	require.True(t, ok)
	assert.Equal(t, "ALAT TULIS KANTOR", item.Category)
	assert.Equal(t, "bisa dijual", item.Status)

	item, ok = decode(t, `{"nama_produk": "Pulpen", "kategori": "", "status": null}`).Normalize()
	require.True(t, ok)
	assert.Equal(t, "Uncategorized", item.Category)
	assert.Equal(t, "Unknown", item.Status)
}

func TestNormalize_NombresEnNFC(t *testing.T) {
	// "é" descompuesta (e + U+0301) colapsa con la forma compuesta
	item, ok := decode(t, `{"nama_produk": "Cafe\u0301"}`).Normalize()
	require.True(t, ok)
	assert.Equal(t, "Caf\u00e9", item.Name)
}

func TestUnmarshal_ObjetoInvalido(t *testing.T) {
	var r catalogsync.RemoteRecord
	assert.Error(t, json.Unmarshal([]byte(`"texto"`), &r))
}
