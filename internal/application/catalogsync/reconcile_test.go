package catalogsync_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-sync/internal/application/catalogsync"
	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

func records(t *testing.T, raw string) []dsync.RemoteRecord {
	t.Helper()
	var out []dsync.RemoteRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestReconcile_DosNuevosYUnExistente(t *testing.T) {
	store := newMemStore()
	rec := catalogsync.NewReconciler(store)
	ctx := context.Background()

	_, err := rec.Reconcile(ctx, records(t, `[{"nama_produk":"Pulpen","harga":"1000","kategori":"ATK","status":"bisa dijual"}]`))
	require.NoError(t, err)

	report, err := rec.Reconcile(ctx, records(t, `[
		{"nama_produk":"Pulpen","harga":"1500","kategori":"ATK","status":"tidak bisa dijual"},
		{"nama_produk":"Pensil","harga":"800","kategori":"ATK","status":"bisa dijual"},
		{"nama_produk":"Kertas","harga":"42000","kategori":"KERTAS","status":"bisa dijual"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, catalogsync.Report{Received: 3, Created: 2, Updated: 1}, report)

	assert.Equal(t, []string{"Kertas", "Pensil", "Pulpen"}, store.productNames())
	assert.Len(t, store.categories, 2)
	assert.Len(t, store.statuses, 2)

	pulpen := store.products["Pulpen"]
	assert.Equal(t, int64(1500), pulpen.Price)
	assert.Equal(t, store.categories["ATK"].ID, pulpen.CategoryID)
	assert.Equal(t, store.statuses["tidak bisa dijual"].ID, pulpen.StatusID)
	assert.Equal(t, store.categories["KERTAS"].ID, store.products["Kertas"].CategoryID)
}

func TestReconcile_PrecioInvalidoYDefectos(t *testing.T) {
	store := newMemStore()
	report, err := catalogsync.NewReconciler(store).Reconcile(context.Background(),
		records(t, `[{"nama_produk": "Widget", "harga": "abc"}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)

	w := store.products["Widget"]
	require.NotNil(t, w)
	assert.Equal(t, int64(0), w.Price)
	assert.Equal(t, store.categories["Uncategorized"].ID, w.CategoryID)
	assert.Equal(t, store.statuses["Unknown"].ID, w.StatusID)
}

func TestReconcile_RegistroSinNombreNoTieneEfecto(t *testing.T) {
	store := newMemStore()
	report, err := catalogsync.NewReconciler(store).Reconcile(context.Background(),
		records(t, `[{"harga":"100","kategori":"Nueva","status":"Nuevo"}]`))
	require.NoError(t, err)
	assert.Equal(t, catalogsync.Report{Received: 1, Skipped: 1}, report)
	assert.Empty(t, store.products)
	assert.Empty(t, store.categories)
	assert.Empty(t, store.statuses)
}

func TestReconcile_NombresRepetidosColapsanUltimaEscrituraGana(t *testing.T) {
	store := newMemStore()
	report, err := catalogsync.NewReconciler(store).Reconcile(context.Background(), records(t, `[
		{"nama_produk":"Map","harga":"100","kategori":"A"},
		{"nama_produk":"Map","harga":"200","kategori":"B"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	require.Len(t, store.products, 1)
	assert.Equal(t, int64(200), store.products["Map"].Price)
	assert.Equal(t, store.categories["B"].ID, store.products["Map"].CategoryID)
}

func TestReconcile_Idempotente(t *testing.T) {
	store := newMemStore()
	rec := catalogsync.NewReconciler(store)
	data := records(t, `[
		{"nama_produk":"A","harga":"1","kategori":"K","status":"S"},
		{"nama_produk":"B","harga":"2","kategori":"K","status":"S"}
	]`)

	first, err := rec.Reconcile(context.Background(), data)
	require.NoError(t, err)
	second, err := rec.Reconcile(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)
	assert.Len(t, store.products, 2)
	assert.Len(t, store.categories, 1)
	assert.Len(t, store.statuses, 1)
}

func TestReconcile_FalloRevierteTodoElLote(t *testing.T) {
	store := newMemStore()
	store.failProduct = "Roto"

	_, err := catalogsync.NewReconciler(store).Reconcile(context.Background(), records(t, `[
		{"nama_produk":"Bueno","harga":"1","kategori":"K"},
		{"nama_produk":"Roto","harga":"2"}
	]`))
	require.ErrorIs(t, err, errConstraint)
	assert.Empty(t, store.products)
	assert.Empty(t, store.categories)
	assert.Empty(t, store.statuses)
}
