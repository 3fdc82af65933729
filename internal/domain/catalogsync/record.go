package catalogsync

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalog-sync/internal/domain/entity"
)

// Campos del registro remoto.
const (
	fieldName     = "nama_produk"
	fieldPrice    = "harga"
	fieldCategory = "kategori"
	fieldStatus   = "status"
)

// RemoteRecord registro de producto tal como llega de la API: todos los campos son
// opcionales y de tipo laxo (string o número). Cada campo guarda el texto del valor JSON;
// nil significa ausente o null.
type RemoteRecord struct {
	Name     *string
	Price    *string
	Category *string
	Status   *string
}

// UnmarshalJSON acepta un objeto con campos arbitrarios. Strings y números se conservan
// como texto; cualquier otro tipo (bool, objeto, array, null) cuenta como ausente.
func (r *RemoteRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Name = scalarText(raw[fieldName])
	r.Price = scalarText(raw[fieldPrice])
	r.Category = scalarText(raw[fieldCategory])
	r.Status = scalarText(raw[fieldStatus])
	return nil
}

func scalarText(v json.RawMessage) *string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return nil
	}
	switch {
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil
		}
		return &s
	case v[0] == '-' || (v[0] >= '0' && v[0] <= '9'):
		s := string(v)
		return &s
	default:
		return nil
	}
}

// Item registro ya validado y con valores por defecto aplicados, listo para reconciliar.
type Item struct {
	Name     string
	Price    int64
	Category string
	Status   string
}

// Normalize aplica las reglas de defecto por campo. ok=false indica que el registro debe
// omitirse por completo (sin nombre de producto).
//   - precio: solo dígitos decimales → entero; cualquier otra cosa (o ausente) → 0
//   - categoría ausente o vacía → "Uncategorized"; estado ausente o vacío → "Unknown"
//   - los nombres se normalizan a NFC para que variantes Unicode equivalentes colapsen
func (r RemoteRecord) Normalize() (Item, bool) {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return Item{}, false
	}
	return Item{
		Name:     norm.NFC.String(*r.Name),
		Price:    ParsePrice(r.Price),
		Category: nameOrDefault(r.Category, entity.DefaultCategoryName),
		Status:   nameOrDefault(r.Status, entity.DefaultStatusName),
	}, true
}

// ParsePrice convierte el precio remoto; política laxa: nunca rechaza, usa 0.
func ParsePrice(p *string) int64 {
	if p == nil || !isDigits(*p) {
		return 0
	}
	n, err := strconv.ParseInt(*p, 10, 64)
	if err != nil {
		// desborde de int64
		return 0
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func nameOrDefault(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return norm.NFC.String(*v)
}
