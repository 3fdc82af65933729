package catalogsync

import (
	"fmt"
	"strings"
	"time"
)

// AutoUsername valor centinela: no hay usuario explícito, solo identidades generadas.
const AutoUsername = "auto"

// IdentityScheme formato de la identidad "de máquina" derivada de la hora:
// <Prefix><DDMMYY><Separator><HH>. Marker activa la generación cuando aparece en el usuario.
type IdentityScheme struct {
	Prefix    string
	Separator string
	Marker    string
}

// DefaultIdentityScheme esquema usado por el servidor de pruebas.
var DefaultIdentityScheme = IdentityScheme{
	Prefix:    "tesprogrammer",
	Separator: "C",
	Marker:    "tesprogrammer",
}

// Candidates genera las identidades a intentar, en orden y sin repetidos.
// Si input no es "auto" va primero tal cual. Si es "auto" o contiene el marcador se añaden
// las identidades de la hora actual, la anterior y la siguiente (tolerancia de ±1 h de
// desfase de reloj con el servidor); horas fuera de [0,23] se descartan.
func (s IdentityScheme) Candidates(input string, now time.Time) []string {
	var out []string
	if input != AutoUsername {
		out = append(out, input)
	}
	if input == AutoUsername || (s.Marker != "" && strings.Contains(input, s.Marker)) {
		datePart := now.Format("020106")
		h := now.Hour()
		for _, hour := range []int{h, h - 1, h + 1} {
			if hour < 0 || hour > 23 {
				continue
			}
			out = append(out, fmt.Sprintf("%s%s%s%02d", s.Prefix, datePart, s.Separator, hour))
		}
	}
	return Dedupe(out)
}

// Dedupe elimina repetidos conservando el orden de primera aparición.
func Dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
