// Package catalogsync: reglas puras del job de sincronización con la API de inventario externa
// (derivación de credencial, generación de identidades candidatas y normalización de registros).
package catalogsync

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// DefaultPasswordPrefix prefijo fijo de la credencial diaria.
const DefaultPasswordPrefix = "bisacoding"

// Credential contraseña del día: Raw es la cadena en claro y Digest el MD5 hexadecimal
// que viaja en el campo "password".
type Credential struct {
	Raw    string
	Digest string
}

// DeriveCredential calcula la credencial del día para now: "<prefix>-DD-MM-YY" y su MD5.
// Determinista por día calendario (en la zona de now).
//
// MD5 sin sal se mantiene solo por compatibilidad con el servidor remoto; no es una
// frontera de seguridad y no debe reutilizarse en otras superficies de autenticación.
func DeriveCredential(prefix string, now time.Time) Credential {
	if prefix == "" {
		prefix = DefaultPasswordPrefix
	}
	raw := prefix + "-" + now.Format("02-01-06")
	sum := md5.Sum([]byte(raw))
	return Credential{Raw: raw, Digest: hex.EncodeToString(sum[:])}
}
