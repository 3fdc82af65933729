package entity

import "time"

const (
	// DefaultStatusName estado asignado a registros remotos sin "status".
	DefaultStatusName = "Unknown"
	// SellableStatusName estado que el listado usa para el filtro de productos vendibles.
	SellableStatusName = "bisa dijual"
)

// Status representa el estado de venta de un producto (mismo ciclo de vida que Category).
type Status struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
