package entity

import "time"

// Product representa un producto del catálogo. Name es la identidad natural usada por la
// sincronización (upsert por nombre). Price es un entero no negativo.
// CategoryName y StatusName solo se rellenan en lecturas con join.
type Product struct {
	ID           string
	Name         string
	Price        int64
	CategoryID   string
	StatusID     string
	CategoryName string
	StatusName   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
