package entity

import "time"

// DefaultCategoryName categoría asignada a registros remotos sin "kategori".
const DefaultCategoryName = "Uncategorized"

// Category representa una categoría de productos. El nombre es único; la sincronización
// la crea al verla por primera vez y nunca la elimina.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
