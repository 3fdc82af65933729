package dto

import "time"

// SellableFilter valor del query param status que activa el filtro de productos vendibles.
const SellableFilter = "bisa_dijual"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Price      *int64 `json:"price" validate:"required,min=0"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	StatusID   string `json:"status_id" validate:"required,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Price      *int64  `json:"price" validate:"omitempty,min=0"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
	StatusID   *string `json:"status_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto con nombres de categoría y estado.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	StatusID     string    `json:"status_id"`
	StatusName   string    `json:"status_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items            []ProductResponse `json:"items"`
	Page             PageResponse      `json:"page"`
	ShowOnlySellable bool              `json:"show_only_sellable"`
}

// NamedResponse categoría o estado (opciones de formulario).
type NamedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HintResponse respuesta del endpoint de pistas.
type HintResponse struct {
	Status    string `json:"status"`
	Hint      string `json:"hint"`
	Timestamp int    `json:"timestamp"`
}
