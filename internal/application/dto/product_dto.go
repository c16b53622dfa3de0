package dto

import "time"

// BrandRequest entrada para crear una marca.
type BrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	BrandID     string `json:"brand_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ModelNumber string `json:"model_number" validate:"omitempty,max=100"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	BrandID     *string `json:"brand_id" validate:"omitempty,min=1"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	ModelNumber *string `json:"model_number" validate:"omitempty,max=100"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
}

// ProductListRequest filtros del listado (mismos que el dashboard de inventario).
type ProductListRequest struct {
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset  int    `query:"offset" validate:"omitempty,min=0"`
	Search  string `query:"search" validate:"omitempty,max=100"`
	BrandID string `query:"brand_id" validate:"omitempty,max=64"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	BrandName   string    `json:"brand_name"`
	Name        string    `json:"name"`
	ModelNumber string    `json:"model_number"`
	Quantity    int       `json:"quantity"`
	StockStatus string    `json:"stock_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
