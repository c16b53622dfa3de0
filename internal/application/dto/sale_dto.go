package dto

import "time"

// CreateSaleRequest entrada para registrar una venta de inventario.
type CreateSaleRequest struct {
	ProductID    string  `json:"product_id" validate:"required"`
	SaleDate     string  `json:"sale_date" validate:"required,datetime=2006-01-02"`
	CustomerName string  `json:"customer_name" validate:"required,min=1,max=200"`
	QuantitySold int     `json:"quantity_sold" validate:"required,min=1"`
	BillNumber   *string `json:"bill_number" validate:"omitempty,max=60"`
}

// SaleListRequest rango de fechas y paginación.
type SaleListRequest struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	SaleDate     string    `json:"sale_date"`
	CustomerName string    `json:"customer_name"`
	QuantitySold int       `json:"quantity_sold"`
	BillNumber   *string   `json:"bill_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
