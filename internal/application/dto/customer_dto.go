package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Mobile        string `json:"mobile" validate:"required,min=5,max=30"`
	Location      string `json:"location" validate:"omitempty,max=200"`
	SalesPersonID string `json:"salesperson_id" validate:"required"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (campos opcionales).
type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Mobile        *string `json:"mobile" validate:"omitempty,min=5,max=30"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	SalesPersonID *string `json:"salesperson_id" validate:"omitempty,min=1"`
}

// CustomerListRequest filtros del listado.
type CustomerListRequest struct {
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset        int    `query:"offset" validate:"omitempty,min=0"`
	Search        string `query:"search" validate:"omitempty,max=100"`
	SalesPersonID string `query:"salesperson_id" validate:"omitempty,max=64"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Mobile          string             `json:"mobile"`
	Location        string             `json:"location"`
	SalesPersonID   string             `json:"salesperson_id"`
	SalesPersonName string             `json:"salesperson_name"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	FollowUps       []FollowUpResponse `json:"follow_ups,omitempty"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateFollowUpRequest entrada para registrar un seguimiento.
type CreateFollowUpRequest struct {
	Date           string           `json:"date" validate:"required,datetime=2006-01-02"`
	Status         string           `json:"status" validate:"required,max=50"`
	SalesAmount    *decimal.Decimal `json:"sales_amount"`
	Remarks        string           `json:"remarks" validate:"omitempty,max=1000"`
	AmountReceived bool             `json:"amount_received"`
}

// UpdateFollowUpRequest entrada para actualizar un seguimiento.
type UpdateFollowUpRequest struct {
	Date           *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status         *string          `json:"status" validate:"omitempty,min=1,max=50"`
	SalesAmount    *decimal.Decimal `json:"sales_amount"`
	Remarks        *string          `json:"remarks" validate:"omitempty,max=1000"`
	AmountReceived *bool            `json:"amount_received"`
}

// FollowUpResponse salida de un seguimiento.
type FollowUpResponse struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customer_id"`
	Date           string           `json:"date"`
	Status         string           `json:"status"`
	SalesAmount    *decimal.Decimal `json:"sales_amount,omitempty"`
	Remarks        string           `json:"remarks"`
	AmountReceived bool             `json:"amount_received"`
	CreatedAt      time.Time        `json:"created_at"`
}
