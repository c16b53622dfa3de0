package dto

import "time"

// SalesPersonRequest entrada para crear o renombrar un vendedor.
type SalesPersonRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// SalesPersonResponse salida de un vendedor.
type SalesPersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
