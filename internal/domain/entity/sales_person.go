package entity

import "time"

// SalesPerson vendedor al que se asignan clientes.
type SalesPerson struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
