package entity

import "time"

// Brand marca de productos.
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Product producto del inventario. Quantity es el stock restante (nunca negativo).
type Product struct {
	ID          string
	BrandID     string
	BrandName   string
	Name        string
	ModelNumber string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
