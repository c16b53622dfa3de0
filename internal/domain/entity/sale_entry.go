package entity

import "time"

// SaleEntry venta de mostrador contra un producto. CustomerName es texto libre,
// no referencia a Customer.
type SaleEntry struct {
	ID           string
	ProductID    string
	SaleDate     time.Time
	CustomerName string
	QuantitySold int
	BillNumber   *string
	CreatedAt    time.Time
}
