package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de seguimiento con significado para la analítica; el resto son intermedios.
const (
	FollowUpStatusCompleted = "Sales completed"
	FollowUpStatusRejected  = "Sales rejected"
)

// Customer cliente del embudo comercial, asignado a un vendedor.
type Customer struct {
	ID              string
	Name            string
	Mobile          string
	Location        string
	SalesPersonID   string
	SalesPersonName string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	FollowUps       []FollowUp // ordenados por fecha
}

// FollowUp interacción fechada (granularidad día) con un cliente.
type FollowUp struct {
	ID             string
	CustomerID     string
	Date           time.Time
	Status         string
	SalesAmount    decimal.NullDecimal // solo aplica a ventas completadas
	Remarks        string
	AmountReceived bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCompleted indica estado "Sales completed".
func (f FollowUp) IsCompleted() bool { return f.Status == FollowUpStatusCompleted }

// IsRejected indica estado "Sales rejected".
func (f FollowUp) IsRejected() bool { return f.Status == FollowUpStatusRejected }

// Revenue devuelve el monto si la venta está completada y tiene valor distinto de cero.
func (f FollowUp) Revenue() (decimal.Decimal, bool) {
	if !f.IsCompleted() || !f.SalesAmount.Valid || f.SalesAmount.Decimal.IsZero() {
		return decimal.Zero, false
	}
	return f.SalesAmount.Decimal, true
}
