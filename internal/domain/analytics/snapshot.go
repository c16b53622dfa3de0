// Package analytics contiene el motor de agregación del back-office: funciones puras
// sobre instantáneas inmutables de clientes, vendedores, productos y ventas.
//
// Ninguna función hace I/O ni devuelve error; los campos opcionales ausentes se
// tratan como cero o con etiquetas de reemplazo.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

const dayLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// Snapshot conjunto de datos ya cargados sobre el que se calcula una pasada.
type Snapshot struct {
	Customers    []entity.Customer
	SalesPersons []entity.SalesPerson
	Products     []entity.Product
	Sales        []entity.SaleEntry
}

// Visible aplica la política de visibilidad a clientes y vendedores.
// Productos y ventas de inventario no tienen vendedor y no se filtran.
func (s Snapshot) Visible(v Visibility) Snapshot {
	customers, people := v.Apply(s.Customers, s.SalesPersons)
	return Snapshot{
		Customers:    customers,
		SalesPersons: people,
		Products:     s.Products,
		Sales:        s.Sales,
	}
}

// DayKey devuelve la clave YYYY-MM-DD de un campo de fecha (sin hora).
// No convierte de zona: la fecha guardada es el día calendario.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// localDayKey clave de día para marcas de tiempo, en la zona de referencia.
func localDayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}

// startOfDay medianoche del día calendario de t en su propia zona.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// percentString porcentaje con un decimal, redondeo half away from zero. "0.0" si den = 0.
func percentString(num, den int) string {
	if den == 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(num)).Mul(hundred).Div(decimal.NewFromInt(int64(den))).StringFixed(1)
}

// percentValue igual que percentString pero numérico y sin redondear.
func percentValue(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(num)).Mul(hundred).Div(decimal.NewFromInt(int64(den))).InexactFloat64()
}

// divOrZero a / n, o cero si n = 0.
func divOrZero(a decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return a.Div(decimal.NewFromInt(int64(n)))
}
