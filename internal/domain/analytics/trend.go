package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Period ventana de la serie temporal.
type Period string

const (
	PeriodWeek  Period = "week"  // últimos 7 días hasta hoy
	PeriodMonth Period = "month" // mes calendario actual completo
	PeriodAll   Period = "all"   // desde AllTimeStart hasta hoy
)

// SalesType qué fuente de ventas se reporta.
type SalesType string

const (
	SalesTypeInventory SalesType = "inventory"
	SalesTypeFollowUp  SalesType = "follow-up"
	SalesTypeAll       SalesType = "all"
)

// trendWindow días que se devuelven y que usa el cálculo de crecimiento.
const trendWindow = 7

// AllTimeStart inicio fijo del período "all".
var AllTimeStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParsePeriod valida el período; vacío equivale a week.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodWeek, nil
	case PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s), nil
	}
	return "", domain.ErrInvalidPeriod
}

// ParseSalesType valida el tipo de venta; vacío equivale a all.
func ParseSalesType(s string) (SalesType, error) {
	switch SalesType(s) {
	case "":
		return SalesTypeAll, nil
	case SalesTypeInventory, SalesTypeFollowUp, SalesTypeAll:
		return SalesType(s), nil
	}
	return "", domain.ErrInvalidSalesType
}

// Interval resuelve el período a [inicio, fin] en días calendario de la zona de now.
func (p Period) Interval(now time.Time) (start, end time.Time) {
	today := startOfDay(now)
	switch p {
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodAll:
		start = time.Date(AllTimeStart.Year(), AllTimeStart.Month(), AllTimeStart.Day(), 0, 0, 0, 0, now.Location())
		end = today
	default:
		start = today.AddDate(0, 0, -(trendWindow - 1))
		end = today
	}
	return start, end
}

// TrendRequest parámetros de la serie. Products es el conjunto ya filtrado (ProductFilter).
type TrendRequest struct {
	Period        Period
	SalesPersonID string
	SalesType     SalesType
	Products      []entity.Product
	Now           time.Time
}

// TrendPoint un día de la serie.
type TrendPoint struct {
	Date            string
	Label           string // "Jan 2"
	Sales           int
	Revenue         decimal.Decimal
	InventoryCount  int // unidades vendidas de productos filtrados
	FollowUpCount   int // seguimientos completados del día
	FollowUpRevenue decimal.Decimal
	NewCustomers    int
}

// Trend serie recortada a los últimos 7 días; los totales cubren todo el intervalo.
type Trend struct {
	Points            []TrendPoint
	TotalSales        int
	TotalRevenue      decimal.Decimal
	TotalNewCustomers int
	GrowthTrend       float64 // % media últimos 7 vs 7 anteriores
}

// ComputeTrend construye un punto por día del intervalo del período.
func ComputeTrend(customers []entity.Customer, sales []entity.SaleEntry, req TrendRequest) Trend {
	loc := req.Now.Location()
	productIDs := productIDSet(req.Products)

	inventoryByDay := make(map[string]int)
	for _, s := range sales {
		if _, ok := productIDs[s.ProductID]; ok {
			inventoryByDay[DayKey(s.SaleDate)] += s.QuantitySold
		}
	}

	followUpsByDay := make(map[string]int)
	revenueByDay := make(map[string]decimal.Decimal)
	newCustomersByDay := make(map[string]int)
	for _, c := range customers {
		if req.SalesPersonID != "" && c.SalesPersonID != req.SalesPersonID {
			continue
		}
		newCustomersByDay[localDayKey(c.CreatedAt, loc)]++
		for _, f := range c.FollowUps {
			if !f.IsCompleted() {
				continue
			}
			key := DayKey(f.Date)
			followUpsByDay[key]++
			if amount, ok := f.Revenue(); ok {
				revenueByDay[key] = revenueByDay[key].Add(amount)
			}
		}
	}

	start, end := req.Period.Interval(req.Now)
	var series []TrendPoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		pt := TrendPoint{
			Date:            key,
			Label:           day.Format("Jan 2"),
			InventoryCount:  inventoryByDay[key],
			FollowUpCount:   followUpsByDay[key],
			FollowUpRevenue: revenueByDay[key],
			NewCustomers:    newCustomersByDay[key],
		}
		switch req.SalesType {
		case SalesTypeInventory:
			pt.Sales, pt.Revenue = pt.InventoryCount, decimal.Zero
		case SalesTypeFollowUp:
			pt.Sales, pt.Revenue = pt.FollowUpCount, pt.FollowUpRevenue
		default:
			pt.Sales, pt.Revenue = pt.InventoryCount+pt.FollowUpCount, pt.FollowUpRevenue
		}
		series = append(series, pt)
	}

	t := Trend{TotalRevenue: decimal.Zero}
	for _, pt := range series {
		t.TotalSales += pt.Sales
		t.TotalRevenue = t.TotalRevenue.Add(pt.Revenue)
		t.TotalNewCustomers += pt.NewCustomers
	}
	t.GrowthTrend = growth(series)

	if len(series) > trendWindow {
		series = series[len(series)-trendWindow:]
	}
	t.Points = make([]TrendPoint, len(series))
	copy(t.Points, series)
	return t
}

// growth compara la media de ventas de los últimos 7 días con la de los 7 anteriores.
func growth(series []TrendPoint) float64 {
	n := len(series)
	lastFrom := max(0, n-trendWindow)
	prevFrom := max(0, n-2*trendWindow)

	last := meanSales(series[lastFrom:])
	prev := meanSales(series[prevFrom:lastFrom])
	if prev.IsZero() {
		return 0
	}
	return last.Sub(prev).Div(prev).Mul(hundred).Round(1).InexactFloat64()
}

func meanSales(points []TrendPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	total := 0
	for _, p := range points {
		total += p.Sales
	}
	return decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(len(points))))
}
