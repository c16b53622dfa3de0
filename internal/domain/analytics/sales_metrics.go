package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SalesMetrics resumen del embudo de seguimientos.
type SalesMetrics struct {
	TotalCustomers  int
	CompletedSales  int // clientes con al menos un seguimiento completado
	RejectedSales   int // clientes con al menos un seguimiento rechazado
	PendingSales    int // clientes sin completados ni rechazados (incluye sin seguimientos)
	TodayFollowUps  int // clientes con algún seguimiento fechado hoy
	TotalRevenue    decimal.Decimal
	RevenueDeals    int // seguimientos completados con monto
	AverageDealSize decimal.Decimal
	ConversionRate  string
	RejectionRate   string
}

// ComputeSalesMetrics agrega sobre la lista de clientes ya filtrada. now fija el "hoy" local.
func ComputeSalesMetrics(customers []entity.Customer, now time.Time) SalesMetrics {
	today := now.Format(dayLayout)
	m := SalesMetrics{TotalCustomers: len(customers), TotalRevenue: decimal.Zero}

	for _, c := range customers {
		completed, rejected, hasToday := false, false, false
		for _, f := range c.FollowUps {
			if f.IsCompleted() {
				completed = true
			}
			if f.IsRejected() {
				rejected = true
			}
			if amount, ok := f.Revenue(); ok {
				m.TotalRevenue = m.TotalRevenue.Add(amount)
				m.RevenueDeals++
			}
			if DayKey(f.Date) == today {
				hasToday = true
			}
		}
		if completed {
			m.CompletedSales++
		}
		if rejected {
			m.RejectedSales++
		}
		if !completed && !rejected {
			m.PendingSales++
		}
		if hasToday {
			m.TodayFollowUps++
		}
	}

	m.AverageDealSize = divOrZero(m.TotalRevenue, m.RevenueDeals)
	m.ConversionRate = percentString(m.CompletedSales, m.TotalCustomers)
	m.RejectionRate = percentString(m.RejectedSales, m.TotalCustomers)
	return m
}
