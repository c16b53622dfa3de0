package analytics

import "github.com/shopspring/decimal"

// Summary totales del período del registro diario.
type Summary struct {
	TotalRevenue            decimal.Decimal
	TotalFollowUpSales      int
	TotalInventorySales     int
	TotalSales              int
	TotalUnitsFromInventory int
	ActiveDays              int
	AverageDailyRevenue     decimal.Decimal // revenue / número de buckets
	AverageSaleAmount       decimal.Decimal // revenue / ventas de seguimiento
}

// Summarize reduce los buckets ya filtrados por tipo de venta.
func Summarize(days []DaySales) Summary {
	s := Summary{TotalRevenue: decimal.Zero}
	for _, d := range days {
		s.TotalRevenue = s.TotalRevenue.Add(d.TotalAmount)
		s.TotalFollowUpSales += d.FollowUpSalesCount
		s.TotalInventorySales += d.InventorySalesCount
		for _, inv := range d.InventorySales {
			s.TotalUnitsFromInventory += inv.QuantitySold
		}
		if d.FollowUpSalesCount+d.InventorySalesCount > 0 {
			s.ActiveDays++
		}
	}
	s.TotalSales = s.TotalFollowUpSales + s.TotalInventorySales
	s.AverageDailyRevenue = divOrZero(s.TotalRevenue, len(days))
	s.AverageSaleAmount = divOrZero(s.TotalRevenue, s.TotalFollowUpSales)
	return s
}
