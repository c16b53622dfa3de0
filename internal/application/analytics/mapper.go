package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
)

// Los montos se redondean a 2 decimales y los porcentajes a 1 solo al salir del motor.

func toSalesMetricsDTO(m engine.SalesMetrics) dto.SalesMetricsDTO {
	return dto.SalesMetricsDTO{
		TotalCustomers:  m.TotalCustomers,
		CompletedSales:  m.CompletedSales,
		RejectedSales:   m.RejectedSales,
		PendingSales:    m.PendingSales,
		TodayFollowUps:  m.TodayFollowUps,
		TotalRevenue:    m.TotalRevenue.Round(2),
		AverageDealSize: m.AverageDealSize.Round(2),
		ConversionRate:  m.ConversionRate,
		RejectionRate:   m.RejectionRate,
	}
}

func toPerformanceDTOs(rows []engine.SalesPersonPerformance) []dto.SalesPersonPerformanceDTO {
	out := make([]dto.SalesPersonPerformanceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesPersonPerformanceDTO{
			SalesPersonID:   r.SalesPersonID,
			Name:            r.Name,
			TotalCustomers:  r.TotalCustomers,
			CompletedSales:  r.CompletedSales,
			RejectedSales:   r.RejectedSales,
			Revenue:         r.Revenue.Round(2),
			ConversionRate:  roundPercent(r.ConversionRate),
			AverageDealSize: r.AverageDealSize.Round(2),
			Efficiency:      roundPercent(r.Efficiency),
		})
	}
	return out
}

func toInventoryDTO(m engine.InventoryMetrics) dto.InventoryMetricsDTO {
	return dto.InventoryMetricsDTO{
		TotalProducts: m.TotalProducts,
		TotalStock:    m.TotalStock,
		OutOfStock:    m.OutOfStock,
		LowStock:      m.LowStock,
		InStock:       m.InStock,
		TotalSold:     m.TotalSold,
		StockTurnover: m.StockTurnover,
	}
}

func toTrendDTO(t engine.Trend, period engine.Period, salesType engine.SalesType) dto.TrendDTO {
	points := make([]dto.TrendPointDTO, 0, len(t.Points))
	for _, p := range t.Points {
		points = append(points, dto.TrendPointDTO{
			Date:            p.Date,
			Label:           p.Label,
			Sales:           p.Sales,
			Revenue:         p.Revenue.Round(2),
			InventoryCount:  p.InventoryCount,
			FollowUpCount:   p.FollowUpCount,
			FollowUpRevenue: p.FollowUpRevenue.Round(2),
			NewCustomers:    p.NewCustomers,
		})
	}
	return dto.TrendDTO{
		Period:            string(period),
		SalesType:         string(salesType),
		Points:            points,
		TotalSales:        t.TotalSales,
		TotalRevenue:      t.TotalRevenue.Round(2),
		TotalNewCustomers: t.TotalNewCustomers,
		GrowthTrend:       t.GrowthTrend,
	}
}

func toTopProductDTOs(rows []engine.TopProduct) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:     r.ProductID,
			Name:          r.Name,
			BrandName:     r.BrandName,
			ModelNumber:   r.ModelNumber,
			TotalSold:     r.TotalSold,
			ThisMonthSold: r.ThisMonthSold,
			Stock:         r.Stock,
			StockStatus:   r.StockStatus,
		})
	}
	return out
}

func toBrandDTOs(rows []engine.BrandPerformance) []dto.BrandPerformanceDTO {
	out := make([]dto.BrandPerformanceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BrandPerformanceDTO{
			BrandID:      r.BrandID,
			BrandName:    r.BrandName,
			ProductCount: r.ProductCount,
			TotalSold:    r.TotalSold,
			TotalStock:   r.TotalStock,
		})
	}
	return out
}

func toDaySalesDTOs(days []engine.DaySales) []dto.DaySalesDTO {
	out := make([]dto.DaySalesDTO, 0, len(days))
	for _, d := range days {
		fu := make([]dto.FollowUpSaleDTO, 0, len(d.FollowUpSales))
		for _, s := range d.FollowUpSales {
			fu = append(fu, dto.FollowUpSaleDTO{
				CustomerName: s.CustomerName,
				Mobile:       s.Mobile,
				Amount:       s.Amount.Round(2),
				SalesPerson:  s.SalesPerson,
				Remarks:      s.Remarks,
				Location:     s.Location,
			})
		}
		inv := make([]dto.InventorySaleDTO, 0, len(d.InventorySales))
		for _, s := range d.InventorySales {
			inv = append(inv, dto.InventorySaleDTO{
				CustomerName: s.CustomerName,
				ProductName:  s.ProductName,
				BrandName:    s.BrandName,
				ModelNumber:  s.ModelNumber,
				QuantitySold: s.QuantitySold,
				BillNumber:   s.BillNumber,
				Description:  s.Description,
			})
		}
		out = append(out, dto.DaySalesDTO{
			Date:                d.Date,
			TotalAmount:         d.TotalAmount.Round(2),
			FollowUpSalesCount:  d.FollowUpSalesCount,
			InventorySalesCount: d.InventorySalesCount,
			SalesPersons:        d.SalesPersons,
			FollowUpSales:       fu,
			InventorySales:      inv,
		})
	}
	return out
}

func toSummaryDTO(s engine.Summary) dto.DailySummaryDTO {
	return dto.DailySummaryDTO{
		TotalRevenue:            s.TotalRevenue.Round(2),
		TotalFollowUpSales:      s.TotalFollowUpSales,
		TotalInventorySales:     s.TotalInventorySales,
		TotalSales:              s.TotalSales,
		TotalUnitsFromInventory: s.TotalUnitsFromInventory,
		ActiveDays:              s.ActiveDays,
		AverageDailyRevenue:     s.AverageDailyRevenue.Round(2),
		AverageSaleAmount:       s.AverageSaleAmount.Round(2),
	}
}

// roundPercent un decimal, half away from zero como los porcentajes en texto.
func roundPercent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
