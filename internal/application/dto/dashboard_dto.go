package dto

import "github.com/shopspring/decimal"

// DashboardRequest parámetros para GET /api/analytics/dashboard.
type DashboardRequest struct {
	Period        string `query:"period" validate:"omitempty,oneof=week month all"`
	SalesPersonID string `query:"salesperson_id" validate:"omitempty,max=64"`
	SalesType     string `query:"sales_type" validate:"omitempty,oneof=inventory follow-up all"`
	Search        string `query:"search" validate:"omitempty,max=100"`
	BrandID       string `query:"brand_id" validate:"omitempty,max=64"`
}

// SalesMetricsDTO embudo de seguimientos.
type SalesMetricsDTO struct {
	TotalCustomers  int             `json:"total_customers"`
	CompletedSales  int             `json:"completed_sales"`
	RejectedSales   int             `json:"rejected_sales"`
	PendingSales    int             `json:"pending_sales"`
	TodayFollowUps  int             `json:"today_follow_ups"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AverageDealSize decimal.Decimal `json:"average_deal_size"`
	ConversionRate  string          `json:"conversion_rate"` // "40.0"
	RejectionRate   string          `json:"rejection_rate"`
}

// SalesPersonPerformanceDTO una fila del ranking de vendedores.
type SalesPersonPerformanceDTO struct {
	SalesPersonID   string          `json:"salesperson_id"`
	Name            string          `json:"name"`
	TotalCustomers  int             `json:"total_customers"`
	CompletedSales  int             `json:"completed_sales"`
	RejectedSales   int             `json:"rejected_sales"`
	Revenue         decimal.Decimal `json:"revenue"`
	ConversionRate  float64         `json:"conversion_rate"`
	AverageDealSize decimal.Decimal `json:"average_deal_size"`
	Efficiency      float64         `json:"efficiency"`
}

// InventoryMetricsDTO stock del conjunto filtrado.
type InventoryMetricsDTO struct {
	TotalProducts int    `json:"total_products"`
	TotalStock    int    `json:"total_stock"`
	OutOfStock    int    `json:"out_of_stock"`
	LowStock      int    `json:"low_stock"`
	InStock       int    `json:"in_stock"`
	TotalSold     int    `json:"total_sold"`
	StockTurnover string `json:"stock_turnover"`
}

// TrendPointDTO un día de la serie.
type TrendPointDTO struct {
	Date            string          `json:"date"`
	Label           string          `json:"label"`
	Sales           int             `json:"sales"`
	Revenue         decimal.Decimal `json:"revenue"`
	InventoryCount  int             `json:"inventory_count"`
	FollowUpCount   int             `json:"follow_up_count"`
	FollowUpRevenue decimal.Decimal `json:"follow_up_revenue"`
	NewCustomers    int             `json:"new_customers"`
}

// TrendDTO serie de los últimos 7 días y totales del período.
type TrendDTO struct {
	Period            string          `json:"period"`
	SalesType         string          `json:"sales_type"`
	Points            []TrendPointDTO `json:"points"`
	TotalSales        int             `json:"total_sales"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalNewCustomers int             `json:"total_new_customers"`
	GrowthTrend       float64         `json:"growth_trend"`
}

// TopProductDTO producto del ranking de ventas.
type TopProductDTO struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	BrandName     string `json:"brand_name"`
	ModelNumber   string `json:"model_number"`
	TotalSold     int    `json:"total_sold"`
	ThisMonthSold int    `json:"this_month_sold"`
	Stock         int    `json:"stock"`
	StockStatus   string `json:"stock_status"`
}

// BrandPerformanceDTO totales de una marca.
type BrandPerformanceDTO struct {
	BrandID      string `json:"brand_id"`
	BrandName    string `json:"brand_name"`
	ProductCount int    `json:"product_count"`
	TotalSold    int    `json:"total_sold"`
	TotalStock   int    `json:"total_stock"`
}

// DashboardDTO respuesta completa del dashboard.
type DashboardDTO struct {
	Sales            SalesMetricsDTO             `json:"sales"`
	Performance      []SalesPersonPerformanceDTO `json:"performance"`
	Inventory        InventoryMetricsDTO         `json:"inventory"`
	Trend            TrendDTO                    `json:"trend"`
	TopProducts      []TopProductDTO             `json:"top_products"`
	BrandPerformance []BrandPerformanceDTO       `json:"brand_performance"`
}
