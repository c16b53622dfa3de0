package dto

import "github.com/shopspring/decimal"

// DailyReportRequest parámetros del registro diario y su exportación.
type DailyReportRequest struct {
	StartDate     string `query:"start_date" validate:"omitempty,datetime=2006-01-02"` // por defecto primer día del mes
	EndDate       string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`   // por defecto hoy
	SalesPersonID string `query:"salesperson_id" validate:"omitempty,max=64"`
	SalesType     string `query:"sales_type" validate:"omitempty,oneof=inventory follow-up all"`
	Format        string `query:"format" validate:"omitempty,oneof=xlsx pdf"`
}

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// FollowUpSaleDTO venta cerrada desde un seguimiento.
type FollowUpSaleDTO struct {
	CustomerName string          `json:"customer_name"`
	Mobile       string          `json:"mobile"`
	Amount       decimal.Decimal `json:"amount"`
	SalesPerson  string          `json:"sales_person"`
	Remarks      string          `json:"remarks"`
	Location     string          `json:"location"`
}

// InventorySaleDTO venta de mostrador.
type InventorySaleDTO struct {
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	BrandName    string  `json:"brand_name"`
	ModelNumber  string  `json:"model_number"`
	QuantitySold int     `json:"quantity_sold"`
	BillNumber   *string `json:"bill_number,omitempty"`
	Description  string  `json:"description"`
}

// DaySalesDTO bucket de un día.
type DaySalesDTO struct {
	Date                string             `json:"date"`
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	FollowUpSalesCount  int                `json:"follow_up_sales_count"`
	InventorySalesCount int                `json:"inventory_sales_count"`
	SalesPersons        []string           `json:"sales_persons"`
	FollowUpSales       []FollowUpSaleDTO  `json:"follow_up_sales"`
	InventorySales      []InventorySaleDTO `json:"inventory_sales"`
}

// DailySummaryDTO totales del período.
type DailySummaryDTO struct {
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	TotalFollowUpSales      int             `json:"total_follow_up_sales"`
	TotalInventorySales     int             `json:"total_inventory_sales"`
	TotalSales              int             `json:"total_sales"`
	TotalUnitsFromInventory int             `json:"total_units_from_inventory"`
	ActiveDays              int             `json:"active_days"`
	AverageDailyRevenue     decimal.Decimal `json:"average_daily_revenue"`
	AverageSaleAmount       decimal.Decimal `json:"average_sale_amount"`
}

// DailyReportDTO registro diario + resumen.
type DailyReportDTO struct {
	Period    PeriodDTO       `json:"period"`
	SalesType string          `json:"sales_type"`
	Days      []DaySalesDTO   `json:"days"`
	Summary   DailySummaryDTO `json:"summary"`
}

// ArchiveReportRequest cuerpo de POST /api/analytics/daily-report/archive.
type ArchiveReportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ArchiveReportResponse ubicación del archivo subido.
type ArchiveReportResponse struct {
	Key  string `json:"key"`
	Size int    `json:"size"`
}
