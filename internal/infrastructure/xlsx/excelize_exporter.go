// Package xlsx genera el registro diario de ventas como libro de Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

// Nombres de hoja fijos: los consumidores del archivo los buscan por nombre.
const (
	SheetDailySummary   = "Daily Summary"
	SheetFollowUpSales  = "Follow-up Sales"
	SheetInventorySales = "Inventory Sales"
	SheetStatistics     = "Statistics"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// MoneyFormatter texto de un monto para las columnas "display".
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// Exporter implementa ports.ReportExporter con excelize.
type Exporter struct {
	money MoneyFormatter
}

// NewExporter construye el exportador.
func NewExporter(money MoneyFormatter) *Exporter {
	return &Exporter{money: money}
}

// ExportDailyReport escribe las cuatro hojas y devuelve el .xlsx.
func (e *Exporter) ExportDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xlsx: reporte vacío")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetDailySummary); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	for _, name := range []string{SheetFollowUpSales, SheetInventorySales, SheetStatistics} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", name, err)
		}
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	w := &sheetWriter{f: f, headerStyle: header}
	e.writeDailySummary(w, report)
	e.writeFollowUps(w, report)
	writeInventory(w, report)
	e.writeStatistics(w, report)
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: %w", w.err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeDailySummary(w *sheetWriter, r *dto.DailyReportDTO) {
	s := SheetDailySummary
	w.header(s, "Date", "Follow-up Sales", "Inventory Sales", "Total Sales", "Total Amount", "Total Amount (Display)", "Sales Persons")
	for i, d := range r.Days {
		w.row(s, i+2,
			d.Date,
			d.FollowUpSalesCount,
			d.InventorySalesCount,
			d.FollowUpSalesCount+d.InventorySalesCount,
			raw(d.TotalAmount),
			e.money.Format(d.TotalAmount),
			strings.Join(d.SalesPersons, ", "),
		)
	}
	w.widths(s, 12, 16, 16, 12, 14, 22, 40)
}

func (e *Exporter) writeFollowUps(w *sheetWriter, r *dto.DailyReportDTO) {
	s := SheetFollowUpSales
	w.header(s, "Date", "Customer", "Mobile", "Amount", "Amount (Display)", "Sales Person", "Location", "Remarks")
	n := 2
	for _, d := range r.Days {
		for _, fu := range d.FollowUpSales {
			w.row(s, n, d.Date, fu.CustomerName, fu.Mobile, raw(fu.Amount), e.money.Format(fu.Amount), fu.SalesPerson, fu.Location, fu.Remarks)
			n++
		}
	}
	w.widths(s, 12, 28, 16, 12, 18, 20, 20, 40)
}

func writeInventory(w *sheetWriter, r *dto.DailyReportDTO) {
	s := SheetInventorySales
	w.header(s, "Date", "Customer", "Product", "Brand", "Model", "Quantity", "Bill Number", "Description")
	n := 2
	for _, d := range r.Days {
		for _, inv := range d.InventorySales {
			bill := ""
			if inv.BillNumber != nil {
				bill = *inv.BillNumber
			}
			w.row(s, n, d.Date, inv.CustomerName, inv.ProductName, inv.BrandName, inv.ModelNumber, inv.QuantitySold, bill, inv.Description)
			n++
		}
	}
	w.widths(s, 12, 28, 24, 18, 14, 10, 14, 48)
}

func (e *Exporter) writeStatistics(w *sheetWriter, r *dto.DailyReportDTO) {
	s := SheetStatistics
	sum := r.Summary
	w.header(s, "Metric", "Value", "Display")
	rows := [][]any{
		{"Start Date", r.Period.StartDate, r.Period.StartDate},
		{"End Date", r.Period.EndDate, r.Period.EndDate},
		{"Sales Type", r.SalesType, r.SalesType},
		{"Total Revenue", raw(sum.TotalRevenue), e.money.Format(sum.TotalRevenue)},
		{"Total Follow-up Sales", sum.TotalFollowUpSales, fmt.Sprint(sum.TotalFollowUpSales)},
		{"Total Inventory Sales", sum.TotalInventorySales, fmt.Sprint(sum.TotalInventorySales)},
		{"Total Sales", sum.TotalSales, fmt.Sprint(sum.TotalSales)},
		{"Total Units From Inventory", sum.TotalUnitsFromInventory, fmt.Sprint(sum.TotalUnitsFromInventory)},
		{"Active Days", sum.ActiveDays, fmt.Sprint(sum.ActiveDays)},
		{"Average Daily Revenue", raw(sum.AverageDailyRevenue), e.money.Format(sum.AverageDailyRevenue)},
		{"Average Sale Amount", raw(sum.AverageSaleAmount), e.money.Format(sum.AverageSaleAmount)},
	}
	for i, values := range rows {
		w.row(s, i+2, values...)
	}
	w.widths(s, 28, 16, 20)
}

func raw(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// sheetWriter acumula el primer error para no chequear cada celda.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) header(sheet string, titles ...string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	w.row(sheet, 1, values...)
	if w.err != nil {
		return
	}
	end, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", end, w.headerStyle)
}

func (w *sheetWriter) row(sheet string, n int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) widths(sheet string, widths ...float64) {
	for i, width := range widths {
		if w.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetColWidth(sheet, col, col, width)
	}
}
