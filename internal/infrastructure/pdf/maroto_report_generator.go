// Package pdf genera la versión imprimible del registro diario de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período          │  Tipo de venta          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Revenue / ventas / días activos / promedios        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR DÍA: fecha + total                                      │
//	│     Seguimientos: Cliente | Vendedor | Monto                 │
//	│     Inventario:   Descripción | Cliente | Factura            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportRenderer = (*MarotoReportGenerator)(nil)

// MoneyFormatter texto de un monto.
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// MarotoReportGenerator implementa ports.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct {
	company string
	money   MoneyFormatter
}

// NewMarotoReportGenerator construye el generador. company aparece como autor del documento.
func NewMarotoReportGenerator(company string, money MoneyFormatter) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company, money: money}
}

// RenderDailyReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Daily Sales Report", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRows(report.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.Days) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin ventas en el período.", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}
	for _, d := range report.Days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(g.dayRows(d)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + período (izq) y tipo de venta (der).
func headerRow(r *dto.DailyReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("DAILY SALES REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s to %s", r.Period.StartDate, r.Period.EndDate), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Sales type: "+nonEmpty(r.SalesType, "all"), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// summaryRows: bloque de totales en dos columnas etiqueta/valor.
func (g *MarotoReportGenerator) summaryRows(s dto.DailySummaryDTO) []core.Row {
	pairs := [][2]string{
		{"Total revenue", g.money.Format(s.TotalRevenue)},
		{"Follow-up sales", fmt.Sprint(s.TotalFollowUpSales)},
		{"Inventory sales", fmt.Sprint(s.TotalInventorySales)},
		{"Units from inventory", fmt.Sprint(s.TotalUnitsFromInventory)},
		{"Active days", fmt.Sprint(s.ActiveDays)},
		{"Average daily revenue", g.money.Format(s.AverageDailyRevenue)},
		{"Average sale amount", g.money.Format(s.AverageSaleAmount)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(p[0]+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 0.5})),
			col.New(4).Add(text.New(p[1], props.Text{Size: 9, Align: align.Right, Top: 0.5})),
			col.New(4),
		))
	}
	return rows
}

// dayRows: cabecera del día y una fila por venta.
func (g *MarotoReportGenerator) dayRows(d dto.DaySalesDTO) []core.Row {
	rows := []core.Row{
		row.New(4),
		row.New(7).Add(
			col.New(6).Add(text.New(d.Date, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			})),
			col.New(6).Add(text.New(fmt.Sprintf("%d follow-up | %d inventory | %s",
				d.FollowUpSalesCount, d.InventorySalesCount, g.money.Format(d.TotalAmount)), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			})),
		),
	}
	if len(d.SalesPersons) > 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sales persons: "+strings.Join(d.SalesPersons, ", "), props.Text{Size: 7.5, Color: colorGray, Top: 0.5}),
		)))
	}
	for _, fu := range d.FollowUpSales {
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(fu.CustomerName, props.Text{Size: 8, Left: 2, Top: 0.5})),
			col.New(4).Add(text.New(nonEmpty(fu.SalesPerson, "—"), props.Text{Size: 8, Top: 0.5})),
			col.New(3).Add(text.New(g.money.Format(fu.Amount), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		))
	}
	for _, inv := range d.InventorySales {
		bill := "—"
		if inv.BillNumber != nil && *inv.BillNumber != "" {
			bill = *inv.BillNumber
		}
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(inv.Description, props.Text{Size: 8, Left: 2, Top: 0.5})),
			col.New(4).Add(text.New(inv.CustomerName, props.Text{Size: 8, Top: 0.5})),
			col.New(2).Add(text.New(bill, props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
