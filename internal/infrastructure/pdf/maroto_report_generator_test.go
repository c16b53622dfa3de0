package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/pkg/currency"
)

func TestRenderDailyReport(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("Backoffice", currency.New("$", "en"))
	report := &dto.DailyReportDTO{
		Period:    dto.PeriodDTO{StartDate: "2024-03-01", EndDate: "2024-03-15"},
		SalesType: "all",
		Days: []dto.DaySalesDTO{{
			Date:               "2024-03-14",
			TotalAmount:        decimal.NewFromInt(100),
			FollowUpSalesCount: 1,
			SalesPersons:       []string{"Ana"},
			FollowUpSales:      []dto.FollowUpSaleDTO{{CustomerName: "Luis", Amount: decimal.NewFromInt(100), SalesPerson: "Ana"}},
		}},
		Summary: dto.DailySummaryDTO{TotalRevenue: decimal.NewFromInt(100), TotalFollowUpSales: 1, TotalSales: 1, ActiveDays: 1},
	}

	out, err := g.RenderDailyReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestRenderDailyReport_SinDias(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("Backoffice", currency.New("$", "en"))

	out, err := g.RenderDailyReport(context.Background(), &dto.DailyReportDTO{SalesType: "all"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderDailyReport_Nil(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("Backoffice", currency.New("$", "en"))

	_, err := g.RenderDailyReport(context.Background(), nil)
	assert.Error(t, err)
}
