package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func trendFixture() ([]entity.Customer, []entity.SaleEntry, []entity.Product) {
	c1 := customer("1", "sp1", "Ana", completed("2024-03-15", 100), rejected("2024-03-14"))
	c1.CreatedAt = time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)
	c2 := customer("2", "sp2", "Luis", completed("2024-03-14", 50), completedNoAmount("2024-03-13"))
	products := []entity.Product{
		product("p1", "b1", "Acme", "Radio", "R1", 4),
		product("p2", "b2", "Zeta", "Parlante", "S1", 9),
	}
	sales := []entity.SaleEntry{
		sale("p1", "2024-03-15", 2),
		sale("p2", "2024-03-14", 3),
		sale("p1", "2024-03-01", 1),
	}
	return []entity.Customer{c1, c2}, sales, products
}

func pointByDate(t *testing.T, tr analytics.Trend, date string) analytics.TrendPoint {
	t.Helper()
	for _, p := range tr.Points {
		if p.Date == date {
			return p
		}
	}
	require.Failf(t, "punto no encontrado", "fecha %s", date)
	return analytics.TrendPoint{}
}

func TestComputeTrend_SemanaTodas(t *testing.T) {
	customers, sales, products := trendFixture()

	tr := analytics.ComputeTrend(customers, sales, analytics.TrendRequest{
		Period:    analytics.PeriodWeek,
		SalesType: analytics.SalesTypeAll,
		Products:  products,
		Now:       now,
	})

	require.Len(t, tr.Points, 7)
	assert.Equal(t, "2024-03-09", tr.Points[0].Date)
	assert.Equal(t, "Mar 9", tr.Points[0].Label)
	assert.Equal(t, "2024-03-15", tr.Points[6].Date)

	d15 := pointByDate(t, tr, "2024-03-15")
	assert.Equal(t, 2, d15.InventoryCount)
	assert.Equal(t, 1, d15.FollowUpCount)
	assert.Equal(t, 3, d15.Sales)
	assert.True(t, d15.Revenue.Equal(dec("100")))
	assert.Equal(t, 1, d15.NewCustomers)

	d14 := pointByDate(t, tr, "2024-03-14")
	assert.Equal(t, 4, d14.Sales)
	assert.True(t, d14.Revenue.Equal(dec("50")))

	d13 := pointByDate(t, tr, "2024-03-13")
	assert.Equal(t, 1, d13.Sales, "completado sin monto cuenta como venta")
	assert.True(t, d13.Revenue.IsZero())

	assert.Equal(t, 8, tr.TotalSales)
	assert.True(t, tr.TotalRevenue.Equal(dec("150")))
	assert.Equal(t, 1, tr.TotalNewCustomers)
	assert.Equal(t, 0.0, tr.GrowthTrend, "sin semana previa el crecimiento es 0")
}

func TestComputeTrend_ModoInventarioConProductosFiltrados(t *testing.T) {
	customers, sales, products := trendFixture()

	tr := analytics.ComputeTrend(customers, sales, analytics.TrendRequest{
		Period:    analytics.PeriodWeek,
		SalesType: analytics.SalesTypeInventory,
		Products:  products[:1],
		Now:       now,
	})

	d15 := pointByDate(t, tr, "2024-03-15")
	assert.Equal(t, 2, d15.Sales)
	assert.True(t, d15.Revenue.IsZero(), "el inventario no reporta ingresos")
	assert.Equal(t, 0, pointByDate(t, tr, "2024-03-14").Sales)
	assert.Equal(t, 2, tr.TotalSales)
	assert.True(t, tr.TotalRevenue.IsZero())
}

func TestComputeTrend_ModoSeguimientoConVendedor(t *testing.T) {
	customers, sales, products := trendFixture()

	tr := analytics.ComputeTrend(customers, sales, analytics.TrendRequest{
		Period:        analytics.PeriodWeek,
		SalesPersonID: "sp1",
		SalesType:     analytics.SalesTypeFollowUp,
		Products:      products,
		Now:           now,
	})

	assert.Equal(t, 1, pointByDate(t, tr, "2024-03-15").Sales)
	assert.Equal(t, 0, pointByDate(t, tr, "2024-03-14").Sales)
	assert.Equal(t, 1, tr.TotalSales)
	assert.True(t, tr.TotalRevenue.Equal(dec("100")))
}

func TestComputeTrend_MesRecortaPeroTotalizaTodo(t *testing.T) {
	customers, sales, products := trendFixture()

	tr := analytics.ComputeTrend(customers, sales, analytics.TrendRequest{
		Period:    analytics.PeriodMonth,
		SalesType: analytics.SalesTypeAll,
		Products:  products,
		Now:       now,
	})

	require.Len(t, tr.Points, 7)
	assert.Equal(t, "2024-03-25", tr.Points[0].Date)
	assert.Equal(t, "2024-03-31", tr.Points[6].Date)
	assert.Equal(t, 9, tr.TotalSales, "incluye la venta del 1 de marzo fuera de la ventana")
}

func TestComputeTrend_PeriodoAllDesde2024(t *testing.T) {
	start, end := analytics.PeriodAll.Interval(now)
	assert.Equal(t, "2024-01-01", analytics.DayKey(start))
	assert.Equal(t, "2024-03-15", analytics.DayKey(end))
}

func TestComputeTrend_Crecimiento(t *testing.T) {
	p := product("p1", "b1", "Acme", "Radio", "R1", 10)
	var sales []entity.SaleEntry
	for d := 1; d <= 14; d++ {
		qty := 1
		if d > 7 {
			qty = 2
		}
		sales = append(sales, entity.SaleEntry{
			ProductID:    "p1",
			SaleDate:     time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC),
			QuantitySold: qty,
		})
	}

	tr := analytics.ComputeTrend(nil, sales, analytics.TrendRequest{
		Period:    analytics.PeriodAll,
		SalesType: analytics.SalesTypeInventory,
		Products:  []entity.Product{p},
		Now:       time.Date(2024, time.January, 14, 18, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, 21, tr.TotalSales)
	assert.Equal(t, 100.0, tr.GrowthTrend)
	require.Len(t, tr.Points, 7)
	assert.Equal(t, "2024-01-08", tr.Points[0].Date)
}

func TestParsePeriodYSalesType(t *testing.T) {
	p, err := analytics.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, analytics.PeriodWeek, p)

	_, err = analytics.ParsePeriod("year")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	st, err := analytics.ParseSalesType("follow-up")
	require.NoError(t, err)
	assert.Equal(t, analytics.SalesTypeFollowUp, st)

	st, err = analytics.ParseSalesType("")
	require.NoError(t, err)
	assert.Equal(t, analytics.SalesTypeAll, st)

	_, err = analytics.ParseSalesType("online")
	assert.ErrorIs(t, err, domain.ErrInvalidSalesType)
}
