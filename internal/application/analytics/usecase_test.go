package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

var (
	admin = analytics.Viewer{UserID: "u-admin", Role: entity.RoleAdmin}
	staff = analytics.Viewer{UserID: "u-staff", Role: entity.RoleStaff}
)

type fixture struct {
	customers *fakeCustomers
	cache     *fakeCache
	storage   *fakeStorage
	uc        *analytics.AnalyticsUseCase
}

func newFixture(withCache bool, mutate func(*analytics.Deps)) *fixture {
	f := &fixture{customers: &fakeCustomers{rows: seedCustomers()}, storage: &fakeStorage{}}
	deps := analytics.Deps{
		Customers:         f.customers,
		SalesPersons:      &fakeSalesPersons{rows: seedPeople()},
		Products:          &fakeProducts{rows: seedProducts()},
		Sales:             &fakeSales{rows: seedSales()},
		HiddenSalesPerson: "oculto",
		Now:               func() time.Time { return fixedNow },
	}
	if withCache {
		f.cache = newFakeCache()
		deps.Cache = f.cache
	}
	if mutate != nil {
		mutate(&deps)
	}
	f.uc = analytics.NewAnalyticsUseCase(deps)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_AdminVeTodo(t *testing.T) {
	f := newFixture(false, nil)

	out, err := f.uc.GetDashboard(context.Background(), admin, dto.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Sales.TotalCustomers)
	assert.True(t, out.Sales.TotalRevenue.Equal(decimal.NewFromInt(300)))
	assert.Len(t, out.Performance, 2)
	assert.Equal(t, "Oculto", out.Performance[0].Name, "ordenado por revenue descendente")
	assert.Equal(t, "week", out.Trend.Period)
	assert.Equal(t, "all", out.Trend.SalesType)
}

func TestGetDashboard_StaffNoVeVendedorOculto(t *testing.T) {
	f := newFixture(false, nil)

	out, err := f.uc.GetDashboard(context.Background(), staff, dto.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Sales.TotalCustomers)
	assert.True(t, out.Sales.TotalRevenue.Equal(decimal.NewFromInt(100)))
	require.Len(t, out.Performance, 1)
	assert.Equal(t, "Ana", out.Performance[0].Name)
	// El inventario no depende de la visibilidad.
	assert.Equal(t, 2, out.Inventory.TotalSold)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "p1", out.TopProducts[0].ProductID)
}

func TestGetDashboard_PeriodoInvalido(t *testing.T) {
	f := newFixture(false, nil)

	_, err := f.uc.GetDashboard(context.Background(), admin, dto.DashboardRequest{Period: "year"})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = f.uc.GetDashboard(context.Background(), admin, dto.DashboardRequest{SalesType: "otro"})
	assert.ErrorIs(t, err, domain.ErrInvalidSalesType)
}

func TestGetDashboard_ErrorDeRepositorio(t *testing.T) {
	f := newFixture(false, nil)
	f.customers.err = errors.New("conexión perdida")

	_, err := f.uc.GetDashboard(context.Background(), admin, dto.DashboardRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión perdida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_UsaCacheHastaQueCambiaLaVersion(t *testing.T) {
	f := newFixture(true, nil)
	ctx := context.Background()

	first, err := f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{})
	require.NoError(t, err)
	second, err := f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, f.customers.calls, "la segunda lectura sale de caché")
	assert.Equal(t, first.Sales.TotalCustomers, second.Sales.TotalCustomers)
	assert.True(t, first.Sales.TotalRevenue.Equal(second.Sales.TotalRevenue))

	_, err = f.cache.BumpVersion(ctx)
	require.NoError(t, err)
	_, err = f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, f.customers.calls)
}

func TestGetDashboard_CacheSeparaPorVisibilidad(t *testing.T) {
	f := newFixture(true, nil)
	ctx := context.Background()

	a, err := f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{})
	require.NoError(t, err)
	s, err := f.uc.GetDashboard(ctx, staff, dto.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, a.Sales.TotalCustomers)
	assert.Equal(t, 1, s.Sales.TotalCustomers)
	assert.Equal(t, 2, f.customers.calls)
}

func TestGetDashboard_CacheNoMezclaFiltrosConDosPuntos(t *testing.T) {
	f := newFixture(true, nil)
	ctx := context.Background()

	_, err := f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{SalesPersonID: "sp1:zz", BrandID: "b1"})
	require.NoError(t, err)
	b, err := f.uc.GetDashboard(ctx, admin, dto.DashboardRequest{SalesPersonID: "sp1", BrandID: "zz:b1"})
	require.NoError(t, err)

	assert.Equal(t, 2, f.customers.calls)
	assert.Equal(t, 0, b.Inventory.TotalProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro diario
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDailyReport_RangoPorDefecto(t *testing.T) {
	f := newFixture(false, nil)

	out, err := f.uc.GetDailyReport(context.Background(), admin, dto.DailyReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", out.Period.StartDate)
	assert.Equal(t, "2024-03-15", out.Period.EndDate)
	require.Len(t, out.Days, 2)
	assert.Equal(t, "2024-03-14", out.Days[0].Date)
	assert.Equal(t, 2, out.Days[0].FollowUpSalesCount)
	assert.Equal(t, "2024-03-13", out.Days[1].Date)
	assert.Equal(t, "Sold 2 x Acme Taladro (T-1)", out.Days[1].InventorySales[0].Description)

	assert.True(t, out.Summary.TotalRevenue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 3, out.Summary.TotalSales)
	assert.True(t, out.Summary.AverageDailyRevenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Summary.AverageSaleAmount.Equal(decimal.NewFromInt(150)))
}

func TestGetDailyReport_FiltroPorVendedorExcluyeInventario(t *testing.T) {
	f := newFixture(false, nil)

	out, err := f.uc.GetDailyReport(context.Background(), admin, dto.DailyReportRequest{SalesPersonID: "sp1"})
	require.NoError(t, err)

	require.Len(t, out.Days, 1)
	assert.Equal(t, []string{"Ana"}, out.Days[0].SalesPersons)
	assert.Equal(t, 0, out.Summary.TotalInventorySales)
}

func TestGetDailyReport_RangoInvertido(t *testing.T) {
	f := newFixture(false, nil)

	_, err := f.uc.GetDailyReport(context.Background(), admin, dto.DailyReportRequest{StartDate: "2024-03-10", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.GetDailyReport(context.Background(), admin, dto.DailyReportRequest{StartDate: "10/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación y archivo
// ──────────────────────────────────────────────────────────────────────────────

type stubExporter struct{ got *dto.DailyReportDTO }

func (s *stubExporter) ExportDailyReport(ctx context.Context, r *dto.DailyReportDTO) ([]byte, error) {
	s.got = r
	return []byte("xlsx-bytes"), nil
}

func TestExportDailyReport_Xlsx(t *testing.T) {
	exp := &stubExporter{}
	f := newFixture(false, func(d *analytics.Deps) { d.Exporter = exp })

	file, err := f.uc.ExportDailyReport(context.Background(), staff, dto.DailyReportRequest{StartDate: "2024-03-01", EndDate: "2024-03-15"})
	require.NoError(t, err)

	assert.Equal(t, "Daily_Sales_Report_2024-03-01_to_2024-03-15.xlsx", file.Filename)
	assert.Equal(t, analytics.ContentTypeXLSX, file.ContentType)
	assert.Equal(t, []byte("xlsx-bytes"), file.Content)
	require.NotNil(t, exp.got)
	assert.True(t, exp.got.Summary.TotalRevenue.Equal(decimal.NewFromInt(100)), "el export respeta la visibilidad")
}

func TestExportDailyReport_PdfSinGenerador(t *testing.T) {
	f := newFixture(false, nil)

	_, err := f.uc.ExportDailyReport(context.Background(), admin, dto.DailyReportRequest{Format: "pdf"})
	assert.Error(t, err)
}

func TestArchiveDailyReport_SinStorage(t *testing.T) {
	f := newFixture(false, nil)

	_, err := f.uc.ArchiveDailyReport(context.Background(), "2024-03-14", "2024-03-14")
	assert.ErrorIs(t, err, domain.ErrStorageDisabled)
}

func TestArchiveDay_SubeConPrefijo(t *testing.T) {
	storage := &fakeStorage{}
	f := newFixture(false, func(d *analytics.Deps) {
		d.Exporter = &stubExporter{}
		d.Storage = storage
		d.StoragePrefix = "/reports/"
	})

	err := f.uc.ArchiveDay(context.Background(), day("2024-03-14"))
	require.NoError(t, err)

	require.Len(t, storage.keys, 1)
	assert.Equal(t, "reports/2024/03/Daily_Sales_Report_2024-03-14_to_2024-03-14.xlsx", storage.keys[0])
	assert.Equal(t, analytics.ContentTypeXLSX, storage.contentType)
	assert.Equal(t, len("xlsx-bytes"), storage.size)
}
