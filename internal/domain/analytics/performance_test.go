package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestComputePerformance_OrdenYMetricas(t *testing.T) {
	people := []entity.SalesPerson{
		{ID: "a", Name: "Ana"},
		{ID: "b", Name: "Beto"},
		{ID: "c", Name: "Carla"},
		{ID: "d", Name: "Dani"},
	}
	customers := []entity.Customer{
		customer("1", "a", "Ana", completed("2024-03-01", 500)),
		customer("2", "a", "Ana", rejected("2024-03-02")),
		customer("3", "b", "Beto", completed("2024-03-01", 1000), completed("2024-03-03", 200)),
		customer("4", "x", "Nadie", completed("2024-03-01", 9999)),
	}

	got := analytics.ComputePerformance(people, customers)
	require.Len(t, got, 4)

	assert.Equal(t, "b", got[0].SalesPersonID)
	assert.True(t, got[0].Revenue.Equal(dec("1200")))
	assert.Equal(t, 1, got[0].CompletedSales)
	assert.Equal(t, 100.0, got[0].ConversionRate)
	assert.True(t, got[0].AverageDealSize.Equal(dec("1200")), "revenue / clientes completados")
	assert.Equal(t, 100.0, got[0].Efficiency)

	assert.Equal(t, "a", got[1].SalesPersonID)
	assert.Equal(t, 2, got[1].TotalCustomers)
	assert.Equal(t, 1, got[1].RejectedSales)
	assert.Equal(t, 50.0, got[1].ConversionRate)
	assert.Equal(t, 50.0, got[1].Efficiency)
	assert.True(t, got[1].AverageDealSize.Equal(dec("500")))

	// Empate en cero: conserva el orden de entrada (c antes que d)
	assert.Equal(t, "c", got[2].SalesPersonID)
	assert.Equal(t, "d", got[3].SalesPersonID)
	assert.Equal(t, 0.0, got[2].Efficiency)
	assert.True(t, got[2].AverageDealSize.IsZero())
}

func TestComputePerformance_ConversionNumericaExacta(t *testing.T) {
	people := []entity.SalesPerson{{ID: "a", Name: "Ana"}}
	customers := []entity.Customer{
		customer("1", "a", "Ana", completed("2024-03-01", 10)),
		customer("2", "a", "Ana"),
		customer("3", "a", "Ana", rejected("2024-03-01")),
	}

	got := analytics.ComputePerformance(people, customers)
	require.Len(t, got, 1)
	assert.InDelta(t, 100.0/3, got[0].ConversionRate, 1e-9)
	assert.Equal(t, 50.0, got[0].Efficiency)
}

func TestComputePerformance_SinVendedores(t *testing.T) {
	got := analytics.ComputePerformance(nil, []entity.Customer{customer("1", "a", "Ana")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
