package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestComputeTopProducts(t *testing.T) {
	products := []entity.Product{
		product("p1", "b1", "Acme", "Radio", "R1", 3),
		product("p2", "", "", "Genérico", "", 0),
		product("p3", "b2", "Zeta", "Parlante", "S1", 20),
		product("p4", "b2", "Zeta", "Audífono", "H1", 7),
	}
	sales := []entity.SaleEntry{
		sale("p1", "2024-03-02", 2),
		sale("p1", "2024-02-20", 1),
		sale("p2", "2024-03-10", 5),
		sale("p3", "2024-03-11", 3),
	}

	got := analytics.ComputeTopProducts(products, sales, now)
	require.Len(t, got, 3, "productos sin ventas se excluyen")

	assert.Equal(t, "p2", got[0].ProductID)
	assert.Equal(t, analytics.UnknownBrand, got[0].BrandName)
	assert.Equal(t, analytics.StockOut, got[0].StockStatus)

	// Empate en 3: p1 y p3 mantienen el orden de la lista de productos
	assert.Equal(t, "p1", got[1].ProductID)
	assert.Equal(t, 3, got[1].TotalSold)
	assert.Equal(t, 2, got[1].ThisMonthSold)
	assert.Equal(t, analytics.StockLow, got[1].StockStatus)
	assert.Equal(t, "p3", got[2].ProductID)
	assert.Equal(t, analytics.StockIn, got[2].StockStatus)
}

func TestComputeTopProducts_MaximoDiez(t *testing.T) {
	var products []entity.Product
	var sales []entity.SaleEntry
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("p%02d", i)
		products = append(products, product(id, "b1", "Acme", "Item "+id, "", 10))
		sales = append(sales, sale(id, "2024-03-01", i))
	}

	got := analytics.ComputeTopProducts(products, sales, now)
	require.Len(t, got, 10)
	assert.Equal(t, "p12", got[0].ProductID)
	assert.Equal(t, "p03", got[9].ProductID)
}

func TestComputeBrandPerformance(t *testing.T) {
	products := []entity.Product{
		product("p1", "b1", "Acme", "Radio", "R1", 3),
		product("p2", "b2", "Zeta", "Parlante", "S1", 20),
		product("p3", "b1", "Acme", "Antena", "A1", 1),
		product("p4", "", "", "Suelto", "", 2),
	}
	sales := []entity.SaleEntry{
		sale("p1", "2024-03-02", 2),
		sale("p3", "2024-03-02", 4),
		sale("p2", "2024-03-03", 1),
	}

	got := analytics.ComputeBrandPerformance(products, sales)
	require.Len(t, got, 3)

	assert.Equal(t, "b1", got[0].BrandID)
	assert.Equal(t, 2, got[0].ProductCount)
	assert.Equal(t, 6, got[0].TotalSold)
	assert.Equal(t, 4, got[0].TotalStock)

	assert.Equal(t, "b2", got[1].BrandID)
	assert.Equal(t, analytics.UnknownBrand, got[2].BrandName)
	assert.Equal(t, 0, got[2].TotalSold)
}

func TestComputeBrandPerformance_MaximoCinco(t *testing.T) {
	var products []entity.Product
	for i := 1; i <= 7; i++ {
		id := fmt.Sprintf("b%d", i)
		products = append(products, product("p"+id, id, "Marca "+id, "Item", "", 1))
	}

	got := analytics.ComputeBrandPerformance(products, nil)
	require.Len(t, got, 5)
	assert.Equal(t, "b1", got[0].BrandID)
}

func TestStockTotal_DifiereEntreInventarioYMarcas(t *testing.T) {
	products := []entity.Product{
		product("p1", "b1", "Acme", "Radio", "R1", 3),
		product("p2", "b2", "Zeta", "Parlante", "S1", 20),
	}

	inv := analytics.ComputeInventoryMetrics(products, nil, analytics.ProductFilter{BrandID: "b1"})
	brands := analytics.ComputeBrandPerformance(products, nil)

	total := 0
	for _, b := range brands {
		total += b.TotalStock
	}
	assert.Equal(t, 3, inv.TotalStock, "inventario usa el conjunto filtrado")
	assert.Equal(t, 23, total, "marcas usan la lista completa")
}
