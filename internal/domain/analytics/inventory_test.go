package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestStockStatus_Umbrales(t *testing.T) {
	cases := map[int]string{
		0:  analytics.StockOut,
		1:  analytics.StockLow,
		5:  analytics.StockLow,
		6:  analytics.StockIn,
		50: analytics.StockIn,
	}
	for qty, want := range cases {
		assert.Equal(t, want, analytics.StockStatus(qty), "cantidad %d", qty)
	}
	assert.Equal(t, "Low Stock", analytics.StockStatus(5))
	assert.Equal(t, "In Stock", analytics.StockStatus(6))
	assert.Equal(t, "Out of Stock", analytics.StockStatus(0))
}

func inventoryFixture() []entity.Product {
	return []entity.Product{
		product("p1", "b1", "Acme", "Radio Portátil", "RX-100", 5),
		product("p2", "b1", "Acme", "Parlante", "SPK-9", 0),
		product("p3", "b2", "Zeta", "radio de auto", "CAR-1", 12),
	}
}

func TestProductFilter(t *testing.T) {
	products := inventoryFixture()

	byName := analytics.FilterProducts(products, analytics.ProductFilter{Search: "RADIO"})
	assert.Len(t, byName, 2)

	byModel := analytics.FilterProducts(products, analytics.ProductFilter{Search: "spk"})
	assert.Len(t, byModel, 1)
	assert.Equal(t, "p2", byModel[0].ID)

	both := analytics.FilterProducts(products, analytics.ProductFilter{Search: "radio", BrandID: "b2"})
	assert.Len(t, both, 1)
	assert.Equal(t, "p3", both[0].ID)

	// El nombre de marca no participa en la búsqueda.
	assert.Empty(t, analytics.FilterProducts(products, analytics.ProductFilter{Search: "zeta"}))

	assert.Len(t, analytics.FilterProducts(products, analytics.ProductFilter{}), 3)
}

func TestComputeInventoryMetrics(t *testing.T) {
	products := inventoryFixture()
	sales := []entity.SaleEntry{
		sale("p1", "2024-03-01", 3),
		sale("p2", "2024-03-02", 2),
		sale("p3", "2024-03-02", 10),
	}

	m := analytics.ComputeInventoryMetrics(products, sales, analytics.ProductFilter{BrandID: "b1"})

	assert.Equal(t, 2, m.TotalProducts)
	assert.Equal(t, 5, m.TotalStock)
	assert.Equal(t, 1, m.OutOfStock)
	assert.Equal(t, 1, m.LowStock)
	assert.Equal(t, 0, m.InStock)
	assert.Equal(t, 5, m.TotalSold, "solo ventas de productos filtrados")
	assert.Equal(t, "50.0", m.StockTurnover)
}

func TestComputeInventoryMetrics_RotacionSinDatos(t *testing.T) {
	products := []entity.Product{product("p1", "b1", "Acme", "Radio", "R", 0)}

	m := analytics.ComputeInventoryMetrics(products, nil, analytics.ProductFilter{})
	assert.Equal(t, "0.0", m.StockTurnover)
	assert.Equal(t, 1, m.OutOfStock)

	empty := analytics.ComputeInventoryMetrics(nil, nil, analytics.ProductFilter{})
	assert.Equal(t, "0.0", empty.StockTurnover)
}

func TestComputeInventoryMetrics_RotacionRedondeada(t *testing.T) {
	products := []entity.Product{product("p1", "b1", "Acme", "Radio", "R", 2)}
	sales := []entity.SaleEntry{sale("p1", "2024-03-01", 1)}

	m := analytics.ComputeInventoryMetrics(products, sales, analytics.ProductFilter{})
	assert.Equal(t, "33.3", m.StockTurnover)
}
