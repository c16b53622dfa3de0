package analytics

import (
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Umbrales fijos de negocio.
const lowStockMax = 5

// Etiquetas de estado de stock.
const (
	StockOut = "Out of Stock"
	StockLow = "Low Stock"
	StockIn  = "In Stock"
)

// StockStatus clasifica una cantidad: 0 agotado, 1-5 bajo, >5 disponible.
func StockStatus(quantity int) string {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= lowStockMax:
		return StockLow
	default:
		return StockIn
	}
}

// ProductFilter búsqueda por nombre o modelo (subcadena, sin mayúsculas) y marca exacta.
// Campos vacíos no restringen; ambos criterios se combinan con AND.
type ProductFilter struct {
	Search  string
	BrandID string
}

// Match indica si el producto pasa el filtro.
func (f ProductFilter) Match(p entity.Product) bool {
	if f.BrandID != "" && p.BrandID != f.BrandID {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.ModelNumber), q)
}

// FilterProducts devuelve los productos que pasan el filtro, en el mismo orden.
func FilterProducts(products []entity.Product, f ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// InventoryMetrics resumen de stock del conjunto filtrado.
type InventoryMetrics struct {
	TotalProducts int
	TotalStock    int
	OutOfStock    int
	LowStock      int
	InStock       int
	TotalSold     int
	StockTurnover string // vendidos / (stock + vendidos) * 100, un decimal
}

// ComputeInventoryMetrics aplica el filtro y une las ventas por producto.
func ComputeInventoryMetrics(products []entity.Product, sales []entity.SaleEntry, f ProductFilter) InventoryMetrics {
	narrowed := FilterProducts(products, f)
	ids := productIDSet(narrowed)

	m := InventoryMetrics{TotalProducts: len(narrowed)}
	for _, p := range narrowed {
		m.TotalStock += p.Quantity
		switch StockStatus(p.Quantity) {
		case StockOut:
			m.OutOfStock++
		case StockLow:
			m.LowStock++
		default:
			m.InStock++
		}
	}
	for _, s := range sales {
		if _, ok := ids[s.ProductID]; ok {
			m.TotalSold += s.QuantitySold
		}
	}
	m.StockTurnover = percentString(m.TotalSold, m.TotalStock+m.TotalSold)
	return m
}

func productIDSet(products []entity.Product) map[string]struct{} {
	ids := make(map[string]struct{}, len(products))
	for _, p := range products {
		ids[p.ID] = struct{}{}
	}
	return ids
}
