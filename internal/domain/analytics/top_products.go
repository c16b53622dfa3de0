package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

const (
	topProductsLimit      = 10
	brandPerformanceLimit = 5
)

// Etiquetas de reemplazo para referencias sin resolver.
const (
	UnknownProduct = "Unknown Product"
	UnknownBrand   = "Unknown Brand"
)

// TopProduct producto con ventas acumuladas.
type TopProduct struct {
	ProductID     string
	Name          string
	BrandName     string
	ModelNumber   string
	TotalSold     int
	ThisMonthSold int
	Stock         int
	StockStatus   string
}

// ComputeTopProducts los 10 productos más vendidos sobre la lista completa (sin filtro).
// Excluye productos sin ventas.
func ComputeTopProducts(products []entity.Product, sales []entity.SaleEntry, now time.Time) []TopProduct {
	month := now.Format("2006-01")
	sold := make(map[string]int)
	soldThisMonth := make(map[string]int)
	for _, s := range sales {
		sold[s.ProductID] += s.QuantitySold
		if s.SaleDate.Format("2006-01") == month {
			soldThisMonth[s.ProductID] += s.QuantitySold
		}
	}

	out := make([]TopProduct, 0)
	for _, p := range products {
		if sold[p.ID] == 0 {
			continue
		}
		out = append(out, TopProduct{
			ProductID:     p.ID,
			Name:          p.Name,
			BrandName:     brandName(p),
			ModelNumber:   p.ModelNumber,
			TotalSold:     sold[p.ID],
			ThisMonthSold: soldThisMonth[p.ID],
			Stock:         p.Quantity,
			StockStatus:   StockStatus(p.Quantity),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSold > out[j].TotalSold })
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// BrandPerformance totales por marca.
type BrandPerformance struct {
	BrandID      string
	BrandName    string
	ProductCount int
	TotalSold    int
	TotalStock   int
}

// ComputeBrandPerformance agrupa todos los productos por marca; top 5 por unidades vendidas.
// Los grupos mantienen el orden de primera aparición en caso de empate.
func ComputeBrandPerformance(products []entity.Product, sales []entity.SaleEntry) []BrandPerformance {
	sold := make(map[string]int)
	for _, s := range sales {
		sold[s.ProductID] += s.QuantitySold
	}

	index := make(map[string]int)
	out := make([]BrandPerformance, 0)
	for _, p := range products {
		i, ok := index[p.BrandID]
		if !ok {
			i = len(out)
			index[p.BrandID] = i
			out = append(out, BrandPerformance{BrandID: p.BrandID, BrandName: brandName(p)})
		}
		out[i].ProductCount++
		out[i].TotalSold += sold[p.ID]
		out[i].TotalStock += p.Quantity
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSold > out[j].TotalSold })
	if len(out) > brandPerformanceLimit {
		out = out[:brandPerformanceLimit]
	}
	return out
}

func brandName(p entity.Product) string {
	if p.BrandName == "" {
		return UnknownBrand
	}
	return p.BrandName
}
