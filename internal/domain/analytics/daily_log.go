package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// FollowUpSale venta cerrada desde un seguimiento.
type FollowUpSale struct {
	CustomerName string
	Mobile       string
	Amount       decimal.Decimal
	SalesPerson  string
	Remarks      string
	Location     string
}

// InventorySale venta de mostrador con el producto resuelto.
type InventorySale struct {
	CustomerName string
	ProductName  string
	BrandName    string
	ModelNumber  string
	QuantitySold int
	BillNumber   *string
	Description  string
}

// DaySales bucket de un día calendario.
type DaySales struct {
	Date                string
	TotalAmount         decimal.Decimal // solo seguimientos
	FollowUpSalesCount  int
	InventorySalesCount int
	SalesPersons        []string // nombres distintos, en orden de aparición
	FollowUpSales       []FollowUpSale
	InventorySales      []InventorySale
}

// DailyLogRequest rango de días inclusive y filtros.
type DailyLogRequest struct {
	Start         time.Time
	End           time.Time
	SalesPersonID string
	SalesType     SalesType
}

type dayBucket struct {
	DaySales
	seen map[string]struct{}
}

func (b *dayBucket) addSalesPerson(name string) {
	if _, ok := b.seen[name]; ok {
		return
	}
	b.seen[name] = struct{}{}
	b.SalesPersons = append(b.SalesPersons, name)
}

// BuildDailyLog une ventas de seguimiento y de inventario por día, del más reciente al más antiguo.
// Con vendedor seleccionado se excluyen todas las ventas de inventario (no tienen vendedor).
func BuildDailyLog(customers []entity.Customer, sales []entity.SaleEntry, products []entity.Product, req DailyLogRequest) []DaySales {
	from, to := DayKey(req.Start), DayKey(req.End)
	inRange := func(key string) bool { return key >= from && key <= to }

	buckets := make(map[string]*dayBucket)
	bucket := func(key string) *dayBucket {
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{
				DaySales: DaySales{
					Date:           key,
					TotalAmount:    decimal.Zero,
					SalesPersons:   []string{},
					FollowUpSales:  []FollowUpSale{},
					InventorySales: []InventorySale{},
				},
				seen: make(map[string]struct{}),
			}
			buckets[key] = b
		}
		return b
	}

	for _, c := range customers {
		if req.SalesPersonID != "" && c.SalesPersonID != req.SalesPersonID {
			continue
		}
		for _, f := range c.FollowUps {
			amount, ok := f.Revenue()
			if !ok {
				continue
			}
			key := DayKey(f.Date)
			if !inRange(key) {
				continue
			}
			b := bucket(key)
			b.FollowUpSales = append(b.FollowUpSales, FollowUpSale{
				CustomerName: c.Name,
				Mobile:       c.Mobile,
				Amount:       amount,
				SalesPerson:  c.SalesPersonName,
				Remarks:      f.Remarks,
				Location:     c.Location,
			})
			b.TotalAmount = b.TotalAmount.Add(amount)
			b.FollowUpSalesCount++
			b.addSalesPerson(c.SalesPersonName)
		}
	}

	if req.SalesPersonID == "" {
		byID := make(map[string]entity.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		for _, s := range sales {
			key := DayKey(s.SaleDate)
			if !inRange(key) {
				continue
			}
			name, brand, model := UnknownProduct, UnknownBrand, ""
			if p, ok := byID[s.ProductID]; ok {
				name, brand, model = p.Name, brandName(p), p.ModelNumber
			}
			b := bucket(key)
			b.InventorySales = append(b.InventorySales, InventorySale{
				CustomerName: s.CustomerName,
				ProductName:  name,
				BrandName:    brand,
				ModelNumber:  model,
				QuantitySold: s.QuantitySold,
				BillNumber:   s.BillNumber,
				Description:  saleDescription(s.QuantitySold, brand, name, model),
			})
			b.InventorySalesCount++
		}
	}

	days := make([]DaySales, 0, len(buckets))
	for _, b := range buckets {
		switch req.SalesType {
		case SalesTypeFollowUp:
			if b.FollowUpSalesCount == 0 {
				continue
			}
		case SalesTypeInventory:
			if b.InventorySalesCount == 0 {
				continue
			}
		}
		days = append(days, b.DaySales)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days
}

func saleDescription(qty int, brand, name, model string) string {
	if model == "" {
		return fmt.Sprintf("Sold %d x %s %s", qty, brand, name)
	}
	return fmt.Sprintf("Sold %d x %s %s (%s)", qty, brand, name, model)
}
