package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SalesPersonPerformance métricas de un vendedor sobre sus clientes asignados.
type SalesPersonPerformance struct {
	SalesPersonID   string
	Name            string
	TotalCustomers  int
	CompletedSales  int
	RejectedSales   int
	Revenue         decimal.Decimal
	ConversionRate  float64
	AverageDealSize decimal.Decimal // revenue / clientes con venta completada
	Efficiency      float64         // completados / (completados + rechazados) * 100
}

// ComputePerformance una fila por vendedor, ordenadas por revenue descendente.
// Empates conservan el orden de la lista de vendedores.
func ComputePerformance(people []entity.SalesPerson, customers []entity.Customer) []SalesPersonPerformance {
	bySalesPerson := make(map[string][]entity.Customer, len(people))
	for _, c := range customers {
		bySalesPerson[c.SalesPersonID] = append(bySalesPerson[c.SalesPersonID], c)
	}

	out := make([]SalesPersonPerformance, 0, len(people))
	for _, sp := range people {
		assigned := bySalesPerson[sp.ID]
		p := SalesPersonPerformance{
			SalesPersonID:  sp.ID,
			Name:           sp.Name,
			TotalCustomers: len(assigned),
			Revenue:        decimal.Zero,
		}
		for _, c := range assigned {
			completed, rejected := false, false
			for _, f := range c.FollowUps {
				if f.IsCompleted() {
					completed = true
				}
				if f.IsRejected() {
					rejected = true
				}
				if amount, ok := f.Revenue(); ok {
					p.Revenue = p.Revenue.Add(amount)
				}
			}
			if completed {
				p.CompletedSales++
			}
			if rejected {
				p.RejectedSales++
			}
		}
		p.ConversionRate = percentValue(p.CompletedSales, p.TotalCustomers)
		p.AverageDealSize = divOrZero(p.Revenue, p.CompletedSales)
		p.Efficiency = percentValue(p.CompletedSales, p.CompletedSales+p.RejectedSales)
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}
