package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestComputeSalesMetrics_ClienteMixtoCuentaEnAmbos(t *testing.T) {
	customers := []entity.Customer{
		customer("1", "sp1", "Ana", completed("2024-03-01", 1000), rejected("2024-03-02")),
	}

	m := analytics.ComputeSalesMetrics(customers, now)

	assert.Equal(t, 1, m.TotalCustomers)
	assert.Equal(t, 1, m.CompletedSales)
	assert.Equal(t, 1, m.RejectedSales)
	assert.Equal(t, 0, m.PendingSales)
	assert.True(t, m.TotalRevenue.Equal(dec("1000")))
}

func TestComputeSalesMetrics_Conteos(t *testing.T) {
	customers := []entity.Customer{
		customer("1", "sp1", "Ana", completed("2024-03-01", 1000), completed("2024-03-10", 500)),
		customer("2", "sp1", "Ana", rejected("2024-03-15")),
		customer("3", "sp2", "Luis", pending("2024-03-15"), pending("2024-03-14")),
		customer("4", "sp2", "Luis"),
		customer("5", "sp2", "Luis", completedNoAmount("2024-03-05")),
	}

	m := analytics.ComputeSalesMetrics(customers, now)

	assert.Equal(t, 5, m.TotalCustomers)
	assert.Equal(t, 2, m.CompletedSales, "un cliente con dos completados cuenta una vez")
	assert.Equal(t, 1, m.RejectedSales)
	assert.Equal(t, 2, m.PendingSales, "sin seguimientos también es pendiente")
	assert.Equal(t, 2, m.TodayFollowUps)
	assert.True(t, m.TotalRevenue.Equal(dec("1500")))
	assert.Equal(t, 2, m.RevenueDeals, "monto ausente no cuenta como negocio")
	assert.True(t, m.AverageDealSize.Equal(dec("750")))
	assert.Equal(t, "40.0", m.ConversionRate)
	assert.Equal(t, "20.0", m.RejectionRate)
}

func TestComputeSalesMetrics_SinClientes(t *testing.T) {
	m := analytics.ComputeSalesMetrics(nil, now)

	assert.Equal(t, "0.0", m.ConversionRate)
	assert.Equal(t, "0.0", m.RejectionRate)
	assert.True(t, m.AverageDealSize.IsZero())
	assert.True(t, m.TotalRevenue.IsZero())
}

func TestComputeSalesMetrics_RedondeoUnDecimal(t *testing.T) {
	build := func(total, done int) []entity.Customer {
		out := make([]entity.Customer, 0, total)
		for i := 0; i < total; i++ {
			if i < done {
				out = append(out, customer("c", "sp", "Ana", completed("2024-03-01", 10)))
				continue
			}
			out = append(out, customer("c", "sp", "Ana"))
		}
		return out
	}

	assert.Equal(t, "33.3", analytics.ComputeSalesMetrics(build(3, 1), now).ConversionRate)
	assert.Equal(t, "66.7", analytics.ComputeSalesMetrics(build(3, 2), now).ConversionRate)
	assert.Equal(t, "12.5", analytics.ComputeSalesMetrics(build(8, 1), now).ConversionRate)
	assert.Equal(t, "6.3", analytics.ComputeSalesMetrics(build(16, 1), now).ConversionRate, "6.25 redondea hacia arriba")
	assert.Equal(t, "100.0", analytics.ComputeSalesMetrics(build(2, 2), now).ConversionRate)
}

func TestComputeSalesMetrics_PendienteEsComplemento(t *testing.T) {
	customers := []entity.Customer{
		customer("1", "sp", "Ana", completed("2024-03-01", 1), rejected("2024-03-01")),
		customer("2", "sp", "Ana", completed("2024-03-01", 1)),
		customer("3", "sp", "Ana", rejected("2024-03-01")),
		customer("4", "sp", "Ana", pending("2024-03-01")),
	}

	m := analytics.ComputeSalesMetrics(customers, now)

	withOutcome := 0
	for _, c := range customers {
		for _, f := range c.FollowUps {
			if f.IsCompleted() || f.IsRejected() {
				withOutcome++
				break
			}
		}
	}
	assert.Equal(t, m.TotalCustomers-withOutcome, m.PendingSales)
}

func TestComputeSalesMetrics_Idempotente(t *testing.T) {
	customers := []entity.Customer{
		customer("1", "sp1", "Ana", completed("2024-03-01", 1000), rejected("2024-03-02")),
		customer("2", "sp1", "Ana", completed("2024-03-15", 333)),
	}

	assert.Equal(t, analytics.ComputeSalesMetrics(customers, now), analytics.ComputeSalesMetrics(customers, now))
}
