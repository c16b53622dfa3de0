package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
)

func TestToPerformanceDTOs_RedondeaPorcentajesAUnDecimal(t *testing.T) {
	rows := []engine.SalesPersonPerformance{{
		SalesPersonID:   "a",
		Name:            "Ana",
		Revenue:         decimal.RequireFromString("10.005"),
		AverageDealSize: decimal.RequireFromString("3.3349"),
		ConversionRate:  100.0 / 3,
		Efficiency:      200.0 / 3,
	}}

	out := toPerformanceDTOs(rows)
	require.Len(t, out, 1)
	assert.Equal(t, 33.3, out[0].ConversionRate)
	assert.Equal(t, 66.7, out[0].Efficiency)
	assert.Equal(t, "10.01", out[0].Revenue.StringFixed(2))
	assert.Equal(t, "3.33", out[0].AverageDealSize.StringFixed(2))
}
