package synth

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestGenerateDailyMetricsBounds(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(params)

	properties.Property("all fields stay within their ranges for any seed", prop.ForAll(
		func(seed int64) bool {
			metrics := GenerateDailyMetrics(NewSource(seed))
			if len(metrics) != MetricDays {
				return false
			}
			for i, m := range metrics {
				if m.Date != fmt.Sprintf("2024-01-%02d", i+1) {
					return false
				}
				if m.TotalUsers < 100 || m.TotalUsers > 1000 {
					return false
				}
				if m.ActiveSessions < 50 || m.ActiveSessions > 500 {
					return false
				}
				if m.Revenue < 1000.00 || m.Revenue > 10000.00 {
					return false
				}
				if m.ConversionRate < 1.00 || m.ConversionRate > 10.00 {
					return false
				}
				if m.Revenue != Round2(m.Revenue) || m.ConversionRate != Round2(m.ConversionRate) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGenerateDailyMetricsReproducible(t *testing.T) {
	a := GenerateDailyMetrics(NewSource(7))
	b := GenerateDailyMetrics(NewSource(7))
	assert.Equal(t, a, b, "same seed must produce identical output")
}

func TestGenerateDailyMetricsVariesAcrossSeeds(t *testing.T) {
	a := GenerateDailyMetrics(NewSource(1))
	b := GenerateDailyMetrics(NewSource(2))
	assert.NotEqual(t, a, b, "different seeds should not collide on full runs")
}
