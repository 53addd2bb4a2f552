package synth

import "fmt"

// DailyMetric is one day of synthetic business metrics.
type DailyMetric struct {
	Date           string  `json:"date"`
	TotalUsers     int     `json:"total_users"`
	ActiveSessions int     `json:"active_sessions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MetricDays is the number of daily records a run produces.
const MetricDays = 7

// GenerateDailyMetrics produces MetricDays records for the fixed month
// 2024-01, days 1 through MetricDays.
func GenerateDailyMetrics(src *Source) []DailyMetric {
	metrics := make([]DailyMetric, 0, MetricDays)
	for day := 1; day <= MetricDays; day++ {
		metrics = append(metrics, DailyMetric{
			Date:           fmt.Sprintf("2024-01-%02d", day),
			TotalUsers:     src.IntRange(100, 1000),
			ActiveSessions: src.IntRange(50, 500),
			Revenue:        Round2(src.FloatRange(1000.0, 10000.0)),
			ConversionRate: Round2(src.FloatRange(1.0, 10.0)),
		})
	}
	return metrics
}
