package models

// MetricKey is one of the six ADASS metric keys.
type MetricKey string

const (
	MetricS  MetricKey = "S"
	MetricAC MetricKey = "AC"
	MetricPR MetricKey = "PR"
	MetricC  MetricKey = "C"
	MetricI  MetricKey = "I"
	MetricA  MetricKey = "A"
)

// MandatoryMetrics are the keys a vector must supply; internal/adass logs
// missing ones and leaves them unassigned, so they score as 0.
var MandatoryMetrics = []MetricKey{MetricC, MetricI, MetricA}

// IsValidMetricKey reports whether k is one of the six recognized keys.
func IsValidMetricKey(k string) bool {
	switch MetricKey(k) {
	case MetricS, MetricAC, MetricPR, MetricC, MetricI, MetricA:
		return true
	default:
		return false
	}
}
