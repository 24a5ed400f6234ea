// Time sliced in-memory storage for collector and client counters
package metrics

import "time"

// Creates new metric registry storage
func New() (new *Registry) {
	new = &Registry{
		metrics: make(map[time.Time]map[string]map[string]Metric),
	}
	return
}

// Builds a counter metric for one collection interval
func NewCounter(namespace []string, name string, description string, raw uint64, unit string, interval time.Duration, recordTime time.Time) (metric Metric) {
	metric = Metric{
		Name:        name,
		Description: description,
		Namespace:   namespace,
		Value: MetricValue{
			Raw:      raw,
			Unit:     unit,
			Interval: interval,
		},
		Type:      Counter,
		Timestamp: recordTime,
	}
	return
}
