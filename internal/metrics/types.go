package metrics

import (
	"sync"
	"time"
)

type Registry struct {
	mu      sync.RWMutex
	metrics map[time.Time]map[string]map[string]Metric // key0=time slice, key1=namespace, key2=name
}

type MetricType string

const (
	Counter MetricType = "counter" // total within the interval
	Gauge   MetricType = "gauge"   // point in time value
	Summary MetricType = "summary" // avg/max
)

// Container for a metric and associated data
type Metric struct {
	Name        string // e.g. received_datagrams
	Description string
	Namespace   []string // e.g. "Collector/Listener"
	Value       MetricValue
	Type        MetricType
	Timestamp   time.Time // time when the metric was recorded
}

// Specific value of a metric
type MetricValue struct {
	Raw      any           // uint64, float64
	Unit     string        // e.g. "bytes", "count"
	Interval time.Duration // measurement window
}

// Anything that can report its counters for one interval
type Collector interface {
	CollectMetrics(interval time.Duration) (collection []Metric)
}
