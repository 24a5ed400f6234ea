package metrics

import (
	"sort"
	"strings"
	"time"
)

// Supports exact match or prefix match. Empty query matches all.
func matchesNamespace(metricNS, queryNS []string) (matches bool) {
	if len(metricNS) < len(queryNS) {
		return
	}
	for i := range queryNS {
		if metricNS[i] != queryNS[i] {
			return
		}
	}
	matches = true
	return
}

// Returns all metrics matching name and namespace prefix, oldest slice first.
// Empty name or prefix matches everything; zero start/end leave the window open.
func (registry *Registry) Search(name string, namespacePrefix []string, start, end time.Time) (results []Metric) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	var timestamps []time.Time
	for ts := range registry.metrics {
		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && ts.After(end) {
			continue
		}
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})

	for _, ts := range timestamps {
		results = append(results, registry.collect(ts, name, namespacePrefix)...)
	}
	return
}

// Metrics from the newest time slice only
func (registry *Registry) Latest(namespacePrefix []string) (results []Metric) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	var newest time.Time
	for ts := range registry.metrics {
		if ts.After(newest) {
			newest = ts
		}
	}
	if newest.IsZero() {
		return
	}
	results = registry.collect(newest, "", namespacePrefix)
	return
}

// Caller holds the read lock. Output sorted by namespace then name.
func (registry *Registry) collect(ts time.Time, name string, namespacePrefix []string) (results []Metric) {
	for nsStr, metricsMap := range registry.metrics[ts] {
		if !matchesNamespace(strings.Split(nsStr, "/"), namespacePrefix) {
			continue
		}
		for metricName, metric := range metricsMap {
			if name == "" || metricName == name {
				results = append(results, metric)
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		nsI := strings.Join(results[i].Namespace, "/")
		nsJ := strings.Join(results[j].Namespace, "/")
		if nsI != nsJ {
			return nsI < nsJ
		}
		return results[i].Name < results[j].Name
	})
	return
}
