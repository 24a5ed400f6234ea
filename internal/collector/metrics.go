package collector

import (
	"time"

	"udplog/internal/metrics"
)

// Reads and clears the collector counters along with those of its outputs
func (collector *Collector) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	received := collector.Metrics.ReceivedDatagrams.Swap(0)
	receivedBytes := collector.Metrics.ReceivedBytes.Swap(0)
	writeFailures := collector.Metrics.WriteFailures.Swap(0)
	forwarded := collector.Metrics.ForwardedRecords.Swap(0)
	forwardFailures := collector.Metrics.ForwardFailures.Swap(0)
	commands := collector.Metrics.CommandsSent.Swap(0)

	recordTime := time.Now()
	ns := collector.Namespace

	collection = []metrics.Metric{
		metrics.NewCounter(ns, "received_datagrams_total", "Datagrams received in the interval", received, "count", interval, recordTime),
		metrics.NewCounter(ns, "received_bytes_total", "Payload bytes received in the interval", receivedBytes, "bytes", interval, recordTime),
		metrics.NewCounter(ns, "write_failures_total", "Datagrams that could not be persisted in the interval", writeFailures, "count", interval, recordTime),
		metrics.NewCounter(ns, "commands_sent_total", "Level commands sent in the interval", commands, "count", interval, recordTime),
	}
	if collector.forwarder != nil {
		collection = append(collection,
			metrics.NewCounter(ns, "forwarded_records_total", "Records forwarded to beats in the interval", forwarded, "count", interval, recordTime),
			metrics.NewCounter(ns, "forward_failures_total", "Records that failed forwarding in the interval", forwardFailures, "count", interval, recordTime),
		)
		collection = append(collection, collector.forwarder.CollectMetrics(interval)...)
	}

	collector.mutex.Lock()
	if collector.output != nil {
		collection = append(collection, collector.output.CollectMetrics(interval)...)
	}
	collector.mutex.Unlock()
	return
}

// Most recent metric snapshot, empty until the first collection interval has passed
func (collector *Collector) Stats() (snapshot []metrics.Metric) {
	if collector.gatherer == nil {
		return
	}
	snapshot = collector.gatherer.Registry.Latest(collector.Namespace)
	return
}
