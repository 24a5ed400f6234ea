package client

import (
	"time"

	"udplog/internal/metrics"
)

// Reads and clears the client counters
func (client *Client) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	sent := client.Metrics.SentRecords.Swap(0)
	sentBytes := client.Metrics.SentBytes.Swap(0)
	filtered := client.Metrics.FilteredRecords.Swap(0)
	oversize := client.Metrics.OversizeRecords.Swap(0)
	failures := client.Metrics.SendFailures.Swap(0)
	commands := client.Metrics.AppliedCommands.Swap(0)
	ignored := client.Metrics.IgnoredPackets.Swap(0)

	recordTime := time.Now()
	ns := client.Namespace

	collection = []metrics.Metric{
		metrics.NewCounter(ns, "sent_records_total", "Records handed to the socket in the interval", sent, "count", interval, recordTime),
		metrics.NewCounter(ns, "sent_bytes_total", "Bytes of record data sent in the interval", sentBytes, "bytes", interval, recordTime),
		metrics.NewCounter(ns, "filtered_records_total", "Records below the threshold in the interval", filtered, "count", interval, recordTime),
		metrics.NewCounter(ns, "oversize_records_total", "Records dropped for exceeding the buffer in the interval", oversize, "count", interval, recordTime),
		metrics.NewCounter(ns, "send_failures_total", "Failed socket writes in the interval", failures, "count", interval, recordTime),
		metrics.NewCounter(ns, "applied_commands_total", "Threshold commands applied in the interval", commands, "count", interval, recordTime),
		metrics.NewCounter(ns, "ignored_packets_total", "Received datagrams that were not commands in the interval", ignored, "count", interval, recordTime),
	}
	return
}
