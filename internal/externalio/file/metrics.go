package file

import (
	"time"

	"udplog/internal/metrics"
)

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	lines := mod.metrics.WrittenLines.Swap(0)
	bytes := mod.metrics.WrittenBytes.Swap(0)
	failures := mod.metrics.WriteErrors.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		metrics.NewCounter(mod.Namespace, "written_payloads_total", "Payloads appended to the log file in the interval", lines, "count", interval, recordTime),
		metrics.NewCounter(mod.Namespace, "written_bytes_total", "Bytes appended to the log file in the interval", bytes, "bytes", interval, recordTime),
		metrics.NewCounter(mod.Namespace, "write_errors_total", "Failed appends or syncs in the interval", failures, "count", interval, recordTime),
	}
	return
}
