package beats

import (
	"time"

	"udplog/internal/metrics"
)

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	sent := mod.metrics.SentEvents.Swap(0)
	failures := mod.metrics.SendErrors.Swap(0)

	recordTime := time.Now()
	collection = []metrics.Metric{
		metrics.NewCounter(mod.Namespace, "sent_events_total", "Records acknowledged by the beats server in the interval", sent, "count", interval, recordTime),
		metrics.NewCounter(mod.Namespace, "send_errors_total", "Failed sends to the beats server in the interval", failures, "count", interval, recordTime),
	}
	return
}
