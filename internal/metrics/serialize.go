package metrics

import (
	"fmt"
	"strings"
)

// One line console rendering, e.g. "Collector/Listener received_datagrams = 12 count (15s)"
func (metric Metric) String() (text string) {
	text = fmt.Sprintf("%s %s = %v %s",
		strings.Join(metric.Namespace, "/"),
		metric.Name,
		metric.Value.Raw,
		metric.Value.Unit)
	if metric.Value.Interval > 0 {
		text += " (" + metric.Value.Interval.String() + ")"
	}
	return
}
