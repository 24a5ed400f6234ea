package metrics

import (
	"context"
	"runtime/debug"
	"time"

	"udplog/internal/global"
	"udplog/internal/logctx"
)

// Periodically reads counters from sources into a registry
type Gatherer struct {
	Registry  *Registry
	Sources   []Collector
	Interval  time.Duration
	Retention time.Duration
}

func NewGatherer(interval time.Duration, retention time.Duration, sources ...Collector) (new *Gatherer) {
	new = &Gatherer{
		Registry:  New(),
		Sources:   sources,
		Interval:  interval,
		Retention: retention,
	}
	return
}

// Blocks until ctx is cancelled
func (gatherer *Gatherer) Run(ctx context.Context) {
	ctx = logctx.AppendCtxTag(ctx, global.NSMetric)

	ticker := time.NewTicker(gatherer.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			gatherer.Collect(ctx, now)
		}
	}
}

// Records one interval worth of metrics from every source and drops expired slices
func (gatherer *Gatherer) Collect(ctx context.Context, now time.Time) {
	defer func() {
		if fatalError := recover(); fatalError != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in metric collector thread: %v\n%s", fatalError, debug.Stack())
		}
	}()

	timeSlice := gatherer.Registry.NewTimeSlice(now, gatherer.Interval)
	for _, source := range gatherer.Sources {
		gatherer.Registry.Add(timeSlice, source.CollectMetrics(gatherer.Interval))
	}
	gatherer.Registry.Prune(now, gatherer.Retention)
}
