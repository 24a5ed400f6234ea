package metrics

import (
	"context"
	"strings"
	"testing"
	"time"
)

func counter(name string, ns []string, ts time.Time, raw uint64) Metric {
	return Metric{
		Name:      name,
		Namespace: ns,
		Type:      Counter,
		Timestamp: ts,
		Value:     MetricValue{Raw: raw, Unit: "count", Interval: time.Minute},
	}
}

func setupRegistry(t *testing.T) (registry *Registry, slices []time.Time) {
	t.Helper()

	registry = New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	listener := []string{"Collector", "Listener"}
	console := []string{"Collector", "Console"}

	for i := 0; i < 3; i++ {
		ts := registry.NewTimeSlice(base.Add(time.Duration(i)*time.Minute), time.Minute)
		registry.Add(ts, []Metric{
			counter("received_datagrams", listener, ts, uint64(10*(i+1))),
			counter("commands_sent", console, ts, uint64(i)),
		})
		slices = append(slices, ts)
	}
	return
}

func TestRegistry_Search(t *testing.T) {
	registry, slices := setupRegistry(t)

	tests := []struct {
		name      string
		metric    string
		namespace []string
		start     time.Time
		end       time.Time
		wantCount int
	}{
		{name: "everything", wantCount: 6},
		{name: "by name", metric: "received_datagrams", wantCount: 3},
		{name: "by namespace prefix", namespace: []string{"Collector"}, wantCount: 6},
		{name: "by exact namespace", namespace: []string{"Collector", "Console"}, wantCount: 3},
		{name: "namespace longer than stored", namespace: []string{"Collector", "Console", "X"}, wantCount: 0},
		{name: "window start", start: slices[1], wantCount: 4},
		{name: "window end", end: slices[0], wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.Search(tt.metric, tt.namespace, tt.start, tt.end)
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d metrics, got %d: %v", tt.wantCount, len(got), got)
			}
		})
	}

	// Oldest first
	got := registry.Search("received_datagrams", nil, time.Time{}, time.Time{})
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.Before(got[i-1].Timestamp) {
			t.Fatalf("results not ordered by time: %v", got)
		}
	}
}

func TestRegistry_Latest(t *testing.T) {
	registry, _ := setupRegistry(t)

	got := registry.Latest([]string{"Collector"})
	if len(got) != 2 {
		t.Fatalf("expected 2 metrics from newest slice, got %d", len(got))
	}
	if got[0].Name != "commands_sent" {
		t.Fatalf("expected console metric first, got %+v", got[0])
	}
	if got[1].Name != "received_datagrams" || got[1].Value.Raw != uint64(30) {
		t.Fatalf("unexpected newest listener metric: %+v", got[1])
	}

	if empty := New().Latest(nil); len(empty) != 0 {
		t.Fatalf("expected nothing from empty registry, got %v", empty)
	}
}

func TestRegistry_Prune(t *testing.T) {
	registry, slices := setupRegistry(t)

	registry.Prune(slices[2].Add(30*time.Second), 2*time.Minute)

	got := registry.Search("", nil, time.Time{}, time.Time{})
	if len(got) != 4 {
		t.Fatalf("expected 2 slices (4 metrics) after prune, got %d", len(got))
	}
	for _, m := range got {
		if m.Timestamp.Before(slices[1]) {
			t.Fatalf("unexpected old metric timestamp: %v", m.Timestamp)
		}
	}
}

func TestRegistry_AddWithoutSlice(t *testing.T) {
	registry := New()
	registry.Add(time.Now(), []Metric{counter("x", []string{"A"}, time.Now(), 1)})

	if got := registry.Search("", nil, time.Time{}, time.Time{}); len(got) != 0 {
		t.Fatalf("metrics added to unknown slice were stored: %v", got)
	}
}

func TestMetricString(t *testing.T) {
	m := counter("received_datagrams", []string{"Collector", "Listener"}, time.Now(), 12)
	m.Value.Interval = 15 * time.Second

	got := m.String()
	want := "Collector/Listener received_datagrams = 12 count (15s)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type staticSource struct{ calls int }

func (source *staticSource) CollectMetrics(interval time.Duration) []Metric {
	source.calls++
	return []Metric{counter("calls", []string{"Test"}, time.Now(), uint64(source.calls))}
}

func TestGatherer_Collect(t *testing.T) {
	source := &staticSource{}
	gatherer := NewGatherer(time.Minute, 90*time.Second, source)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		gatherer.Collect(context.Background(), base.Add(time.Duration(i)*time.Minute))
	}

	got := gatherer.Registry.Search("calls", nil, time.Time{}, time.Time{})
	if len(got) != 2 {
		t.Fatalf("expected retention to keep 2 slices, got %d", len(got))
	}
	if latest := gatherer.Registry.Latest(nil); len(latest) != 1 || latest[0].Value.Raw != uint64(4) {
		t.Fatalf("unexpected latest metrics: %v", latest)
	}
	if !strings.HasPrefix(got[0].String(), "Test calls = 3") {
		t.Fatalf("unexpected oldest retained metric: %s", got[0])
	}
}
