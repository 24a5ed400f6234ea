package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"udplog/internal/metrics"
	"udplog/pkg/protocol"
)

type fakeOps struct {
	levels   []protocol.Level
	levelErr error
	logText  string
	logErr   error
	stats    []metrics.Metric
}

func (ops *fakeOps) SetRemoteLevel(level protocol.Level) error {
	if ops.levelErr != nil {
		return ops.levelErr
	}
	ops.levels = append(ops.levels, level)
	return nil
}

func (ops *fakeOps) WriteLog(w io.Writer) error {
	if ops.logErr != nil {
		return ops.logErr
	}
	_, err := io.WriteString(w, ops.logText)
	return err
}

func (ops *fakeOps) Stats() []metrics.Metric {
	return ops.stats
}

func TestRun(t *testing.T) {
	stat := metrics.Metric{
		Name:      "received_datagrams_total",
		Namespace: []string{"Collector"},
		Value:     metrics.MetricValue{Raw: uint64(3), Unit: "count", Interval: 15 * time.Second},
	}

	tests := []struct {
		name       string
		input      string
		ops        *fakeOps
		wantLevels []protocol.Level
		wantOut    []string
		notOut     []string
	}{
		{
			name:       "set level by number",
			input:      "1\n2\n0\n",
			ops:        &fakeOps{},
			wantLevels: []protocol.Level{protocol.LevelError},
			wantOut:    []string{"Client log level set to ERROR"},
		},
		{
			name:       "set level by name",
			input:      "1\ncritical\n0\n",
			ops:        &fakeOps{},
			wantLevels: []protocol.Level{protocol.LevelCritical},
		},
		{
			name:    "invalid level reprompts menu",
			input:   "1\n7\n1\nloud\n0\n",
			ops:     &fakeOps{},
			wantOut: []string{"Invalid log level '7'", "Invalid log level 'loud'"},
		},
		{
			name:    "no peer reported",
			input:   "1\n0\n0\n",
			ops:     &fakeOps{levelErr: errors.New("no client address known")},
			wantOut: []string{"Failed to set client log level: no client address known"},
		},
		{
			name:    "dump log",
			input:   "2\n0\n",
			ops:     &fakeOps{logText: "line one\nline two\n"},
			wantOut: []string{"line one\nline two\n"},
		},
		{
			name:    "dump log failure",
			input:   "2\n0\n",
			ops:     &fakeOps{logErr: errors.New("missing")},
			wantOut: []string{"Failed to dump log file: missing"},
		},
		{
			name:    "statistics",
			input:   "3\n0\n",
			ops:     &fakeOps{stats: []metrics.Metric{stat}},
			wantOut: []string{"Collector received_datagrams_total = 3 count (15s)"},
		},
		{
			name:    "no statistics",
			input:   "3\n0\n",
			ops:     &fakeOps{},
			wantOut: []string{"No statistics collected yet"},
		},
		{
			name:    "invalid selection",
			input:   "9\n\n0\n",
			ops:     &fakeOps{},
			wantOut: []string{"Invalid selection '9'"},
		},
		{
			name:    "input ends without shutdown selection",
			input:   "3\n",
			ops:     &fakeOps{},
			wantOut: []string{"No statistics collected yet"},
		},
		{
			name:   "nothing after shutdown is processed",
			input:  "0\n3\n",
			ops:    &fakeOps{},
			notOut: []string{"No statistics collected yet"},
		},
		{
			name:   "non terminal input prints no menu",
			input:  "0\n",
			ops:    &fakeOps{},
			notOut: []string{"Selection:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), strings.NewReader(tt.input), &out, tt.ops)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tt.ops.levels) != len(tt.wantLevels) {
				t.Fatalf("levels sent %v, want %v", tt.ops.levels, tt.wantLevels)
			}
			for i := range tt.wantLevels {
				if tt.ops.levels[i] != tt.wantLevels[i] {
					t.Fatalf("levels sent %v, want %v", tt.ops.levels, tt.wantLevels)
				}
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("output missing %q:\n%s", want, out.String())
				}
			}
			for _, unwanted := range tt.notOut {
				if strings.Contains(out.String(), unwanted) {
					t.Fatalf("output unexpectedly contains %q:\n%s", unwanted, out.String())
				}
			}
		})
	}
}

func TestRun_Prompts(t *testing.T) {
	var out bytes.Buffer
	console := &session{
		in:     strings.NewReader("1\n3\n0\n"),
		out:    &out,
		ops:    &fakeOps{},
		prompt: true,
	}

	if err := console.run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "Selection: "); got != 2 {
		t.Fatalf("expected menu twice, got %d:\n%s", got, out.String())
	}
	if !strings.Contains(out.String(), "Log level (0-3") {
		t.Fatalf("level prompt missing:\n%s", out.String())
	}
}

// Input that never produces a line, like an idle terminal
type blockingReader struct{ release chan struct{} }

func (reader blockingReader) Read(p []byte) (int, error) {
	<-reader.release
	return 0, io.EOF
}

func TestRun_ContextCancel(t *testing.T) {
	reader := blockingReader{release: make(chan struct{})}
	defer close(reader.release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, reader, io.Discard, &fakeOps{})
	}()

	time.Sleep(50 * time.Millisecond)
	start := time.Now()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
			t.Fatalf("console took %v to notice cancel", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("console did not return after cancel")
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRun_ReadError(t *testing.T) {
	err := Run(context.Background(), failingReader{}, io.Discard, &fakeOps{})
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Fatalf("expected read error, got %v", err)
	}
}
