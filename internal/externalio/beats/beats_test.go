package beats

import (
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/elastic/go-lumber/server/v2"

	"udplog/internal/global"
	"udplog/pkg/protocol"
)

func testRecord() protocol.Record {
	return protocol.Record{
		Timestamp: time.Date(2026, 3, 7, 9, 5, 1, 0, time.UTC),
		Level:     protocol.LevelWarning,
		File:      "a.c",
		Function:  "f",
		Line:      10,
		Message:   "tank full",
	}
}

func TestBuildEvent(t *testing.T) {
	peer := netip.MustParseAddrPort("10.1.2.3:40000")
	fields := buildEvent(testRecord(), peer)

	if fields["message"] != "tank full" {
		t.Fatalf("unexpected message field: %v", fields["message"])
	}
	if fields["@timestamp"] != testRecord().Timestamp {
		t.Fatalf("unexpected timestamp field: %v", fields["@timestamp"])
	}

	log := fields["log"].(map[string]interface{})
	if log["level"] != "WARNING" {
		t.Fatalf("unexpected level field: %v", log["level"])
	}
	origin := log["origin"].(map[string]interface{})
	if origin["function"] != "f" {
		t.Fatalf("unexpected function field: %v", origin["function"])
	}
	file := origin["file"].(map[string]interface{})
	if file["name"] != "a.c" || file["line"] != 10 {
		t.Fatalf("unexpected file fields: %v", file)
	}

	source := fields["source"].(map[string]interface{})
	if source["ip"] != "10.1.2.3" || source["port"] != uint16(40000) {
		t.Fatalf("unexpected source fields: %v", source)
	}
}

func TestNewOutput_NoEndpoint(t *testing.T) {
	mod, err := NewOutput([]string{global.NSTest}, "")
	if err != nil || mod != nil {
		t.Fatalf("expected nil module and nil error, got %v %v", mod, err)
	}
	if n, err := mod.Write(testRecord(), netip.AddrPort{}); n != 0 || err != nil {
		t.Fatalf("nil module write: %d %v", n, err)
	}
}

func TestOutModule_Write(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	srv, err := v2.NewWithListener(listener)
	if err != nil {
		t.Fatalf("failed to start beats server: %v", err)
	}
	defer srv.Close()

	received := make(chan map[string]interface{}, 1)
	go func() {
		for batch := range srv.ReceiveChan() {
			for _, event := range batch.Events {
				if fields, ok := event.(map[string]interface{}); ok {
					received <- fields
				}
			}
			batch.ACK()
		}
	}()

	mod, err := NewOutput([]string{global.NSTest}, listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer mod.Shutdown()

	sent, err := mod.Write(testRecord(), netip.MustParseAddrPort("127.0.0.1:5555"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected 1 acknowledged event, got %d", sent)
	}

	select {
	case fields := <-received:
		if fields["message"] != "tank full" {
			t.Fatalf("server received unexpected event %v", fields)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not receive the event")
	}

	values := make(map[string]uint64)
	for _, m := range mod.CollectMetrics(time.Minute) {
		values[m.Name] = m.Value.Raw.(uint64)
	}
	if values["sent_events_total"] != 1 || values["send_errors_total"] != 0 {
		t.Fatalf("unexpected metric values %v", values)
	}
}

func TestNewOutput_Unreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	if _, err := NewOutput([]string{global.NSTest}, addr); err == nil {
		t.Fatalf("expected dial error for closed endpoint")
	}
}
