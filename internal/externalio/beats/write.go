package beats

import (
	"fmt"
	"net/netip"
	"os"

	"udplog/internal/global"
	"udplog/pkg/protocol"
)

// Sends one record received from peer. Blocks until the server acknowledges.
func (mod *OutModule) Write(rec protocol.Record, peer netip.AddrPort) (logsSent int, err error) {
	if mod == nil {
		return
	}

	events := []interface{}{buildEvent(rec, peer)}

	logsSent, err = mod.sink.Send(events)
	if err != nil {
		mod.metrics.SendErrors.Add(1)
		err = fmt.Errorf("failed sending record to beats server %s: %w", mod.endpoint, err)
		return
	}
	mod.metrics.SentEvents.Add(uint64(logsSent))
	return
}

// ECS style document for a record
func buildEvent(rec protocol.Record, peer netip.AddrPort) (fields map[string]interface{}) {
	fields = map[string]interface{}{
		// Minimum required fields
		"@timestamp": rec.Timestamp,
		"message":    rec.Message,

		"log": map[string]interface{}{
			"level": rec.Level.String(),
			"origin": map[string]interface{}{
				"file": map[string]interface{}{
					"name": rec.File,
					"line": rec.Line,
				},
				"function": rec.Function,
			},
		},
		"source": map[string]interface{}{
			"ip":   peer.Addr().String(),
			"port": peer.Port(),
		},
		"agent": map[string]interface{}{
			// Meta fields identifying the collector itself
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    "filebeat",
			"pid":     os.Getpid(),
		},
	}
	return
}
