package collector

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"runtime/debug"
	"time"

	"udplog/internal/externalio/file"
	"udplog/internal/global"
	"udplog/internal/logctx"
	"udplog/internal/network"
	"udplog/pkg/protocol"
)

// Largest UDP payload; anything a client sends is kept whole
const receiveBufferLength = 65535

// Pause after an unexpected socket error so a persistent fault cannot spin
const receiveErrorBackoff = 100 * time.Millisecond

// Persists datagrams until the socket is closed
func (collector *Collector) receive(ctx context.Context) {
	ctx = logctx.AppendCtxTag(ctx, global.NSListen)

	output, err := file.NewOutput(collector.Namespace, collector.cfg.LogFilePath)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Receiver stopped: %v\n", err)
		return
	}
	collector.mutex.Lock()
	collector.output = output
	collector.mutex.Unlock()

	defer func() {
		collector.mutex.Lock()
		err := collector.output.Shutdown()
		collector.output = nil
		collector.mutex.Unlock()
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"Failed to close log file: %v\n", err)
		}
	}()

	buffer := make([]byte, receiveBufferLength)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		finished := func() (finished bool) {
			defer func() {
				// Record panics and continue listening
				if fatalError := recover(); fatalError != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"panic in collector receiver thread: %v\n%s", fatalError, debug.Stack())
				}
			}()

			// Blocking until data or connection is closed by Stop
			n, remoteAddr, err := collector.conn.ReadFromUDP(buffer)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
					finished = true
					return
				}
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
					"Failed reading data from socket: %v\n", err)

				select {
				case <-ctx.Done():
				case <-time.After(receiveErrorBackoff):
				}
				return
			}

			payload := buffer[:n]
			peer := network.PeerAddrPort(remoteAddr)
			collector.Metrics.ReceivedDatagrams.Add(1)
			collector.Metrics.ReceivedBytes.Add(uint64(n))

			collector.persist(ctx, peer, payload)
			collector.forward(ctx, peer, payload)
			return
		}()
		if finished {
			return
		}
	}
}

// Records the sender as peer and appends payload verbatim, both under the mutex
func (collector *Collector) persist(ctx context.Context, peer netip.AddrPort, payload []byte) {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	collector.peer = peer
	collector.hasPeer = true

	_, err := collector.output.Write(payload)
	if err != nil {
		collector.Metrics.WriteFailures.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed to persist %d bytes from %s: %v\n", len(payload), peer, err)
		return
	}

	logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
		"Persisted %d bytes from %s\n", len(payload), peer)
}

// Sends record datagrams on to the beats server, when one is configured
func (collector *Collector) forward(ctx context.Context, peer netip.AddrPort, payload []byte) {
	if collector.forwarder == nil {
		return
	}

	msg := protocol.Decode(payload)
	if msg.Kind != protocol.KindRecord {
		return
	}

	sent, err := collector.forwarder.Write(*msg.Record, peer)
	if err != nil {
		collector.Metrics.ForwardFailures.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "%v\n", err)
		return
	}
	collector.Metrics.ForwardedRecords.Add(uint64(sent))
}
