package collector

import (
	"fmt"
	"io"
	"net/netip"

	"udplog/internal/externalio/file"
	"udplog/internal/global"
	"udplog/internal/lifecycle"
	"udplog/internal/logctx"
	"udplog/pkg/protocol"
)

// Sends a threshold command to the client that sent the most recent datagram
func (collector *Collector) SetRemoteLevel(level protocol.Level) (err error) {
	command, err := protocol.EncodeCommand(protocol.Command{Level: level})
	if err != nil {
		return
	}
	if collector.state.Load() != lifecycle.StateRunning {
		err = ErrNotRunning
		return
	}

	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	if !collector.hasPeer {
		err = ErrNoPeer
		return
	}

	_, err = collector.conn.WriteToUDPAddrPort(command, collector.peer)
	if err != nil {
		err = fmt.Errorf("failed to send level command to %s: %w", collector.peer, err)
		return
	}

	collector.Metrics.CommandsSent.Add(1)
	logctx.LogEvent(collector.ctx, global.VerbosityProgress, global.InfoLog,
		"Sent log level %s to %s\n", level, collector.peer)
	return
}

// Address of the last client heard from
func (collector *Collector) Peer() (peer netip.AddrPort, ok bool) {
	collector.mutex.Lock()
	peer, ok = collector.peer, collector.hasPeer
	collector.mutex.Unlock()
	return
}

// Every line persisted so far, in file order
func (collector *Collector) DumpLog() (lines []string, err error) {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	lines, err = file.ReadLines(collector.cfg.LogFilePath)
	return
}

// Copies the log file to w unchanged
func (collector *Collector) WriteLog(w io.Writer) (err error) {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	_, err = file.CopyTo(collector.cfg.LogFilePath, w)
	return
}
