package client

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"udplog/internal/global"
	"udplog/internal/logctx"
	"udplog/pkg/protocol"
)

// Emits one record to the collector. Records below the current threshold
// are discarded silently. Formatting overflow and send failures go to the
// diagnostic channel only; nothing is retried and nothing is returned.
func (client *Client) Log(level protocol.Level, file string, function string, line int, message string) {
	client.mutex.Lock()
	defer client.mutex.Unlock()

	if client.state.Stopping() {
		client.Metrics.SendFailures.Add(1)
		logctx.LogEvent(client.ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed to send log message: %v\n", ErrShutdown)
		return
	}

	if level < client.threshold {
		client.Metrics.FilteredRecords.Add(1)
		return
	}

	rec := protocol.Record{
		Timestamp: time.Now().Truncate(time.Second),
		Level:     level,
		File:      file,
		Function:  function,
		Line:      line,
		Message:   message,
	}

	n, err := protocol.EncodeRecord(client.sendBuffer, rec)
	if err != nil {
		if errors.Is(err, protocol.ErrRecordTooLarge) {
			client.Metrics.OversizeRecords.Add(1)
		}
		logctx.LogEvent(client.ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed to format log message from %s:%s:%d: %v\n", file, function, line, err)
		return
	}

	_, err = client.conn.WriteToUDP(client.sendBuffer[:n], client.collector)
	if err != nil {
		client.Metrics.SendFailures.Add(1)
		logctx.LogEvent(client.ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed to send log message: %v\n", err)
		return
	}

	client.Metrics.SentRecords.Add(1)
	client.Metrics.SentBytes.Add(uint64(n))
	logctx.LogEvent(client.ctx, global.VerbosityFullData, global.InfoLog,
		"Sent record (%d bytes): %s", n, client.sendBuffer[:n])
}

// Like Log, with the message built from format and file, function and
// line taken from the caller
func (client *Client) Logf(level protocol.Level, format string, vars ...any) {
	file, function, line := callerLocation(2)
	message := format
	if len(vars) > 0 {
		message = fmt.Sprintf(format, vars...)
	}
	client.Log(level, file, function, line, message)
}

// Resolves source position skip frames above this function
func callerLocation(skip int) (file string, function string, line int) {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		file, function = "???", "???"
		return
	}

	file = filepath.Base(path)
	function = "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return
}

// Replaces the threshold. Setting the same level again has no further effect.
func (client *Client) SetLevel(level protocol.Level) {
	client.mutex.Lock()
	client.threshold = level
	client.mutex.Unlock()
}

// Current threshold
func (client *Client) Level() (level protocol.Level) {
	client.mutex.Lock()
	level = client.threshold
	client.mutex.Unlock()
	return
}
