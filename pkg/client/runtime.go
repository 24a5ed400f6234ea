package client

import (
	"errors"
	"net"
	"runtime/debug"
	"time"

	"udplog/internal/global"
	"udplog/internal/lifecycle"
	"udplog/internal/logctx"
	"udplog/pkg/protocol"
)

// Pause after an unexpected socket error so a persistent fault cannot spin
const receiveErrorBackoff = 100 * time.Millisecond

// Applies threshold commands until the socket is closed by Shutdown.
// The read blocks; closing the socket is what wakes it for shutdown.
func (client *Client) receive() {
	ctx := logctx.AppendCtxTag(client.ctx, global.NSListen)
	buffer := make([]byte, client.cfg.BufferLength)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		stop := func() (finished bool) {
			defer func() {
				if fatalError := recover(); fatalError != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"panic in client receiver thread: %v\n%s", fatalError, debug.Stack())
				}
			}()

			n, remoteAddr, err := client.conn.ReadFromUDP(buffer)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
					finished = true
					return
				}
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
					"Failed receiving from client socket: %v\n", err)

				select {
				case <-ctx.Done():
				case <-time.After(receiveErrorBackoff):
				}
				return
			}

			msg := protocol.Decode(buffer[:n])
			if msg.Kind != protocol.KindCommand {
				client.Metrics.IgnoredPackets.Add(1)
				logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
					"Ignoring %d byte %s message from %s\n", n, msg.Kind, remoteAddr)
				return
			}

			client.SetLevel(msg.Command.Level)
			client.Metrics.AppliedCommands.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
				"Log level set to %d (%s) by %s\n", int(msg.Command.Level), msg.Command.Level, remoteAddr)
			return
		}()
		if stop {
			return
		}
	}
}

// Stops the receiver, waits for it and releases the socket. Only the first
// call does anything. Log must not be called afterwards.
func (client *Client) Shutdown() {
	if !client.state.RequestStop() {
		return
	}

	client.cancel()
	err := client.conn.Close()
	if err != nil {
		logctx.LogEvent(client.ctx, global.VerbosityStandard, global.WarnLog,
			"Failed to close client socket: %v\n", err)
	}

	done := make(chan struct{})
	go func() {
		client.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(global.ClientShutdownTimeout):
		logctx.LogEvent(client.ctx, global.VerbosityStandard, global.WarnLog,
			"Timeout: client receiver did not stop within %v\n", global.ClientShutdownTimeout)
	}

	client.state.Finish()
	logctx.LogEvent(client.ctx, global.VerbosityProgress, global.InfoLog, "Client shutdown complete\n")
}

// Current lifecycle state
func (client *Client) State() (state lifecycle.State) {
	state = client.state.Load()
	return
}
