// Client side of the logging subsystem: formats leveled records, sends them
// to the collector over UDP, and applies threshold changes pushed back by
// the collector.
package client

import (
	"context"
	"fmt"
	"net"

	"udplog/internal/global"
	"udplog/internal/logctx"
	"udplog/pkg/protocol"
)

// Creates and starts a client. Diagnostics go to the logger attached to ctx
// (none attached means silent). Any error leaves nothing running.
func New(ctx context.Context, cfg Config) (client *Client, err error) {
	cfg.setDefaults()

	collector, err := net.ResolveUDPAddr("udp", cfg.CollectorAddress)
	if err != nil {
		err = fmt.Errorf("failed to resolve collector address '%s': %w", cfg.CollectorAddress, err)
		return
	}

	// Ephemeral local port, shared for sending records and receiving commands
	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		err = fmt.Errorf("failed to create client socket: %w", err)
		return
	}

	client = &Client{
		Namespace:  []string{global.NSClient},
		cfg:        cfg,
		conn:       conn,
		collector:  collector,
		threshold:  protocol.LevelDebug,
		sendBuffer: make([]byte, cfg.BufferLength),
	}

	client.ctx, client.cancel = context.WithCancel(context.WithoutCancel(ctx))
	client.ctx = logctx.OverwriteCtxTag(client.ctx, client.Namespace)

	client.state.Start()
	client.wg.Add(1)
	go func() {
		defer client.wg.Done()
		client.receive()
	}()

	logctx.LogEvent(client.ctx, global.VerbosityProgress, global.InfoLog,
		"Logging to collector %s from %s\n", collector, conn.LocalAddr())
	return
}

// Local socket address (where threshold commands must be sent)
func (client *Client) LocalAddr() (addr *net.UDPAddr) {
	addr, _ = client.conn.LocalAddr().(*net.UDPAddr)
	return
}
