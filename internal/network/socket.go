// UDP socket helpers for the collector listener
package network

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Binds a UDP socket with SO_REUSEADDR so a restarted collector can take the
// port back immediately. An empty or unspecified ip listens on all interfaces.
func ListenReusableUDP(ctx context.Context, ip string, port int) (conn *net.UDPConn, err error) {
	// Using x/sys/unix package for more up-to-date syscall numbers
	cfg := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}

	address := ListenAddress(ip, port)
	pc, err := cfg.ListenPacket(ctx, "udp", address)
	if err != nil {
		err = fmt.Errorf("failed to bind udp socket on %s: %w", address, err)
		return
	}

	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		err = fmt.Errorf("unexpected packet connection type %T", pc)
		return
	}
	return
}
