package network

import (
	"net"
	"net/netip"
	"strconv"
)

// host:port form accepted by net listeners, bracketing IPv6 literals
func ListenAddress(ip string, port int) (address string) {
	address = net.JoinHostPort(ip, strconv.Itoa(port))
	return
}

// Converts a received-from address to a comparable value. IPv4 senders seen
// through a dual-stack socket are reported in plain IPv4 form.
func PeerAddrPort(addr *net.UDPAddr) (peer netip.AddrPort) {
	if addr == nil {
		return
	}
	ap := addr.AddrPort()
	peer = netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port())
	return
}
