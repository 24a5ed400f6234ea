package client

import (
	"net"
	"strconv"

	"udplog/internal/global"
)

// Fills zero values with defaults
func (cfg *Config) setDefaults() {
	if cfg.CollectorAddress == "" {
		cfg.CollectorAddress = net.JoinHostPort(global.DefaultCollectorIP, strconv.Itoa(global.DefaultCollectorPort))
	}
	if cfg.BufferLength <= 0 {
		cfg.BufferLength = global.BufferLength
	}
}
