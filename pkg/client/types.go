package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"udplog/internal/lifecycle"
	"udplog/pkg/protocol"
)

// Reported when Log is called on a client that has been shut down
var ErrShutdown = errors.New("client is shut down")

type Config struct {
	CollectorAddress string // host:port of the collector
	BufferLength     int    // fixed record buffer (record must be shorter)
}

// Embedded logging client. One instance owns one UDP socket, one
// threshold, and one background receiver goroutine.
type Client struct {
	Namespace []string
	cfg       Config
	ctx       context.Context
	cancel    context.CancelFunc
	conn      *net.UDPConn
	collector *net.UDPAddr

	mutex      sync.Mutex // guards threshold and sendBuffer
	threshold  protocol.Level
	sendBuffer []byte

	state   lifecycle.StateMachine
	wg      sync.WaitGroup
	Metrics MetricStorage
}

type MetricStorage struct {
	SentRecords     atomic.Uint64 // records handed to the socket
	SentBytes       atomic.Uint64
	FilteredRecords atomic.Uint64 // below threshold
	OversizeRecords atomic.Uint64 // dropped for not fitting the buffer
	SendFailures    atomic.Uint64
	AppliedCommands atomic.Uint64 // threshold changes received from the collector
	IgnoredPackets  atomic.Uint64 // received datagrams that were not commands
}
