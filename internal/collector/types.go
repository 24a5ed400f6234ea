package collector

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"udplog/internal/externalio/beats"
	"udplog/internal/externalio/file"
	"udplog/internal/lifecycle"
	"udplog/internal/metrics"
)

var (
	// No client has sent anything yet, so there is nowhere to send a command
	ErrNoPeer = errors.New("no client address known")

	ErrNotRunning = errors.New("collector is not running")
)

type JSONConfig struct {
	Network struct {
		Address string `json:"address"`
		Port    int    `json:"port"`
	} `json:"network"`
	Outputs struct {
		FilePath     string `json:"filePath,omitempty"`
		BeatsAddress string `json:"beatsAddress,omitempty"`
	} `json:"outputs"`
	Metrics struct {
		Interval string `json:"collectionInterval,omitempty"`
		MaxAge   string `json:"maximumRetention,omitempty"`
	} `json:"metrics"`
}

type Config struct {
	ListenIP   string
	ListenPort int

	// Outputs
	LogFilePath   string
	BeatsEndpoint string // host:port, empty disables forwarding

	// Metrics
	MetricCollectionInterval time.Duration
	MetricMaxAge             time.Duration
}

// Receives client records into the shared log file and pushes threshold
// commands back to the most recent client.
type Collector struct {
	Namespace []string
	cfg       Config
	ctx       context.Context
	cancel    context.CancelFunc
	conn      *net.UDPConn

	mutex   sync.Mutex // serializes peer updates, file appends, and file reads
	peer    netip.AddrPort
	hasPeer bool
	output  *file.OutModule

	forwarder *beats.OutModule
	gatherer  *metrics.Gatherer

	state   lifecycle.StateMachine
	wg      sync.WaitGroup
	Metrics MetricStorage
}

type MetricStorage struct {
	ReceivedDatagrams atomic.Uint64
	ReceivedBytes     atomic.Uint64
	WriteFailures     atomic.Uint64 // datagrams that could not be persisted
	ForwardedRecords  atomic.Uint64 // records acknowledged by the beats server
	ForwardFailures   atomic.Uint64
	CommandsSent      atomic.Uint64
}
