package beats

import (
	"sync/atomic"

	lumberjack "github.com/elastic/go-lumber/client/v2"
)

// Forwards parsed records to a Beats (lumberjack v2) server
type OutModule struct {
	Namespace []string
	endpoint  string
	sink      *lumberjack.SyncClient
	metrics   MetricStorage
}

type MetricStorage struct {
	SentEvents atomic.Uint64 // events acknowledged by the server
	SendErrors atomic.Uint64
}
