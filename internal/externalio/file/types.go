package file

import (
	"os"
	"sync/atomic"
)

// Append-only record file. Every write is flushed to stable storage before
// returning.
type OutModule struct {
	Namespace []string
	path      string
	sink      *os.File
	metrics   MetricStorage
}

type MetricStorage struct {
	WrittenLines atomic.Uint64 // payloads appended
	WrittenBytes atomic.Uint64
	WriteErrors  atomic.Uint64 // failed writes or syncs
}
