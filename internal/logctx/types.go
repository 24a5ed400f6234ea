package logctx

import (
	"sync"
	"time"
)

// Diagnostic event
type Event struct {
	Timestamp time.Time
	Severity  string
	Tags      []string
	Message   string
}

// Queue-backed diagnostic logger shared by a client or collector instance
type Logger struct {
	ID         string
	CreatedAt  time.Time
	queue      []Event    // pending events not yet handed to the watcher
	mutex      sync.Mutex // protects queue and PrintLevel
	cond       *sync.Cond // signals watcher that queue is non-empty
	Done       <-chan struct{}
	PrintLevel int             // Highest verbosity that is recorded (errors always recorded)
	wg         *sync.WaitGroup // Holds callers until watchers drained their events
}
