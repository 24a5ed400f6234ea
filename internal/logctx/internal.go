package logctx

import (
	"time"

	"udplog/internal/global"
)

// Queues event if verbosity allows it
func (logger *Logger) log(eventLevel int, eventSeverity string, tags []string, fullMessage string) {
	event := Event{
		Timestamp: time.Now(),
		Tags:      tags,
		Severity:  eventSeverity,
		Message:   fullMessage,
	}

	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if eventLevel > logger.PrintLevel && eventSeverity != global.ErrorLog {
		return
	}

	logger.queue = append(logger.queue, event)
	logger.cond.Signal()
}

// Copy of the events still waiting in the queue, oldest first
func (logger *Logger) Pending() (events []Event) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	events = make([]Event, len(logger.queue))
	copy(events, logger.queue)
	return
}
