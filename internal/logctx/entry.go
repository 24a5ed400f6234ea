// Diagnostic logging for the client library and collector daemon.
// Events are queued per logger and written out by a watcher goroutine.
package logctx

import (
	"context"
	"fmt"
	"strings"
)

// Entry for logging events. Silently dropped when ctx carries no logger.
func LogEvent(ctx context.Context, eventLevel int, severity string, message string, vars ...any) {
	logger := GetLogger(ctx)
	if logger == nil {
		return
	}

	newMsg := message
	if len(vars) > 0 && strings.Contains(message, "%") {
		newMsg = fmt.Sprintf(message, vars...)
	}
	logger.log(eventLevel, severity, GetTagList(ctx), newMsg)
}
