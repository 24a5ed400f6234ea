// Optional forwarding of collected records to a Beats/Logstash endpoint
package beats

import (
	"fmt"

	lumberjack "github.com/elastic/go-lumber/client/v2"

	"udplog/internal/global"
)

// Creates new beats (lumberjack) output module. Returns nil nil if no endpoint.
func NewOutput(namespace []string, endpoint string) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	compression := lumberjack.CompressionLevel(0)
	timeout := lumberjack.Timeout(global.BeatsDialTimeout)

	ljClient, err := lumberjack.SyncDial(endpoint, compression, timeout)
	if err != nil {
		err = fmt.Errorf("failed connection to beats server: %w", err)
		return
	}

	module = &OutModule{
		Namespace: append(append([]string{}, namespace...), global.NSoBeats),
		endpoint:  endpoint,
		sink:      ljClient,
	}
	return
}
