package file

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Appends payload exactly as given and fdatasyncs the file. Partial writes
// are retried until the payload is written or an error occurs.
func (mod *OutModule) Write(payload []byte) (written int, err error) {
	if mod == nil {
		return
	}

	data := payload
	for len(data) > 0 {
		var n int
		n, err = mod.sink.Write(data)
		written += n
		if err != nil {
			mod.metrics.WriteErrors.Add(1)
			err = fmt.Errorf("failed to append to log file: %w", err)
			return
		}
		data = data[n:] // remove the bytes that were successfully written
	}

	err = unix.Fdatasync(int(mod.sink.Fd()))
	if err != nil {
		mod.metrics.WriteErrors.Add(1)
		err = fmt.Errorf("failed to sync log file: %w", err)
		return
	}

	mod.metrics.WrittenLines.Add(1)
	mod.metrics.WrittenBytes.Add(uint64(written))
	return
}
