package file

import (
	"fmt"
	"os"

	"udplog/internal/global"
)

// Opens (creating if needed) filePath for appending. Returns nil nil if no path.
func NewOutput(namespace []string, filePath string) (module *OutModule, err error) {
	if filePath == "" {
		return
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return
	}

	module = &OutModule{
		Namespace: append(append([]string{}, namespace...), global.NSoFile),
		path:      filePath,
		sink:      file,
	}
	return
}

// Path of the underlying file
func (mod *OutModule) Path() (path string) {
	if mod == nil {
		return
	}
	path = mod.path
	return
}
