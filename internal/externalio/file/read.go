package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Streams the file at filePath to w unchanged
func CopyTo(filePath string, w io.Writer) (copied int64, err error) {
	source, err := os.Open(filePath)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return
	}
	defer source.Close()

	copied, err = io.Copy(w, source)
	if err != nil {
		err = fmt.Errorf("failed to read log file: %w", err)
		return
	}
	return
}

// Returns every line of the file without its newline. A final line lacking
// a newline is returned as is.
func ReadLines(filePath string) (lines []string, err error) {
	source, err := os.Open(filePath)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return
	}
	defer source.Close()

	reader := bufio.NewReader(source)
	for {
		var line string
		line, err = reader.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			err = fmt.Errorf("failed to read log file: %w", err)
			return
		}
	}
}
