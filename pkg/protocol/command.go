package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Serializes a threshold command ("Set Log Level=<int>")
func EncodeCommand(cmd Command) (datagram []byte, err error) {
	if !cmd.Level.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, int(cmd.Level))
		return
	}
	datagram = strconv.AppendInt([]byte(CommandPrefix), int64(cmd.Level), 10)
	return
}

// Parses a threshold command. Trailing whitespace and NUL padding are tolerated.
func ParseCommand(text string) (cmd Command, err error) {
	value, found := strings.CutPrefix(text, CommandPrefix)
	if !found {
		err = fmt.Errorf("%w: missing '%s' prefix", ErrMalformed, CommandPrefix)
		return
	}
	value = strings.TrimRight(value, " \t\r\n\x00")

	number, err := strconv.Atoi(value)
	if err != nil {
		err = fmt.Errorf("%w: invalid level value '%s'", ErrMalformed, value)
		return
	}

	cmd.Level = Level(number)
	if !cmd.Level.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, number)
		return
	}
	return
}
