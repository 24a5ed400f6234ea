package protocol

import (
	"errors"
	"time"
)

const (
	LevelDebug Level = iota
	LevelWarning
	LevelError
	LevelCritical
)

const (
	KindUnknown Kind = iota
	KindRecord
	KindCommand
)

const (
	// Fixed buffer a serialized record must fit into (including newline)
	BufferLength int = 1024

	// Literal prefix of a threshold command
	CommandPrefix string = "Set Log Level="

	// ctime(3) style timestamp, e.g. "Mon Jan  2 15:04:05 2006"
	TimestampLayout string = time.ANSIC

	recordTerminator byte = '\n'
)

var (
	ErrRecordTooLarge = errors.New("formatted record exceeds buffer capacity")
	ErrInvalidLevel   = errors.New("log level out of range")
	ErrMalformed      = errors.New("malformed message")
)

var levelNames = [...]string{
	LevelDebug:    "DEBUG",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}
