package protocol

import "time"

// Record severity and client threshold. Ordering is total: a record is
// emitted only when its level is not below the threshold.
type Level int

// One log record as produced by a client
type Record struct {
	Timestamp time.Time // second resolution on the wire
	Level     Level
	File      string
	Function  string
	Line      int
	Message   string
}

// Threshold change sent from the collector to a client
type Command struct {
	Level Level
}

// Discriminant for a decoded datagram
type Kind int

// Decoded datagram. Exactly one of Record/Command is set, matching Kind.
// Raw always holds the original payload.
type Message struct {
	Kind    Kind
	Record  *Record
	Command *Command
	Raw     []byte
}
