// Datagram formats shared by the client library and the collector.
//
// Two text messages share one UDP port: log record lines (client to
// collector) and threshold commands (collector to client). One datagram
// always carries exactly one message.
package protocol

import "strings"

// Classifies a received datagram. Input that is neither a valid command nor
// a valid record yields KindUnknown; Decode never fails or panics.
func Decode(datagram []byte) (msg Message) {
	msg.Raw = datagram
	text := string(datagram)

	if strings.HasPrefix(text, CommandPrefix) {
		cmd, err := ParseCommand(text)
		if err != nil {
			return
		}
		msg.Kind = KindCommand
		msg.Command = &cmd
		return
	}

	rec, err := ParseRecord(text)
	if err != nil {
		return
	}
	msg.Kind = KindRecord
	msg.Record = &rec
	return
}

func (kind Kind) String() string {
	switch kind {
	case KindRecord:
		return "record"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}
