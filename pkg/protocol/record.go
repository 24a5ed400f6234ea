package protocol

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Serializes rec into buf as a single newline terminated line:
//
//	<datetime> <LEVELNAME> <file>:<function>:<line> <message>\n
//
// buf is the fixed send buffer. A record whose length would reach len(buf)
// is rejected with ErrRecordTooLarge and n is 0; callers must never send
// buf contents after an error.
func EncodeRecord(buf []byte, rec Record) (n int, err error) {
	if !rec.Level.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, int(rec.Level))
		return
	}

	line := appendRecord(buf[:0], rec)
	if len(line) >= len(buf) {
		err = fmt.Errorf("%w: %d bytes (capacity %d)", ErrRecordTooLarge, len(line), len(buf)-1)
		return
	}

	n = len(line)
	return
}

func appendRecord(dst []byte, rec Record) []byte {
	dst = rec.Timestamp.AppendFormat(dst, TimestampLayout)
	dst = append(dst, ' ')
	dst = append(dst, rec.Level.String()...)
	dst = append(dst, ' ')
	dst = append(dst, cleanField(rec.File)...)
	dst = append(dst, ':')
	dst = append(dst, cleanField(rec.Function)...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(rec.Line), 10)
	dst = append(dst, ' ')
	dst = append(dst, cleanField(rec.Message)...)
	dst = append(dst, recordTerminator)
	return dst
}

// Parses one record line (trailing newline optional).
// Timestamps are interpreted in the local zone, as they were written.
func ParseRecord(line string) (rec Record, err error) {
	line = strings.TrimSuffix(line, string(recordTerminator))

	tsLen := len(TimestampLayout)
	if len(line) <= tsLen || line[tsLen] != ' ' {
		err = fmt.Errorf("%w: record shorter than timestamp", ErrMalformed)
		return
	}

	rec.Timestamp, err = time.ParseInLocation(TimestampLayout, line[:tsLen], time.Local)
	if err != nil {
		err = fmt.Errorf("%w: invalid timestamp: %v", ErrMalformed, err)
		return
	}
	rest := line[tsLen+1:]

	levelName, rest, found := strings.Cut(rest, " ")
	if !found {
		err = fmt.Errorf("%w: missing level", ErrMalformed)
		return
	}
	rec.Level = -1
	for i, name := range levelNames {
		if levelName == name {
			rec.Level = Level(i)
		}
	}
	if !rec.Level.Valid() {
		err = fmt.Errorf("%w: unknown level '%s'", ErrMalformed, levelName)
		return
	}

	location, message, found := strings.Cut(rest, " ")
	if !found {
		err = fmt.Errorf("%w: missing message separator", ErrMalformed)
		return
	}
	rec.Message = message

	lineSep := strings.LastIndexByte(location, ':')
	if lineSep < 0 {
		err = fmt.Errorf("%w: missing line number", ErrMalformed)
		return
	}
	rec.Line, err = strconv.Atoi(location[lineSep+1:])
	if err != nil {
		err = fmt.Errorf("%w: invalid line number: %v", ErrMalformed, err)
		return
	}

	funcSep := strings.LastIndexByte(location[:lineSep], ':')
	if funcSep < 0 {
		err = fmt.Errorf("%w: missing function name", ErrMalformed)
		return
	}
	rec.File = location[:funcSep]
	rec.Function = location[funcSep+1 : lineSep]
	return
}
