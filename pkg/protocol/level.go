package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Reports whether level is one of the four defined levels
func (level Level) Valid() (valid bool) {
	valid = level >= LevelDebug && level <= LevelCritical
	return
}

func (level Level) String() string {
	if !level.Valid() {
		return "LEVEL(" + strconv.Itoa(int(level)) + ")"
	}
	return levelNames[level]
}

// Accepts a level name (any case) or its integer form
func ParseLevel(text string) (level Level, err error) {
	text = strings.TrimSpace(text)

	for i, name := range levelNames {
		if strings.EqualFold(text, name) {
			level = Level(i)
			return
		}
	}

	number, convErr := strconv.Atoi(text)
	if convErr != nil {
		err = fmt.Errorf("unknown log level '%s'", text)
		return
	}

	level = Level(number)
	if !level.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, number)
		return
	}
	return
}
