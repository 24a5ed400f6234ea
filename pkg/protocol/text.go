package protocol

import "strings"

// Replaces control characters with spaces so a record stays on one line.
// Printable text (including non-ASCII) is kept as is.
func cleanField(input string) (clean string) {
	if isPrintable(input) {
		clean = input
		return
	}

	clean = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return ' '
		}
		return r
	}, input)
	return
}

// Checks that text holds no control characters
func isPrintable(text string) (printable bool) {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] == 0x7F {
			return
		}
	}
	printable = true
	return
}
