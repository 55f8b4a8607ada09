package editor

import "strings"

// Stats counts characters in UTF-16 units so the numbers match what the
// browser shows for the same text.
type Stats struct {
	Words      int
	Characters int
}

func Count(text string) Stats {
	return Stats{
		Words:      len(strings.Fields(text)),
		Characters: UTF16Len(text),
	}
}
