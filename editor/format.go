package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

var (
	ErrUnknownFormat    = errors.New("unknown format")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Format is an inline style realized as a pair of markup tokens.
type Format string

const (
	Bold      Format = "bold"
	Italic    Format = "italic"
	Underline Format = "underline"
)

var wrappers = map[Format][2]string{
	Bold:      {"<strong>", "</strong>"},
	Italic:    {"<em>", "</em>"},
	Underline: {"<u>", "</u>"},
}

func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := wrappers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Selection is a text together with a selected range [Start, End) counted
// in UTF-16 code units, the way browser text fields report selections.
type Selection struct {
	Text  string
	Start int
	End   int
}

// Toggle wraps text[start:end] in the markup for f, or strips it when the
// selection is exactly one wrapped span. A selection that merely contains or
// overlaps a span is wrapped again. Positions count UTF-16 code units and may
// not split a surrogate pair.
func Toggle(text string, start, end int, f Format) (Selection, error) {
	tags, ok := wrappers[f]
	if !ok {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	units := utf16.Encode([]rune(text))
	if start < 0 || end < start || end > len(units) || splitsPair(units, start) || splitsPair(units, end) {
		return Selection{}, fmt.Errorf("%w: [%d, %d) in text of length %d", ErrInvalidSelection, start, end, len(units))
	}

	selected := string(utf16.Decode(units[start:end]))
	openTag, closeTag := tags[0], tags[1]

	var replaced string
	if len(selected) >= len(openTag)+len(closeTag) &&
		strings.HasPrefix(selected, openTag) && strings.HasSuffix(selected, closeTag) {
		replaced = selected[len(openTag) : len(selected)-len(closeTag)]
	} else {
		replaced = openTag + selected + closeTag
	}

	var b strings.Builder
	b.WriteString(string(utf16.Decode(units[:start])))
	b.WriteString(replaced)
	b.WriteString(string(utf16.Decode(units[end:])))

	delta := UTF16Len(replaced) - (end - start)
	return Selection{Text: b.String(), Start: start, End: end + delta}, nil
}

// UTF16Len is the length of s as a browser measures it.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// splitsPair reports whether offset i falls between the halves of a
// surrogate pair.
func splitsPair(units []uint16, i int) bool {
	if i <= 0 || i >= len(units) {
		return false
	}
	return units[i] >= 0xDC00 && units[i] <= 0xDFFF
}
