package text

import (
	"strings"
	"unicode"
)

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200b':
		return breakZero
	case '(', '[', '{', '\u201c', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201d', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen
	}
	if isIdeographic(r) {
		return breakIdeographic
	}
	return breakOther
}

func isIdeographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}

// canBreakBefore reports whether a line may start at runes[i].
func canBreakBefore(runes []rune, i int) bool {
	if i <= 0 || i >= len(runes) {
		return false
	}
	prev, curr := classifyRune(runes[i-1]), classifyRune(runes[i])
	switch {
	case curr == breakClose, prev == breakOpen:
		return false
	case prev == breakSpace && curr != breakSpace, prev == breakZero:
		return true
	case prev == breakHyphen && curr != breakHyphen:
		return true
	case curr == breakIdeographic, prev == breakIdeographic:
		return true
	}
	return false
}

// segments splits a paragraph into unbreakable pieces. Trailing spaces
// stay attached to the piece before them.
func segments(para string) []string {
	runes := []rune(para)
	var out []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if canBreakBefore(runes, i) {
			out = append(out, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// wrap breaks s into lines no wider than maxWidth according to measure.
// Hard line breaks are kept. A piece wider than maxWidth gets a line of
// its own and overflows.
func wrap(s string, maxWidth int, measure func(string) int) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line string
		for _, seg := range segments(para) {
			candidate := line + seg
			if line != "" && measure(strings.TrimRight(candidate, " \t")) > maxWidth {
				lines = append(lines, strings.TrimRight(line, " \t"))
				candidate = strings.TrimLeft(seg, " \t")
			}
			line = candidate
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return lines
}
