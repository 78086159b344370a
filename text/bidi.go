package text

import (
	"golang.org/x/text/unicode/bidi"
)

// run is a piece of a line with a single direction.
type run struct {
	text string
	rtl  bool
}

// baseRTL reports whether the first strong character of s is
// right-to-left. Text without strong characters is left-to-right.
func baseRTL(s string) bool {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}

// visualRuns splits line into directional runs in display order.
func visualRuns(line string, rtl bool) []run {
	whole := []run{{text: line, rtl: rtl}}
	def := bidi.LeftToRight
	if rtl {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(def)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		runs = append(runs, run{text: r.String(), rtl: r.Direction() == bidi.RightToLeft})
	}
	return runs
}

// visualRunes returns the runes of r in the order they are drawn.
func (r run) visualRunes() []rune {
	runes := []rune(r.text)
	if r.rtl {
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
	}
	return runes
}
