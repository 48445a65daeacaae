package layoutbridge

import (
	"sort"
	"unicode/utf8"
)

// Measurer returns the horizontal advance of text rendered with the font of
// el. text is always a prefix of el.Text() and a longer prefix never advances
// less.
type Measurer interface {
	Advance(el Element, text string) float64
}

// MeasurerFunc is an adapter to use ordinary functions as Measurer.
type MeasurerFunc func(el Element, text string) float64

func (f MeasurerFunc) Advance(el Element, text string) float64 {
	return f(el, text)
}

// ProportionalMeasurer spreads the element width evenly over its runes. It
// needs no font data.
type ProportionalMeasurer struct{}

func (ProportionalMeasurer) Advance(el Element, text string) float64 {
	total := utf8.RuneCountInString(el.Text())
	if total == 0 {
		return 0
	}
	return el.Rect().Width * float64(utf8.RuneCountInString(text)) / float64(total)
}

// caretIndex returns the rune boundary of el's text nearest to x, ties going
// to the earlier boundary. Advance is expected not to decrease as the prefix
// grows, so boundaries are binary searched.
func caretIndex(m Measurer, el Element, x float64) int {
	text := el.Text()
	bounds := make([]int, 0, len(text)+1)
	for i := range text {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(text))

	left := el.Rect().X
	at := func(i int) float64 {
		if i == 0 {
			return left
		}
		return left + m.Advance(el, text[:bounds[i]])
	}

	i := sort.Search(len(bounds), func(i int) bool { return at(i) >= x })
	switch i {
	case 0:
		return 0
	case len(bounds):
		return len(bounds) - 1
	}
	if x-at(i-1) <= at(i)-x {
		return i - 1
	}
	return i
}
