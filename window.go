package gopagebar

import "github.com/samber/lo"

// Window is a half-open range [Start, End) of 0-based indices into the full
// page list 1..pageCount. Index i stands for page i+1.
type Window struct {
	Start int
	End   int
}

// Len returns the number of pages covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// TouchesFirst reports whether the window includes page 1.
func (w Window) TouchesFirst() bool {
	return w.Start <= 0
}

// TouchesLast reports whether the window includes the last page.
func (w Window) TouchesLast(pageCount int) bool {
	return w.End >= pageCount
}

// Pages returns the page markers covered by the window.
func (w Window) Pages() []Marker {
	return pageMarkers(w.Start+1, w.Len())
}

// Windower chooses the visible window of pages.
//
// IMPORTANT:
// Select is only called when windowing is engaged, i.e. maxSize > 0 and
// pageCount > maxSize, with page already clamped into [1, pageCount].
type Windower interface {
	Select(pageCount int, page int, maxSize int) Window
}

// windowerFor returns the strategy selected by the rotate flag.
func windowerFor(rotate bool) Windower {
	return lo.Ternary[Windower](rotate, RotateWindow{}, BlockWindow{})
}
