package gopagebar

import "slices"

// Annotate surrounds the windowed pages with boundary pages and Ellipsis
// placeholders:
//
//	[1, ..., <window>]        when the window does not include page 1;
//	[<window>, ..., last]     when the window does not include the last page.
//
// With ellipses disabled the windowed pages are returned unchanged.
func Annotate(windowed []Marker, w Window, pageCount int, ellipses bool) []Marker {
	if !ellipses {
		return windowed
	}

	ret := make([]Marker, 0, len(windowed)+4)
	if !w.TouchesFirst() {
		ret = append(ret, Marker(MinPage), Ellipsis)
	}

	ret = append(ret, windowed...)

	if !w.TouchesLast(pageCount) {
		ret = append(ret, Ellipsis, Marker(pageCount))
	}

	return slices.Clip(ret)
}
