package gopagebar

import (
	"strconv"

	"github.com/samber/lo"
)

// Marker is one entry of the display sequence: either a real 1-based page
// number or the Ellipsis placeholder.
type Marker int

// Ellipsis stands for a run of omitted pages. It is not selectable and is
// rendered the same wherever it appears.
const Ellipsis Marker = -1

func (m Marker) IsEllipsis() bool {
	return m == Ellipsis
}

// Page returns the page number behind the marker, 0 for Ellipsis.
func (m Marker) Page() int {
	if m.IsEllipsis() {
		return 0
	}

	return int(m)
}

// String - implements fmt.Stringer.
func (m Marker) String() string {
	if m.IsEllipsis() {
		return "..."
	}

	return strconv.Itoa(int(m))
}

// pageMarkers returns the markers for pages from..from+n-1.
func pageMarkers(from int, n int) []Marker {
	if n <= 0 {
		return []Marker{}
	}

	return lo.RangeFrom(Marker(from), n)
}
