package gopagebar

// RotateWindow keeps the current page in the middle of the window while it
// moves, pinning the window to the first or last page near the edges.
//
// With an even maxSize the left side gets one page more than the right side:
//
//	pageCount=20, maxSize=4, page=10 -> [8 9 10 11]
type RotateWindow struct{}

// Select - implements Windower.
func (RotateWindow) Select(pageCount int, page int, maxSize int) Window {
	leftOffset := maxSize / 2
	rightOffset := leftOffset
	if maxSize%2 == 0 {
		rightOffset--
	}

	switch {
	case page <= leftOffset:
		return Window{Start: 0, End: maxSize}
	case pageCount-page < leftOffset:
		return Window{Start: pageCount - maxSize, End: pageCount}
	default:
		return Window{
			Start: page - leftOffset - 1,
			End:   page + rightOffset,
		}
	}
}
