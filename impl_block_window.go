package gopagebar

// BlockWindow groups pages into consecutive blocks of maxSize pages and shows
// the block holding the current page. The window does not move while the
// current page stays inside the same block.
//
// Example: pageCount=10, maxSize=3
//
//	page 1..3  -> [1 2 3]
//	page 4..6  -> [4 5 6]
//	page 10    -> [10]
type BlockWindow struct{}

// Select - implements Windower.
func (BlockWindow) Select(pageCount int, page int, maxSize int) Window {
	block := (page - 1) / maxSize
	start := block * maxSize

	// The last block may be shorter than maxSize.
	return Window{
		Start: start,
		End:   start + min(maxSize, pageCount-start),
	}
}
