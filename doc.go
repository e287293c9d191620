// Package gopagebar computes the page markers of a paginated navigation bar.
//
// Overview
//
// Given a collection size, a page size, the current page and an optional
// maximum number of visible page markers, gopagebar derives the page count,
// keeps the current page in range and builds the ordered sequence of markers
// a host renders (page numbers and ellipsis placeholders).
//
// Windowing strategies
//   - BlockWindow: pages are split into fixed blocks of MaxSize pages and the
//     block holding the current page is shown. The window jumps block by block.
//   - RotateWindow: the window slides with the current page and keeps it in
//     the middle, pinned to the first or last page near the edges. With an
//     even MaxSize the extra slot goes to the left of the current page.
//
// Key concepts
//   - Pagination: owns the inputs, recomputes derived state on every change
//     and notifies observers when the current page moves.
//   - RawPagination: json/yaml payload decoded into a Pagination.
//   - Marker: a page number or the Ellipsis placeholder.
//
// Pagination also bridges to GORM: Apply limits a query to the current page
// and WithCollectionFrom counts the collection size from a query.
package gopagebar
