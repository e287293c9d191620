package gopagebar

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

const (
	MinPage         = 1
	DefaultPageSize = 10
	// NoMaxSize disables windowing: every page gets a marker.
	NoMaxSize = 0
)

var (
	ErrInvalidPageSize       = errors.New("page size must be greater than 0")
	ErrInvalidCollectionSize = errors.New("collection size must be non-negative")
	ErrInvalidMaxSize        = errors.New("max size must be non-negative")
)

// ClampPage bounds the requested page into [MinPage, pageCount]. When there
// are no pages at all MinPage is returned.
func ClampPage(requested int, pageCount int) int {
	return ClampPageMin(requested, pageCount, MinPage)
}

// ClampPageMin is ClampPage with an explicit lower bound. The lower bound
// wins when pageCount is below minPage.
func ClampPageMin(requested int, pageCount int, minPage int) int {
	if pageCount <= 0 {
		return minPage
	}

	return lo.Clamp(requested, minPage, max(pageCount, minPage))
}

// PageCount returns ceil(collectionSize / pageSize).
//
// IMPORTANT:
// A non-positive page size or a negative collection size yields 0 pages
// together with an error describing the configuration problem.
func PageCount(collectionSize int, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	if collectionSize < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCollectionSize, collectionSize)
	}

	pages := collectionSize / pageSize
	if collectionSize%pageSize != 0 {
		pages++
	}

	return pages, nil
}

// IsNormalizedMaxSize reports whether maxSize is usable as is. Negative
// values are replaced with NoMaxSize.
func IsNormalizedMaxSize(maxSize int) (int, bool) {
	if maxSize < 0 {
		return NoMaxSize, false
	}

	return maxSize, true
}

func NormalizeMaxSize(maxSize int) int {
	ret, _ := IsNormalizedMaxSize(maxSize)
	return ret
}

// isWindowed reports whether maxSize constrains a list of pageCount pages.
func isWindowed(pageCount int, maxSize int) bool {
	return maxSize > 0 && pageCount > maxSize
}
