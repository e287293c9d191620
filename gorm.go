package gopagebar

import (
	"fmt"

	"gorm.io/gorm"
)

// Apply limits a gorm query to the items of the current page:
//
//	LIMIT <page size> OFFSET <(page - 1) * page size>
//
// IMPORTANT:
// Returns an error if the pagination is in an invalid configuration, since
// there is no meaningful page to fetch.
func (p *Pagination) Apply(db *gorm.DB) (*gorm.DB, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot apply pagination: pagination is nil")
	}

	if p.pageSize <= 0 {
		return nil, fmt.Errorf("cannot apply pagination: %w", ErrInvalidPageSize)
	}

	return db.Offset(p.Offset()).Limit(p.pageSize), nil
}

// WithCollectionFrom counts the rows matched by db and uses the count as the
// collection size. The query should carry the same filters as the one later
// passed to Apply.
func (p *Pagination) WithCollectionFrom(db *gorm.DB) (*Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return p, fmt.Errorf("failed to count collection size: %w", err)
	}

	return p.WithCollectionSize(int(total)), nil
}
