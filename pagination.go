package gopagebar

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// PageChangeHandler is notified with the new current page.
type PageChangeHandler func(page int)

// Pagination owns the inputs of a navigation bar and the state derived from
// them: page count, clamped current page and the display sequence.
//
// Every With* setter applies the input and recomputes synchronously, so the
// derived state is never stale between calls. A Pagination is not safe for
// concurrent use.
type Pagination struct {
	// Inputs.
	collectionSize int
	pageSize       int
	page           int
	maxSize        int
	rotate         bool
	ellipses       bool
	presentation   Presentation

	// Derived.
	pageCount int
	window    Window
	windowed  bool
	err       error

	handlers []PageChangeHandler
	logger   zerolog.Logger
}

// NewPagination returns a Pagination with default options for a collection
// of collectionSize items.
func NewPagination(collectionSize int) *Pagination {
	p := &Pagination{
		collectionSize: collectionSize,
		pageSize:       DefaultPageSize,
		ellipses:       true,
		presentation:   defaultPresentation(),
		logger:         zerolog.Nop(),
	}
	p.Recompute()

	return p
}

// WithCollectionSize sets the total number of items.
func (p *Pagination) WithCollectionSize(collectionSize int) *Pagination {
	if p == nil {
		p = NewPagination(collectionSize)
	}

	p.collectionSize = collectionSize
	p.Recompute()

	return p
}

// WithPageSize sets the number of items per page.
func (p *Pagination) WithPageSize(pageSize int) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.pageSize = pageSize
	p.Recompute()

	return p
}

// WithPage sets the current page. Out of range values are clamped; when the
// clamped value differs from page, observers are notified of the correction.
func (p *Pagination) WithPage(page int) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.page = page
	p.Recompute()

	return p
}

// WithMaxSize sets the maximum number of page markers shown in the window.
// NoMaxSize shows every page.
func (p *Pagination) WithMaxSize(maxSize int) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.maxSize = maxSize
	p.Recompute()

	return p
}

// WithRotate switches windowing between RotateWindow (true) and BlockWindow.
func (p *Pagination) WithRotate(rotate bool) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.rotate = rotate
	p.Recompute()

	return p
}

// WithEllipses enables boundary pages and Ellipsis markers around the window.
func (p *Pagination) WithEllipses(ellipses bool) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.ellipses = ellipses
	p.Recompute()

	return p
}

// WithPresentation sets presentation-only flags. The display sequence does
// not depend on them.
func (p *Pagination) WithPresentation(presentation Presentation) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.presentation = presentation

	return p
}

// WithLogger sets the logger used to report invalid configuration and page
// changes.
func (p *Pagination) WithLogger(logger zerolog.Logger) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	p.logger = logger

	return p
}

// OnPageChange registers an observer. Observers are called synchronously, in
// registration order, after the new state is in place. An observer may call
// SelectPage; observers not yet notified then only see the newer page.
func (p *Pagination) OnPageChange(handler PageChangeHandler) *Pagination {
	if p == nil {
		p = NewPagination(0)
	}

	if handler != nil {
		p.handlers = append(p.handlers, handler)
	}

	return p
}

// SelectPage navigates to target. Out of range targets are clamped into
// [1, PageCount()]. Observers are notified once if the current page changed.
func (p *Pagination) SelectPage(target int) {
	if p == nil {
		return
	}

	p.update(target)
}

// Previous selects the page before the current one.
func (p *Pagination) Previous() {
	p.SelectPage(p.Page() - 1)
}

// Next selects the page after the current one.
func (p *Pagination) Next() {
	p.SelectPage(p.Page() + 1)
}

// First selects page 1.
func (p *Pagination) First() {
	p.SelectPage(MinPage)
}

// Last selects the last page.
func (p *Pagination) Last() {
	p.SelectPage(p.PageCount())
}

// Recompute rebuilds the derived state from the current inputs. It is called
// by every setter; hosts that mutate inputs some other way call it directly.
// Calling it twice with unchanged inputs yields the same display sequence.
func (p *Pagination) Recompute() {
	if p == nil {
		return
	}

	p.update(p.page)
}

// update derives the page count, clamps newPage, rebuilds the display
// sequence and notifies observers if the current page moved.
func (p *Pagination) update(newPage int) {
	prevPage := p.page

	pageCount, err := PageCount(p.collectionSize, p.pageSize)
	maxSize, ok := IsNormalizedMaxSize(p.maxSize)
	if !ok {
		err = errors.Join(err, ErrInvalidMaxSize)
	}

	p.err = err
	if err != nil {
		p.logger.Warn().
			Err(err).
			Int("collectionSize", p.collectionSize).
			Int("pageSize", p.pageSize).
			Int("maxSize", p.maxSize).
			Msg("invalid pagination configuration")
	}

	p.pageCount = pageCount
	p.page = ClampPage(newPage, pageCount)
	p.window, p.windowed = selectWindow(pageCount, p.page, maxSize, p.rotate)

	if page := p.page; page != prevPage {
		p.logger.Debug().Int("from", prevPage).Int("to", page).Msg("page changed")

		for _, handler := range p.handlers {
			// A handler navigated again and every observer already got the
			// newer page.
			if p.page != page {
				return
			}

			handler(page)
		}
	}
}

// selectWindow returns the pages to show around page. Without windowing the
// window spans every page.
func selectWindow(pageCount int, page int, maxSize int, rotate bool) (Window, bool) {
	if !isWindowed(pageCount, maxSize) {
		return Window{Start: 0, End: pageCount}, false
	}

	return windowerFor(rotate).Select(pageCount, page, maxSize), true
}

// Page returns the current page. It is 1 even when there are no pages.
func (p *Pagination) Page() int {
	if p == nil {
		return MinPage
	}

	return p.page
}

// PageCount returns the derived number of pages.
func (p *Pagination) PageCount() int {
	if p == nil {
		return 0
	}

	return p.pageCount
}

func (p *Pagination) PageSize() int {
	if p == nil {
		return 0
	}

	return p.pageSize
}

func (p *Pagination) CollectionSize() int {
	if p == nil {
		return 0
	}

	return p.collectionSize
}

func (p *Pagination) MaxSize() int {
	if p == nil {
		return NoMaxSize
	}

	return p.maxSize
}

func (p *Pagination) IsRotate() bool {
	return p != nil && p.rotate
}

func (p *Pagination) IsEllipses() bool {
	return p != nil && p.ellipses
}

func (p *Pagination) Presentation() Presentation {
	if p == nil {
		return defaultPresentation()
	}

	return p.presentation
}

// Pages returns the display sequence. Only the pages of the window are
// materialized, so without windowing the result holds one marker per page.
// Every call returns a new slice.
func (p *Pagination) Pages() []Marker {
	if p == nil {
		return []Marker{}
	}

	pages := p.window.Pages()
	if !p.windowed {
		return pages
	}

	return Annotate(pages, p.window, p.pageCount, p.ellipses)
}

// HasPrevious returns true if there is a page before the current one.
func (p *Pagination) HasPrevious() bool {
	return p.Page() > MinPage
}

// HasNext returns true if there is a page after the current one.
func (p *Pagination) HasNext() bool {
	return p.Page() < p.PageCount()
}

// IsActive returns true if m is the current page.
func (p *Pagination) IsActive(m Marker) bool {
	return !m.IsEllipsis() && m.Page() == p.Page()
}

// Offset returns the number of items before the current page.
func (p *Pagination) Offset() int {
	if p.PageCount() == 0 {
		return 0
	}

	return (p.Page() - 1) * p.PageSize()
}

// Err returns the configuration problem found by the last recompute, if any.
// An invalid page size or collection size leaves the pagination empty; an
// invalid max size disables windowing.
func (p *Pagination) Err() error {
	if p == nil {
		return nil
	}

	return p.err
}

// State is a snapshot of a Pagination for hosts that render from data.
type State struct {
	CurrentPage    int      `json:"currentPage"    yaml:"current_page"`
	PageSize       int      `json:"pageSize"       yaml:"page_size"`
	PageCount      int      `json:"pageCount"      yaml:"page_count"`
	CollectionSize int      `json:"collectionSize" yaml:"collection_size"`
	HasPrevious    bool     `json:"hasPrevious"    yaml:"has_previous"`
	HasNext        bool     `json:"hasNext"        yaml:"has_next"`
	Pages          []Marker `json:"pages"          yaml:"pages"`
	Presentation   `json:",inline" yaml:",inline"`
}

// RealPages returns how many entries of Pages are real page numbers.
func (s State) RealPages() int {
	return lo.CountBy(s.Pages, func(m Marker) bool {
		return !m.IsEllipsis()
	})
}

// State returns a snapshot of the current state.
func (p *Pagination) State() State {
	return State{
		CurrentPage:    p.Page(),
		PageSize:       p.PageSize(),
		PageCount:      p.PageCount(),
		CollectionSize: p.CollectionSize(),
		HasPrevious:    p.HasPrevious(),
		HasNext:        p.HasNext(),
		Pages:          p.Pages(),
		Presentation:   p.Presentation(),
	}
}
