package gopagebar

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// RawPagination is intended for API payloads and config files. For proper
// code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPagination `json:",inline"`
//	}
//
// Pointer fields distinguish "not set" from zero values so that defaults
// apply only to omitted options.
type RawPagination struct {
	// CollectionSize - total number of items. Required.
	CollectionSize int `json:"collectionSize" yaml:"collection_size"`
	// PageSize - items per page, DefaultPageSize when omitted.
	PageSize *int `json:"pageSize,omitempty" yaml:"page_size,omitempty"`
	// Page - requested current page, clamped into range.
	Page int `json:"page" yaml:"page"`
	// MaxSize - maximum number of visible page markers, 0 shows all pages.
	MaxSize        int   `json:"maxSize" yaml:"max_size"`
	Rotate         bool  `json:"rotate" yaml:"rotate"`
	Ellipses       *bool `json:"ellipses,omitempty" yaml:"ellipses,omitempty"`
	BoundaryLinks  bool  `json:"boundaryLinks" yaml:"boundary_links"`
	DirectionLinks *bool `json:"directionLinks,omitempty" yaml:"direction_links,omitempty"`
	Size           Size  `json:"size" yaml:"size"`
}

// DecodeRawPaginationYAML parses a YAML document into RawPagination.
func DecodeRawPaginationYAML(data []byte) (RawPagination, error) {
	var raw RawPagination
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RawPagination{}, fmt.Errorf("failed to unmarshal yaml pagination: %w", err)
	}

	return raw, nil
}

// Decode validates RawPagination and converts it into *Pagination. Unlike the
// With* setters, which keep an invalid configuration as an empty pagination
// and report it through Err, Decode rejects it.
func (r RawPagination) Decode(opts ...Option) (*Pagination, error) {
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("cannot decode pagination: %w", err)
	}

	p := NewPagination(r.CollectionSize)
	for _, opt := range opts {
		opt(p)
	}

	presentation := defaultPresentation()
	presentation.BoundaryLinks = r.BoundaryLinks
	presentation.Size = r.Size
	if r.DirectionLinks != nil {
		presentation.DirectionLinks = *r.DirectionLinks
	}

	p.pageSize = DefaultPageSize
	if r.PageSize != nil {
		p.pageSize = *r.PageSize
	}
	if r.Ellipses != nil {
		p.ellipses = *r.Ellipses
	}
	p.maxSize = r.MaxSize
	p.rotate = r.Rotate
	p.presentation = presentation
	p.page = r.Page
	p.Recompute()

	return p, nil
}

func (r RawPagination) validate() error {
	var errs []error

	if r.CollectionSize < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidCollectionSize, r.CollectionSize))
	}
	if r.PageSize != nil && *r.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPageSize, *r.PageSize))
	}
	if r.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, r.MaxSize))
	}
	if err := r.Size.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Option configures a Pagination built by RawPagination.Decode.
type Option func(*Pagination)

// WithDecodedLogger attaches a logger to the decoded Pagination.
func WithDecodedLogger(logger zerolog.Logger) Option {
	return func(p *Pagination) {
		p.WithLogger(logger)
	}
}

// WithDecodedHandler registers a page change observer on the decoded
// Pagination before its first recompute.
func WithDecodedHandler(handler PageChangeHandler) Option {
	return func(p *Pagination) {
		p.OnPageChange(handler)
	}
}
