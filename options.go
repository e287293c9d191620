package gopagebar

import "fmt"

// Size is the presentation size of the navigation bar. It has no effect on
// the computed markers.
type Size string

const (
	SizeDefault Size = ""
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
)

var ErrInvalidSize = fmt.Errorf("size must be one of '%s', '%s' or empty", SizeSmall, SizeLarge)

func (s Size) Valid() bool {
	return s == SizeDefault || s == SizeSmall || s == SizeLarge
}

func (s Size) validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: got '%s'", ErrInvalidSize, s)
	}

	return nil
}

// Presentation groups the flags that only affect how a host draws the bar.
type Presentation struct {
	// BoundaryLinks shows "first" and "last" links.
	BoundaryLinks bool `json:"boundaryLinks" yaml:"boundary_links"`
	// DirectionLinks shows "previous" and "next" links.
	DirectionLinks bool `json:"directionLinks" yaml:"direction_links"`
	Size           Size `json:"size"           yaml:"size"`
}

func defaultPresentation() Presentation {
	return Presentation{
		BoundaryLinks:  false,
		DirectionLinks: true,
		Size:           SizeDefault,
	}
}
