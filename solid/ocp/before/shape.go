// Package before computes areas with a kind switch. Every new shape means
// editing Area, which is the open/closed violation being illustrated.
package before

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape is returned for unknown kinds or missing dimensions.
var ErrUnsupportedShape = errors.New("unsupported shape")

const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// Shape is a kind tag plus positional dimensions.
type Shape struct {
	Kind string
	Args []float64
}

// NewShape returns a Shape of the given kind. Kind is not checked until Area.
func NewShape(kind string, args ...float64) Shape {
	return Shape{Kind: kind, Args: args}
}

// Area switches on Kind; every new kind means editing this method.
func (s Shape) Area() (float64, error) {
	switch s.Kind {
	case KindCircle:
		if len(s.Args) < 1 {
			return 0, fmt.Errorf("%w: circle needs a radius", ErrUnsupportedShape)
		}
		r := s.Args[0]
		return 3.14 * (r * r), nil
	case KindRectangle:
		if len(s.Args) < 2 {
			return 0, fmt.Errorf("%w: rectangle needs width and height", ErrUnsupportedShape)
		}
		return s.Args[0] * s.Args[1], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, s.Kind)
	}
}
