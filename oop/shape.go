package oop

import (
	"fmt"
	"math"
	"reflect"
)

// AreaUnit labels every area this package prints.
const AreaUnit = "sq. units"

// Shape is anything with an area that can describe itself.
type Shape interface {
	fmt.Stringer
	Area() float64
}

// Circle is a Shape defined by its radius.
type Circle struct {
	Radius float64
}

// Area returns π·r².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c Circle) String() string { return fmt.Sprintf("Circle with radius %g", c.Radius) }

// Square is a Shape defined by the length of one side.
type Square struct {
	Side float64
}

// Area returns the side squared.
func (s Square) Area() float64 { return s.Side * s.Side }

func (s Square) String() string { return fmt.Sprintf("Square with side %g", s.Side) }

// FormatArea renders the area of s with two decimals and the unit label.
func FormatArea(s Shape) string {
	return fmt.Sprintf("%.2f %s", s.Area(), AreaUnit)
}

// Kind reports the dynamic type behind a Shape, e.g. "oop.Square".
func Kind(s Shape) string {
	if s == nil {
		return "<nil>"
	}
	return reflect.TypeOf(s).String()
}
