package oop_test

import (
	"math"
	"testing"

	"github.com/sghaida/oopsolid/oop"
	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		shape     oop.Shape
		wantArea  float64
		wantStr   string
		wantPrint string
		wantKind  string
	}{
		{
			name:      "circle",
			shape:     oop.Circle{Radius: 5},
			wantArea:  math.Pi * 25,
			wantStr:   "Circle with radius 5",
			wantPrint: "78.54 sq. units",
			wantKind:  "oop.Circle",
		},
		{
			name:      "square",
			shape:     oop.Square{Side: 4},
			wantArea:  16,
			wantStr:   "Square with side 4",
			wantPrint: "16.00 sq. units",
			wantKind:  "oop.Square",
		},
		{
			name:      "fractional square",
			shape:     oop.Square{Side: 1.5},
			wantArea:  2.25,
			wantStr:   "Square with side 1.5",
			wantPrint: "2.25 sq. units",
			wantKind:  "oop.Square",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.wantArea, tc.shape.Area(), 1e-9)
			assert.Equal(t, tc.wantStr, tc.shape.String())
			assert.Equal(t, tc.wantPrint, oop.FormatArea(tc.shape))
			assert.Equal(t, tc.wantKind, oop.Kind(tc.shape))
		})
	}
}

func TestKind_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", oop.Kind(nil))
}
