// Package oop shows the building blocks of object-oriented code in Go terms:
// a type (Dog) with per-value fields, a package-level attribute shared by all
// values, methods, and a small polymorphic family (Shape) expressed through an
// interface instead of a base class.
package oop
