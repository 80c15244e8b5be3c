// Package oopsolid collects small, runnable demonstrations of object-oriented
// fundamentals and of the five SOLID principles, written the Go way: behaviour
// is expressed through small interfaces and composition rather than class
// hierarchies, and capabilities a type lacks are simply absent from its
// method set.
//
// Layout:
//   - oop: a Dog type and a Shape family (Circle, Square)
//   - solid/<principle>/before, solid/<principle>/after: each flawed design
//     next to its corrected counterpart (srp, ocp, lsp, isp, dip)
//   - di: explicit wiring helpers used to assemble the DIP computer
//   - cmd/oopdemo, cmd/soliddemo: the runnable demos
package oopsolid
