// Package solid groups the five SOLID demonstrations.
//
// Each principle lives in its own directory with two independent packages:
// before holds the flawed design, after holds the corrected one. They share
// nothing, so each can be read and tested on its own.
//
//   - srp: single responsibility (order totals, persistence, notification)
//   - ocp: open/closed (area calculation over an open set of shapes)
//   - lsp: Liskov substitution (birds that move and birds that fly)
//   - isp: interface segregation (workers that eat and workers that don't)
//   - dip: dependency inversion (a computer wired to abstract devices)
package solid
