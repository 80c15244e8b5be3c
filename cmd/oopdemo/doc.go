// Command oopdemo walks through the object-oriented basics: it builds two
// dogs and two shapes, calls their methods and prints what they report.
//
// Usage:
//
//	oopdemo [-config demo.yaml] [-log-level debug]
//
// Only the log_level setting of the config file is used here; the rest
// belongs to soliddemo and is validated but otherwise ignored.
package main
