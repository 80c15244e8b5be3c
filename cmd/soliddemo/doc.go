// Command soliddemo runs the five SOLID demonstrations top to bottom. Each
// section first shows the flawed design (including the run-time failures it
// allows) and then the corrected one.
//
// Usage:
//
//	soliddemo [-config demo.yaml] [-only srp|ocp|lsp|isp|dip]
//	          [-order-file order.txt] [-email addr] [-format text|msgpack]
//	          [-input keyboard|mouse] [-output monitor|printer]
//	          [-log-level info]
//
// The SRP section writes the order file; it is the only file the command
// touches. The DIP section picks its devices by name from a registry and
// binds them into the computer with package di.
package main
