// Package di wires the demonstration components together explicitly.
//
// A Service holds one constructed value (Val) plus the dependencies that were
// bound into it (Deps). Injectors mutate a Service in place and report wiring
// mistakes as typed errors, so a composition root can fail early and tests
// can assert on exactly what went wrong.
//
// There is no container and no reflection-driven injection: every binding is a
// plain function written at the call site.
//
// The solid demo uses two pieces of this package:
//
//   - MapRegistry maps configured device names ("keyboard", "monitor", ...)
//     to implementations, so the composition root picks devices by name.
//   - Service + Injecting binds the chosen devices into a Computer, recording
//     what was bound so the wiring can be inspected in tests.
//
// Typical wiring:
//
//	in, err := di.ResolveAs[after.InputDevice](reg, cfg, "keyboard")
//	computer := di.Init(func() *after.Computer { return &after.Computer{} })
//	_, err = computer.WithAll(
//		di.Injecting(KeyInput, di.Interface(in), func(c *after.Computer, d *after.InputDevice) { c.Input = *d }),
//	)
package di
