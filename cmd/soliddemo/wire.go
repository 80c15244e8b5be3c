package main

import (
	"fmt"
	"io"

	"github.com/sghaida/oopsolid/di"
	"github.com/sghaida/oopsolid/internal/config"
	"github.com/sghaida/oopsolid/solid/dip/after"
)

// Dependency keys recorded on the computer service.
const (
	KeyInput  di.DependencyKey = "input"
	KeyOutput di.DependencyKey = "output"
)

// deviceRegistry offers every known device, each writing to out.
func deviceRegistry(out io.Writer) *di.MapRegistry {
	return di.NewMapRegistry().
		Provide(config.InputKeyboard, after.NewKeyboard(out)).
		Provide(config.InputMouse, after.NewMouse(out)).
		Provide(config.OutputMonitor, after.NewMonitor(out)).
		Provide(config.OutputPrinter, after.NewPrinter(out))
}

// buildComputer resolves the configured devices and binds them into a
// Computer. Computer itself never learns which concrete devices it got.
func buildComputer(reg di.Registry, cfg config.Config) (*di.Service[after.Computer], error) {
	in, err := di.ResolveAs[after.InputDevice](reg, cfg, cfg.InputDevice)
	if err != nil {
		return nil, fmt.Errorf("input device: %w", err)
	}
	out, err := di.ResolveAs[after.OutputDevice](reg, cfg, cfg.OutputDevice)
	if err != nil {
		return nil, fmt.Errorf("output device: %w", err)
	}

	computer := di.Init(func() *after.Computer { return &after.Computer{} })
	_, err = computer.WithAll(
		di.Injecting(KeyInput, di.Interface(in), func(c *after.Computer, d *after.InputDevice) { c.Input = *d }),
		di.Injecting(KeyOutput, di.Interface(out), func(c *after.Computer, d *after.OutputDevice) { c.Output = *d }),
	)
	if err != nil {
		return nil, fmt.Errorf("wire computer: %w", err)
	}
	return computer, nil
}
