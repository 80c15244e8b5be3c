// Package after makes Computer depend on two abstractions, InputDevice and
// OutputDevice. Concrete devices are injected, so any of them can be swapped
// without touching Computer.
package after

import (
	"fmt"
	"io"
)

// InputDevice is anything the Computer can read a key press or click from.
type InputDevice interface {
	Press() error
}

// OutputDevice is anything the Computer can show text on.
type OutputDevice interface {
	Display(text string) error
}

// Keyboard is an InputDevice that reports key presses to Out.
type Keyboard struct{ Out io.Writer }

// NewKeyboard returns a Keyboard writing to out.
func NewKeyboard(out io.Writer) Keyboard { return Keyboard{Out: out} }

// Press writes "Key pressed".
func (k Keyboard) Press() error {
	_, err := fmt.Fprintln(k.Out, "Key pressed")
	return err
}

// Mouse is an InputDevice that reports clicks to Out.
type Mouse struct{ Out io.Writer }

// NewMouse returns a Mouse writing to out.
func NewMouse(out io.Writer) Mouse { return Mouse{Out: out} }

// Press writes "Mouse clicked".
func (m Mouse) Press() error {
	_, err := fmt.Fprintln(m.Out, "Mouse clicked")
	return err
}

// Monitor is an OutputDevice that prefixes text with "Displayed: ".
type Monitor struct{ Out io.Writer }

// NewMonitor returns a Monitor writing to out.
func NewMonitor(out io.Writer) Monitor { return Monitor{Out: out} }

// Display writes text to Out.
func (m Monitor) Display(text string) error {
	_, err := fmt.Fprintf(m.Out, "Displayed: %s\n", text)
	return err
}

// Printer is an OutputDevice that prefixes text with "Printed: ".
type Printer struct{ Out io.Writer }

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) Printer { return Printer{Out: out} }

// Display writes text to Out.
func (p Printer) Display(text string) error {
	_, err := fmt.Fprintf(p.Out, "Printed: %s\n", text)
	return err
}

var (
	_ InputDevice  = Keyboard{}
	_ InputDevice  = Mouse{}
	_ OutputDevice = Monitor{}
	_ OutputDevice = Printer{}
)
