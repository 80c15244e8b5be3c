// Package before builds a Computer that constructs its own Keyboard and
// Monitor. The high-level type depends on low-level concretes, so swapping a
// device means editing Computer.
package before

import (
	"fmt"
	"io"
)

// Keyboard is the only input a before-Computer can have.
type Keyboard struct{ out io.Writer }

func (k Keyboard) PressKey() error {
	_, err := fmt.Fprintln(k.out, "Key pressed")
	return err
}

// Monitor is the only output a before-Computer can have.
type Monitor struct{ out io.Writer }

func (m Monitor) Display(text string) error {
	_, err := fmt.Fprintf(m.out, "Displayed: %s\n", text)
	return err
}

// Computer builds its own Keyboard and Monitor, so neither can be swapped.
type Computer struct {
	keyboard Keyboard
	monitor  Monitor
}

// NewComputer hard-wires a Keyboard and a Monitor, both writing to out.
func NewComputer(out io.Writer) *Computer {
	return &Computer{
		keyboard: Keyboard{out: out},
		monitor:  Monitor{out: out},
	}
}

// Start presses a key and displays the boot message.
func (c *Computer) Start() error {
	if err := c.keyboard.PressKey(); err != nil {
		return err
	}
	return c.monitor.Display("Computer is on")
}
