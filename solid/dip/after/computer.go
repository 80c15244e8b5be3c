package after

import "errors"

// StartupMessage is what Start sends to the output device.
const StartupMessage = "Computer is on"

var (
	ErrNoInput  = errors.New("computer: no input device")
	ErrNoOutput = errors.New("computer: no output device")
)

// Computer is composed of one input and one output device.
type Computer struct {
	Input  InputDevice
	Output OutputDevice
}

// NewComputer assembles a Computer from any input and output device.
// Either may be nil; Start reports the missing one.
func NewComputer(in InputDevice, out OutputDevice) *Computer {
	return &Computer{Input: in, Output: out}
}

// Start presses the input device, then displays StartupMessage.
func (c *Computer) Start() error {
	if c.Input == nil {
		return ErrNoInput
	}
	if c.Output == nil {
		return ErrNoOutput
	}
	if err := c.Input.Press(); err != nil {
		return err
	}
	return c.Output.Display(StartupMessage)
}
