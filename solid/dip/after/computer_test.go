package after_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sghaida/oopsolid/solid/dip/after"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a test double satisfying both device interfaces.
type recorder struct {
	calls    []string
	pressErr error
}

func (r *recorder) Press() error {
	r.calls = append(r.calls, "press")
	return r.pressErr
}

func (r *recorder) Display(text string) error {
	r.calls = append(r.calls, "display:"+text)
	return nil
}

func TestComputer_StartWithAnyDevices(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   func(*bytes.Buffer) after.InputDevice
		out  func(*bytes.Buffer) after.OutputDevice
		want string
	}{
		{
			name: "keyboard and monitor",
			in:   func(b *bytes.Buffer) after.InputDevice { return after.NewKeyboard(b) },
			out:  func(b *bytes.Buffer) after.OutputDevice { return after.NewMonitor(b) },
			want: "Key pressed\nDisplayed: Computer is on\n",
		},
		{
			name: "mouse and monitor",
			in:   func(b *bytes.Buffer) after.InputDevice { return after.NewMouse(b) },
			out:  func(b *bytes.Buffer) after.OutputDevice { return after.NewMonitor(b) },
			want: "Mouse clicked\nDisplayed: Computer is on\n",
		},
		{
			name: "keyboard and printer",
			in:   func(b *bytes.Buffer) after.InputDevice { return after.NewKeyboard(b) },
			out:  func(b *bytes.Buffer) after.OutputDevice { return after.NewPrinter(b) },
			want: "Key pressed\nPrinted: Computer is on\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			c := after.NewComputer(tc.in(&buf), tc.out(&buf))
			require.NoError(t, c.Start())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestComputer_StartOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	require.NoError(t, after.NewComputer(rec, rec).Start())
	assert.Equal(t, []string{"press", "display:" + after.StartupMessage}, rec.calls)
}

func TestComputer_StartErrors(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	assert.ErrorIs(t, after.NewComputer(nil, rec).Start(), after.ErrNoInput)
	assert.ErrorIs(t, after.NewComputer(rec, nil).Start(), after.ErrNoOutput)
	assert.Empty(t, rec.calls)

	boom := errors.New("stuck key")
	failing := &recorder{pressErr: boom}
	assert.ErrorIs(t, after.NewComputer(failing, failing).Start(), boom)
	assert.Equal(t, []string{"press"}, failing.calls)
}
