package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sghaida/oopsolid/di"
	"github.com/sghaida/oopsolid/internal/config"
	"github.com/sghaida/oopsolid/solid/dip/after"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRegistry_Keys(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{config.InputKeyboard, config.OutputMonitor, config.InputMouse, config.OutputPrinter},
		deviceRegistry(&bytes.Buffer{}).Keys())
}

func TestBuildComputer_RecordsDeps(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := config.Default()
	cfg.InputDevice = config.InputMouse

	svc, err := buildComputer(deviceRegistry(&out), cfg)
	require.NoError(t, err)

	assert.True(t, svc.Has(KeyInput))
	assert.True(t, svc.Has(KeyOutput))

	in, err := di.TryGetAs[after.Computer, after.InputDevice](svc, KeyInput)
	require.NoError(t, err)
	assert.Equal(t, after.NewMouse(&out), *in)

	require.NoError(t, svc.Value().Start())
	assert.Equal(t, "Mouse clicked\nDisplayed: Computer is on\n", out.String())
}

func TestBuildComputer_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := config.Default()

	// output registered under an input name
	swapped := di.NewMapRegistry().
		Provide(config.InputKeyboard, after.NewMonitor(&out)).
		Provide(config.OutputMonitor, after.NewMonitor(&out))
	_, err := buildComputer(swapped, cfg)
	var wt di.WrongTypeDependencyError
	require.True(t, errors.As(err, &wt))
	assert.Contains(t, err.Error(), "input device")

	missingOutput := di.NewMapRegistry().Provide(config.InputKeyboard, after.NewKeyboard(&out))
	_, err = buildComputer(missingOutput, cfg)
	var md di.MissingDependencyError
	require.True(t, errors.As(err, &md))
	assert.Equal(t, di.Key(config.OutputMonitor), md.Key)

	_, err = buildComputer(nil, cfg)
	assert.ErrorAs(t, err, &di.MissingDependencyError{})
}
