// Package config loads settings for the demo commands.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, then OOPSOLID_* environment variables. Commands apply
// their flags on top and call Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "OOPSOLID_"

// Device names understood by the solid demo.
const (
	InputKeyboard = "keyboard"
	InputMouse    = "mouse"
	OutputMonitor = "monitor"
	OutputPrinter = "printer"
)

// Order file encodings.
const (
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

// Config holds every setting the demo commands read. Zero values are not
// meaningful; start from Default or Load.
type Config struct {
	Env          string `yaml:"env"`
	LogLevel     string `yaml:"log_level"`
	OrderFile    string `yaml:"order_file"`
	Email        string `yaml:"email"`
	InputDevice  string `yaml:"input_device"`
	OutputDevice string `yaml:"output_device"`
	Format       string `yaml:"format"`
}

// Default returns the built-in settings: text order file "order.txt",
// keyboard and monitor, info logging.
func Default() Config {
	return Config{
		Env:          "local",
		LogLevel:     "info",
		OrderFile:    "order.txt",
		Email:        "test@email.com",
		InputDevice:  InputKeyboard,
		OutputDevice: OutputMonitor,
		Format:       FormatText,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. It does not validate: callers apply
// their own overrides first and then call Validate once.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

// LoadFromEnv is Load without a file.
func LoadFromEnv() (Config, error) {
	return load("", os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	}
	applyEnv(&cfg, lookup)
	return cfg, nil
}

// decodeYAML rejects unknown keys so typos surface instead of being ignored.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set("ENV", &cfg.Env)
	set("LOG_LEVEL", &cfg.LogLevel)
	set("ORDER_FILE", &cfg.OrderFile)
	set("EMAIL", &cfg.Email)
	set("INPUT_DEVICE", &cfg.InputDevice)
	set("OUTPUT_DEVICE", &cfg.OutputDevice)
	set("FORMAT", &cfg.Format)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.OrderFile) == "":
		return errors.New("config: order_file must not be empty")
	case strings.TrimSpace(c.Email) == "":
		return errors.New("config: email must not be empty")
	}
	if !oneOf(c.InputDevice, InputKeyboard, InputMouse) {
		return fmt.Errorf("config: unknown input_device %q", c.InputDevice)
	}
	if !oneOf(c.OutputDevice, OutputMonitor, OutputPrinter) {
		return fmt.Errorf("config: unknown output_device %q", c.OutputDevice)
	}
	if !oneOf(c.Format, FormatText, FormatMsgpack) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "error") {
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
