package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/oopsolid/internal/config"
	"github.com/sghaida/oopsolid/internal/logging"
	"github.com/sghaida/oopsolid/oop"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("oopdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "optional YAML config file")
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "oopdemo:", err)
		return 2
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "oopdemo:", err)
		return 2
	}

	logger, err := logging.Setup(stderr, cfg.LogLevel, "oopdemo")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "oopdemo:", err)
		return 2
	}

	logger.Debug("starting", "env", cfg.Env)
	if err := demo(stdout); err != nil {
		logger.Error("demo failed", "error", err)
		return 1
	}
	logger.Debug("done")
	return 0
}

func demo(w io.Writer) error {
	p := &linePrinter{w: w}

	bart := oop.NewDog("Bart", "Labrador", 3)
	bella := oop.NewDog("Bella", "Bulldog", 5)

	p.println(bart.Bark())
	p.println(bella.Describe())
	p.printf("Species: %s\n", bart.Species())
	p.printf("Age: %d\n", bart.Age)

	circle := oop.Circle{Radius: 5}
	square := oop.Square{Side: 4}

	p.println(circle)
	p.printf("Circle area: %s\n", oop.FormatArea(circle))
	p.println(square)
	p.printf("Square area: %s\n", oop.FormatArea(square))
	p.printf("Type of square: %s\n", oop.Kind(square))

	return p.err
}

// linePrinter remembers the first write error so the demo reads top to bottom.
type linePrinter struct {
	w   io.Writer
	err error
}

func (p *linePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *linePrinter) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
