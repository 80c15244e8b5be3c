package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sghaida/oopsolid/internal/config"
	"github.com/sghaida/oopsolid/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env is what every section receives.
type env struct {
	out io.Writer
	cfg config.Config
	log *slog.Logger
}

type section struct {
	name  string
	title string
	run   func(env) error
}

var sections = []section{
	{name: "srp", title: "Single responsibility", run: runSRP},
	{name: "ocp", title: "Open/closed", run: runOCP},
	{name: "lsp", title: "Liskov substitution", run: runLSP},
	{name: "isp", title: "Interface segregation", run: runISP},
	{name: "dip", title: "Dependency inversion", run: runDIP},
}

// run executes the demo and returns an exit code: 0 on success, 1 when a
// section fails, 2 for bad flags or configuration.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("soliddemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "optional YAML config file")
	only := flags.String("only", "", "run a single section: srp, ocp, lsp, isp or dip")
	orderFile := flags.String("order-file", "", "where the SRP section saves the order")
	email := flags.String("email", "", "address the SRP section notifies")
	format := flags.String("format", "", "order file format: text or msgpack")
	input := flags.String("input", "", "input device for the DIP section: keyboard or mouse")
	output := flags.String("output", "", "output device for the DIP section: monitor or printer")
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "soliddemo:", err)
		return 2
	}
	override(&cfg.OrderFile, *orderFile)
	override(&cfg.Email, *email)
	override(&cfg.Format, *format)
	override(&cfg.InputDevice, *input)
	override(&cfg.OutputDevice, *output)
	override(&cfg.LogLevel, *logLevel)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "soliddemo:", err)
		return 2
	}

	selected, err := selectSections(*only)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "soliddemo:", err)
		return 2
	}

	logger, err := logging.Setup(stderr, cfg.LogLevel, "soliddemo")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "soliddemo:", err)
		return 2
	}

	e := env{out: stdout, cfg: cfg, log: logger}
	for _, s := range selected {
		logger.Debug("section start", "section", s.name)
		if _, err := fmt.Fprintf(stdout, "== %s ==\n", s.title); err != nil {
			logger.Error("write failed", "error", err)
			return 1
		}
		if err := s.run(e); err != nil {
			logger.Error("section failed", "section", s.name, "error", err)
			return 1
		}
	}
	return 0
}

func override(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func selectSections(only string) ([]section, error) {
	only = strings.ToLower(strings.TrimSpace(only))
	if only == "" {
		return sections, nil
	}
	for _, s := range sections {
		if s.name == only {
			return []section{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown section %q", only)
}

// linePrinter remembers the first write error so sections read top to bottom.
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
