package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wcag-contrast/internal/color"
	"wcag-contrast/internal/config"
	"wcag-contrast/internal/metrics"
	"wcag-contrast/internal/report"
	"wcag-contrast/internal/ui"
	"wcag-contrast/internal/wcag"
)

var version = "v1.0.0"

// Exit codes
const (
	exitOK    = 0
	exitError = 1 // invalid color or configuration
	exitUsage = 2 // bad flags or arguments
)

type options struct {
	foreground  string
	background  string
	configPath  string
	json        bool
	ascii       bool
	noSwatch    bool
	metricsFile string
}

// inputError is a color that failed to parse, tagged with the flag it came from
type inputError struct {
	role string
	err  error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%s color: %v", e.role, e.err)
}

func (e *inputError) Unwrap() error {
	return e.err
}

// configError wraps configuration loading and validation failures
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "contrast --foreground <color> --background <color>",
		Short: "Check WCAG color contrast ratios between two colors",
		Long: "Computes the WCAG 2.0 contrast ratio between a foreground and a background color\n" +
			"and reports AA and AAA compliance for normal and large text.\n\n" +
			"Colors may be hex (#fff, #ffffff), rgb()/rgba(), hsl()/hsla() or CSS color names.",
		Example:       "  contrast --foreground '#333' --background '#fff'\n  contrast -f 'hsl(210, 50%, 40%)' -b white --json",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.foreground, "foreground", "f", "", "foreground (text) color")
	flags.StringVarP(&opts.background, "background", "b", "", "background color")
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.BoolVar(&opts.json, "json", false, "print the result as JSON")
	flags.BoolVar(&opts.ascii, "ascii", false, "use ASCII symbols in the report")
	flags.BoolVar(&opts.noSwatch, "no-swatch", false, "do not print color swatches")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	_ = cmd.MarkFlagRequired("foreground")
	_ = cmd.MarkFlagRequired("background")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// execute runs the command and maps its outcome to a process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	ui.SetLogOutput(stderr)

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var inErr *inputError
	var cfgErr *configError
	switch {
	case errors.As(err, &inErr):
		ui.ErrorNote(stderr, parseDiagnostic(inErr))
		return exitError
	case errors.As(err, &cfgErr):
		ui.LogStatus("error", cfgErr.Error())
		return exitError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return exitUsage
	}
}

func parseDiagnostic(e *inputError) string {
	var b strings.Builder

	input := ""
	reason := e.err.Error()
	var pe *color.ParseError
	if errors.As(e.err, &pe) {
		input = pe.Input
		reason = pe.Reason
	}

	fmt.Fprintf(&b, "Invalid %s color: %q\n", e.role, input)
	fmt.Fprintf(&b, "Reason: %s\n\n", reason)
	b.WriteString("Please provide a valid CSS color. Accepted formats:\n")
	for _, f := range color.AcceptedFormats() {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	return strings.TrimRight(b.String(), "\n")
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.Output = config.OutputText
		if opts.json {
			cfg.Output = config.OutputJSON
		}
	}
	if flags.Changed("ascii") {
		cfg.ASCII = opts.ascii
	}
	if flags.Changed("no-swatch") {
		cfg.Swatch = !opts.noSwatch
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, stdout io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return &configError{err: err}
	}
	ui.SetLogLevel(cfg.LogLevel)
	if cfg.Source != "" {
		ui.LogDebug("config loaded from %s", cfg.Source)
	}

	rec := metrics.New()
	if cfg.MetricsFile != "" {
		defer func() {
			if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
				ui.LogStatus("warning", "Could not write metrics: "+err.Error())
			}
		}()
	}

	fg, err := parseRole(rec, "foreground", opts.foreground)
	if err != nil {
		return err
	}
	bg, err := parseRole(rec, "background", opts.background)
	if err != nil {
		return err
	}

	res := wcag.Check(fg, bg)
	rec.ObserveCheck(res.Level.Label(), float64(res.Ratio))
	ui.LogDebug("contrast %s, level %s", res.Ratio, res.Level.Label())

	if cfg.Output == config.OutputJSON {
		return report.JSON(stdout, res)
	}
	return report.Text(stdout, res, report.Options{ASCII: cfg.ASCII, Swatch: cfg.Swatch})
}

func parseRole(rec *metrics.Recorder, role, input string) (color.Color, error) {
	c, format, err := color.ParseFormat(input)
	if err != nil {
		rec.ObserveParseError(role)
		return color.Color{}, &inputError{role: role, err: err}
	}
	rec.ObserveParse(format.String())
	ui.LogDebug("%s %q parsed as %s: %s", role, input, format, c.Hex())
	return c, nil
}
