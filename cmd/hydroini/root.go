package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hydroini/pkg/config"
	"github.com/dmitrymomot/hydroini/pkg/i18n"
	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

// errInvalid signals that input failed validation. The violations have been
// printed already.
var errInvalid = errors.New("validation failed")

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg    Config
	log    *slog.Logger
	stderr io.Writer
	tr     *i18n.Translator
	lang   string

	flags struct {
		logLevel  string
		logFormat string
		noColor   bool
		verbose   bool
		lang      string
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hydroini",
		Short: "Validate and format hydraulic model INI files",
		Long: `hydroini reads the section based INI files of D-Flow FM and 1D2D
models, checks every section against its record type and reports all
structural violations at once: list lengths that disagree with their
counters, conditionally required or forbidden keys and incomplete
location specifications.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from HYDROINI_LOG_LEVEL)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text, json (default from HYDROINI_LOG_FORMAT)")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log at debug level")
	pf.StringVar(&a.flags.lang, "lang", "", "language of violation messages: en, nl (default from HYDROINI_LANG)")

	cmd.AddCommand(
		newValidateCmd(a),
		newFmtCmd(a),
		newExportCmd(a),
		newTypesCmd(a),
	)
	return cmd
}

// setup resolves settings and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	levelName := a.cfg.LogLevel
	if a.flags.logLevel != "" {
		levelName = a.flags.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}

	formatName := a.cfg.LogFormat
	if a.flags.logFormat != "" {
		formatName = a.flags.logFormat
	}
	format, err := logger.ParseFormat(formatName)
	if err != nil {
		return err
	}

	a.stderr = cmd.ErrOrStderr()
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(a.stderr),
		logger.WithCommand(cmd.Name()),
		logger.WithVerbose(a.flags.verbose),
	)

	if a.cfg.NoColor || a.flags.noColor {
		color.NoColor = true
	}

	a.lang = a.cfg.Lang
	if a.flags.lang != "" {
		a.lang = a.flags.lang
	}
	a.tr, err = i18n.NewValidationTranslator(cmd.Context(), i18n.WithLogger(a.log))
	if err != nil {
		return err
	}
	if a.lang != i18n.DefaultLanguage && !a.tr.Supports(a.lang) {
		return fmt.Errorf("%w: %s", i18n.ErrLanguageNotSupported, a.lang)
	}
	return nil
}

func (a *app) newPrinter(out io.Writer) *printer {
	return newPrinter(out, func(v validator.Violation) string {
		return a.tr.Violation(a.lang, v)
	})
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
}
