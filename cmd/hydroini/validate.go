package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hydroini/pkg/async"
	"github.com/dmitrymomot/hydroini/pkg/catalog"
	"github.com/dmitrymomot/hydroini/pkg/ini"
	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/metrics"
	"github.com/dmitrymomot/hydroini/pkg/schema"
	"github.com/dmitrymomot/hydroini/pkg/watcher"
)

type validateOptions struct {
	watch       bool
	metricsFile string
	jobs        int
}

func newValidateCmd(a *app) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate model files",
		Long: `Parse every file, resolve the record type of each section and validate it.
All violations of all sections are reported. The exit code is 1 when any
section is invalid.

Examples:
  # Validate a model definition and its structure file
  hydroini validate FlowFM.mdu structures.ini

  # Keep validating while editing
  hydroini validate --watch crsdef.ini

  # Export validation metrics for the node exporter textfile collector
  hydroini validate --metrics-file /var/lib/node_exporter/hydroini.prom *.ini`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.validate(ctx, cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "validate again whenever a file changes")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after each run")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", -1, "files checked concurrently, 0 for one per CPU (default from HYDROINI_JOBS)")
	return cmd
}

func (a *app) validate(ctx context.Context, cmd *cobra.Command, paths []string, opts validateOptions) error {
	var collector *metrics.Collector
	regOpts := []schema.Option{schema.WithLogger(a.log)}
	if opts.metricsFile != "" {
		collector = metrics.NewCollector()
		regOpts = append(regOpts, schema.WithObserver(collector))
	}

	reg, err := catalog.NewRegistry(regOpts...)
	if err != nil {
		return err
	}

	jobs := a.cfg.Jobs
	if opts.jobs >= 0 {
		jobs = opts.jobs
	}

	p := a.newPrinter(cmd.OutOrStdout())
	run := func(files []string) bool {
		checks, err := async.Map(ctx, files, jobs, func(ctx context.Context, path string) (fileCheck, error) {
			return a.checkFile(ctx, reg, path), nil
		})
		if err != nil {
			a.log.Debug("run interrupted", logger.Error(err))
		}

		valid := true
		for _, c := range checks {
			if c.path == "" {
				valid = false
				continue
			}
			if !a.report(logger.ContextWithFile(ctx, c.path), p, collector, c) {
				valid = false
			}
		}
		if collector != nil {
			if err := collector.WriteTextfile(opts.metricsFile); err != nil {
				a.log.Error("metrics not written", logger.File(opts.metricsFile), logger.Error(err))
			}
		}
		return valid
	}

	valid := run(paths)
	if !opts.watch {
		if !valid {
			return errInvalid
		}
		return nil
	}

	w, err := watcher.New(watcher.WithDebounce(a.cfg.WatchDebounce), watcher.WithLogger(a.log))
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(paths...); err != nil {
		return err
	}

	a.log.Info("watching files", slog.Int("files", len(paths)))
	return w.Run(ctx, func(changed []string) {
		fmt.Fprintln(cmd.OutOrStdout())
		run(changed)
	})
}

// fileCheck is the outcome of checking one file. Err is set when the file
// could not be read or parsed.
type fileCheck struct {
	path    string
	results []ini.Result
	err     error
}

func (a *app) checkFile(ctx context.Context, reg *schema.Registry, path string) fileCheck {
	ctx = logger.ContextWithFile(ctx, path)
	a.log.DebugContext(ctx, "checking file")

	doc, err := ini.ParseFile(path)
	if err != nil {
		return fileCheck{path: path, err: err}
	}
	return fileCheck{path: path, results: ini.DecodeSections(reg, doc)}
}

// report prints one checked file and tells whether all of its sections were
// valid.
func (a *app) report(ctx context.Context, p *printer, collector *metrics.Collector, c fileCheck) bool {
	observe := func(outcome string) {
		if collector != nil {
			collector.ObserveFile(outcome)
		}
	}

	if c.err != nil {
		a.log.DebugContext(ctx, "file not parsed", logger.Error(c.err))
		p.fileError(c.path, c.err)
		observe(metrics.OutcomeError)
		return false
	}

	for _, res := range c.results {
		if res.Err != nil {
			a.log.DebugContext(logger.ContextWithSection(ctx, res.Section.Header), "section invalid",
				slog.Int("index", res.Index+1),
				logger.Error(res.Err),
			)
		}
	}

	failed := p.results(c.path, c.results)
	a.log.DebugContext(ctx, "file validated",
		slog.Int("sections", len(c.results)),
		slog.Int("invalid", failed),
	)

	if failed > 0 {
		observe(metrics.OutcomeInvalid)
		return false
	}
	observe(metrics.OutcomeValid)
	return true
}
