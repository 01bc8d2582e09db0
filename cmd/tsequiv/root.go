package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/typescript-eslint/tsequiv/internal/config"
	"github.com/typescript-eslint/tsequiv/internal/jsparse"
	"github.com/typescript-eslint/tsequiv/internal/tsparse"
	"github.com/typescript-eslint/tsequiv/internal/verify"
)

type app struct {
	configPath string
	verbose    bool
	trace      bool
	color      string

	// flag overrides, applied on top of the loaded config when set
	mode    string
	node    string
	timeout time.Duration
	workers int

	cfg    config.Config
	tracer trace.TracerProvider
	spans  *spanLogger
}

func newRootCommand() *cobra.Command {
	a := &app{tracer: noop.NewTracerProvider()}
	root := &cobra.Command{
		Use:           "tsequiv",
		Short:         "Check TypeScript conversions for structural equivalence",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.BoolVar(&a.trace, "trace", false, "log a line per parse span to stderr")
	flags.StringVar(&a.color, "color", "auto", "colorize output: auto, always or never")
	flags.StringVar(&a.mode, "mode", "", "ts parser: exec runs node, goja embeds the compiler")
	flags.StringVar(&a.node, "node", "", "node executable for exec mode")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-file parse timeout")
	flags.IntVarP(&a.workers, "workers", "j", 0, "files verified concurrently")

	root.AddCommand(a.compareCommand(), a.verifyCommand(), a.dumpCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = config.Mode(a.mode)
	}
	if flags.Changed("node") {
		cfg.Node = a.node
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	switch a.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", a.color)
	}

	if a.trace {
		a.spans = newSpanLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
		a.tracer = a.spans.provider
	}
	slog.Debug("loaded config",
		slog.String("mode", string(cfg.Mode)),
		slog.Duration("timeout", cfg.Timeout),
		slog.Int("workers", cfg.Workers))
	return nil
}

func (a *app) shutdown(cmd *cobra.Command) error {
	if a.spans == nil {
		return nil
	}
	return a.spans.provider.Shutdown(cmd.Context())
}

func (a *app) useColor() bool {
	switch a.color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) jsParser() *jsparse.Parser {
	return jsparse.New(
		jsparse.WithMaxFileSize(a.cfg.MaxFileSize),
		jsparse.WithTracerProvider(a.tracer),
	)
}

func (a *app) tsParser() verify.FileParser {
	opts := []tsparse.Option{
		tsparse.WithNode(a.cfg.Node),
		tsparse.WithModulePaths(a.cfg.ModulePaths...),
		tsparse.WithTimeout(a.cfg.Timeout),
		tsparse.WithMaxFileSize(a.cfg.MaxFileSize),
		tsparse.WithPreflight(a.cfg.PreflightEnabled()),
		tsparse.WithTracerProvider(a.tracer),
	}
	if a.cfg.Bundle != "" {
		opts = append(opts, tsparse.WithBundle(a.cfg.Bundle))
	}
	if a.cfg.Mode == config.ModeGoja {
		return tsparse.NewRuntimeParser(opts...)
	}
	return tsparse.NewExecParser(opts...)
}
