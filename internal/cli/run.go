package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/srcfmt/internal/formatter"
	"github.com/dl/srcfmt/internal/input"
	"github.com/dl/srcfmt/internal/output"
	"github.com/dl/srcfmt/internal/scheduler"
	"github.com/dl/srcfmt/internal/walker"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0 // run completed without per-file failures
	ExitDirty = 1 // per-file failures, or --check found differences
	ExitFatal = 2 // startup or path-resolution error, no files touched
)

// Run executes a formatting run with the given config.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return ExitFatal
	}

	charset, err := formatter.ResolveCharset(cfg.Encoding)
	if err != nil {
		logger.Error("invalid encoding", "err", err)
		return ExitFatal
	}

	var header string
	if cfg.HeaderPath != "" {
		data, err := os.ReadFile(cfg.HeaderPath)
		if err != nil {
			logger.Error("cannot read header file", "path", cfg.HeaderPath, "err", err)
			return ExitFatal
		}
		header = string(data)
	}

	profile, err := ResolveProfile(cfg.ConfPath)
	if err != nil {
		logger.Error("cannot resolve profile", "err", err)
		return ExitFatal
	}
	if profile != "" {
		logger.Info("using formatter profile", "url", profile)
	}

	exclude, err := walker.NewFilter(cfg.Exclude)
	if err != nil {
		logger.Error("invalid exclude pattern", "err", err)
		return ExitFatal
	}

	fcfg := &formatter.Config{
		ProfileURL:  profile,
		SourceLevel: cfg.SourceLevel,
		CharsetName: cfg.Encoding,
		Charset:     charset,
		LineSep:     cfg.Separator(),
		Header:      header,
	}
	formatters := formatter.NewSet(formatter.Passthrough())

	// Root must be a regular file or a directory; anything else is fatal
	// before any formatting is attempted.
	info, err := os.Stat(cfg.Path)
	if err != nil {
		logger.Error("unsupported path", "path", cfg.Path, "err", err)
		return ExitFatal
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	var renderer output.Formatter
	if cfg.JSONOutput {
		renderer = output.NewJSONFormatter()
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles()
		}
		renderer = output.NewTextFormatter(styles, cfg.Check, cfg.Quiet)
	}

	reader := input.NewAdaptiveReader(0)
	sched := scheduler.New(cfg.Workers, formatters, fcfg, reader, cfg.Check)
	w := output.NewWriter()
	ow := output.NewOrderedWriter(w, renderer)

	var summary output.Summary

	switch {
	case info.Mode().IsRegular():
		result := sched.Process(cfg.Path)
		result.SeqNum = 1
		summary.Record(result)
		if result.Err != nil {
			logger.Warn("format failed", "path", result.Path, "err", result.Err)
		}
		results := make(chan output.Result, 1)
		results <- result
		close(results)
		ow.WriteOrdered(results, nil)

	case info.IsDir():
		fileCh, errCh := walker.Walk(cfg.Path, walker.Options{
			Gitignore: cfg.Gitignore,
			Hidden:    cfg.Hidden,
			Exclude:   exclude,
		})

		walkErrs := 0
		walkDone := make(chan struct{})
		go func() {
			defer close(walkDone)
			for err := range errCh {
				walkErrs++
				logger.Warn("walk error", "err", err)
			}
		}()

		resultCh := sched.Run(fileCh)
		ow.WriteOrdered(resultCh, func(r output.Result) {
			summary.Record(r)
			if r.Err != nil {
				logger.Warn("format failed", "path", r.Path, "err", r.Err)
			}
		})
		<-walkDone
		summary.Failed += walkErrs

	default:
		logger.Error("unsupported path: not a regular file or directory", "path", cfg.Path)
		return ExitFatal
	}

	ow.WriteSummary(summary)

	if summary.Failed > 0 {
		return ExitDirty
	}
	if cfg.Check && summary.Changed > 0 {
		return ExitDirty
	}
	return ExitOK
}
