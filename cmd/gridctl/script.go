package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bonnth80/html-grid/internal/script"
)

func runScript(args []string) error {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	out := fs.String("o", "", "Output file, or - for stdout; empty skips rendering")
	format := fs.String("format", "", "Output format (png, svg); defaults to the output extension")
	timeout := fs.Duration("timeout", script.DefaultTimeout, "Maximum script run time")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gridctl script [options] file.lua\n\n")
		fs.PrintDefaults()
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	s, err := common.load()
	if err != nil {
		return err
	}
	logger := s.Logging.NewLogger(os.Stderr)

	t, err := newTarget(s, outputFormat(*format, *out, s))
	if err != nil {
		return err
	}
	r, err := newRenderer(s, t.surface, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := script.New(r,
		script.WithLogger(logger),
		script.WithOutput(os.Stderr),
		script.WithTimeout(*timeout),
	)
	defer engine.Close()

	start := time.Now()
	if err := engine.RunFile(ctx, fs.Arg(0)); err != nil {
		return err
	}
	logger.Debug("script completed", "file", fs.Arg(0), "elapsed", time.Since(start))

	if *out == "" {
		return nil
	}
	if err := writeOutput(t, *out); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	return nil
}
