// ABOUTME: CLI entry point for kilo-go: raw-mode screen with cursor navigation
// ABOUTME: Parses flags, loads config, wires signals, dispatches to editor or key inspector

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/editor"
	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code.
func run(argv []string, stdin, stdout *os.File, stderr io.Writer) int {
	args, err := parseFlags(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return editor.ExitOK
		}
		return editor.ExitFatal
	}

	if args.version {
		fmt.Fprintf(stdout, "kilo-go %s (%s) built %s\n", version, commit, date)
		return editor.ExitOK
	}

	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "kilo-go: getting working directory: %v\n", err)
		return editor.ExitFatal
	}

	settings, err := resolveSettings(args, cwd)
	if err != nil {
		fmt.Fprintf(stderr, "kilo-go: %v\n", err)
		return editor.ExitFatal
	}

	// The screen is the terminal; stderr lines would land in the frame.
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(stderr, "kilo-go: opening log file: %v\n", err)
			return editor.ExitFatal
		}
		defer f.Close()
		prev := log.SetOutput(f)
		defer log.SetOutput(prev)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	term := terminal.NewProcessTerminal(
		terminal.WithFiles(stdin, stdout),
		terminal.WithReadTimeout(settings.ReadTimeout),
	)

	if args.keys {
		if err := editor.Inspect(ctx, term); err != nil {
			fmt.Fprintf(stderr, "kilo-go: %v\n", err)
			return editor.ExitFatal
		}
		return editor.ExitOK
	}

	opts, err := editorOptions(settings)
	if err != nil {
		fmt.Fprintf(stderr, "kilo-go: %v\n", err)
		return editor.ExitFatal
	}
	log.Debug("starting editor: bound=%s timeout=%s", settings.EndBound, settings.ReadTimeout)
	return editor.Execute(ctx, term, opts, stderr)
}

// resolveSettings layers defaults, config files and flags, then validates.
// An explicit --config replaces the global and project files.
func resolveSettings(args cliArgs, cwd string) (*config.Settings, error) {
	var (
		loaded *config.Settings
		err    error
	)
	if args.configPath != "" {
		loaded, err = config.LoadPath(args.configPath)
	} else {
		loaded, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	s := config.Overlay(config.Overlay(config.Defaults(version), loaded), args.overrides())
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func editorOptions(s *config.Settings) (editor.Options, error) {
	bound, err := editor.ParseEndBound(s.EndBound)
	if err != nil {
		return editor.Options{}, err
	}
	return editor.Options{
		Banner:   s.BannerText(),
		Marker:   s.Marker,
		QuitKey:  s.QuitByte(),
		EndBound: bound,
	}, nil
}
