package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tpick/internal/candidates"
	"tpick/internal/config"
	"tpick/internal/options"
	"tpick/internal/ui"
)

// envLog names the environment variable holding the debug log path
const envLog = "TPICK_LOG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one picking session and returns the exit status: 0 when a
// candidate was accepted and printed, 1 otherwise.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(args, os.Getenv(options.EnvDefaultOpts))
	if err != nil {
		if !errors.Is(err, options.ErrHelp) {
			fmt.Fprintf(stderr, "tpick: %v\n", err)
		}
		options.Usage(stderr)
		return 1
	}

	// Set up logging
	logPath := opts.LogPath
	if logPath == "" {
		logPath = os.Getenv(envLog)
	}
	if logPath != "" {
		logFile, err := tea.LogToFile(logPath, "tpick")
		if err != nil {
			fmt.Fprintf(stderr, "tpick: could not open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "tpick: %v\n", err)
		return 1
	}
	settings := opts.Apply(cfg)

	if opts.Stdin {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fmt.Fprintln(stderr, "tpick: reading things from a terminal, end the list with ^D")
		}
	}

	things, err := candidates.Load(opts.Args, opts.Stdin, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tpick: %v\n", err)
		if errors.Is(err, candidates.ErrConflictingSources) || errors.Is(err, candidates.ErrNoCandidates) {
			options.Usage(stderr)
		}
		return 1
	}
	log.Printf("loaded %d candidates, prefix %q suffix %q", len(things), settings.Prefix, settings.Suffix)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("received %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := ui.Run(ctx, ui.Options{
		Candidates: things,
		Prefix:     settings.Prefix,
		Suffix:     settings.Suffix,
		Prompt:     settings.Prompt,
		QuitOnQQ:   settings.QuitOnQQ,
	}, ui.RunOptions{AltScreen: settings.AltScreen})
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(stderr, "tpick: %v\n", err)
		return 1
	}

	if !result.Accepted {
		return 1
	}
	fmt.Fprintln(stdout, result.Selection)
	return 0
}

// loadConfig reads an explicit config file, or the default one when present
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.NewConfigServiceForPath(path).LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}

	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("config from %s", configSvc.Path())
	return cfg, nil
}
