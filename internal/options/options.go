// Package options parses the tpick command line.
//
// Options come from two places: the TPICK_DEFAULT_OPTS environment variable,
// split like a shell would split it, and the command line itself. The
// environment is parsed first so the command line wins.
package options

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/shlex"
	"github.com/spf13/pflag"

	"tpick/internal/config"
)

// EnvDefaultOpts names the environment variable holding default flags
const EnvDefaultOpts = "TPICK_DEFAULT_OPTS"

// ErrHelp is returned when -h or --help was given
var ErrHelp = errors.New("help requested")

// Options are the parsed flags. Pointer fields are nil when not given.
type Options struct {
	Stdin       bool
	Prefix      *string
	Suffix      *string
	NoPrefix    bool
	NoSuffix    bool
	NoQQ        bool
	NoAltScreen bool
	ConfigPath  string
	LogPath     string

	// Args are the candidates given on the command line
	Args []string
}

// Settings are the effective values handed to the picker
type Settings struct {
	Prefix    string
	Suffix    string
	Prompt    string
	QuitOnQQ  bool
	AltScreen bool
}

var usageLines = []string{
	"tpick [OPTIONS...] [THINGS...]",
	"OPTIONS:",
	"   -i      : read things from standard input, instead of from the command line",
	"   -p TEXT : prepend TEXT to fnmatch pattern (default is \"*\")",
	"   -s TEXT : append TEXT to fnmatch pattern (default is \"*\")",
	"   -P      : equivalent to -p \"\"",
	"   -S      : equivalent to -s \"\"",
	"   -Q      : disable exit (and fail) on two consecutive q characters",
	"   -h      : output this help message",
	"",
	"   --config FILE   : read settings from FILE (default $XDG_CONFIG_HOME/tpick/config.toml)",
	"   --no-alt-screen : draw on the main screen instead of the alternate screen",
	"   --log FILE      : write debug log to FILE",
	"",
	"Default options may be set in " + EnvDefaultOpts + ".",
}

// Usage writes the usage message to w
func Usage(w io.Writer) {
	for _, line := range usageLines {
		fmt.Fprintln(w, line)
	}
}

// Parse parses the environment default options, then args
func Parse(args []string, envOpts string) (Options, error) {
	var opts Options

	if envOpts != "" {
		envArgs, err := shlex.Split(envOpts)
		if err != nil {
			return Options{}, fmt.Errorf("parse %s: %w", EnvDefaultOpts, err)
		}
		if err := parseInto(&opts, envArgs); err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvDefaultOpts, err)
		}
		if len(opts.Args) > 0 {
			return Options{}, fmt.Errorf("%s: unexpected argument %q", EnvDefaultOpts, opts.Args[0])
		}
	}

	if err := parseInto(&opts, args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// parseInto parses args on top of the values already in opts
func parseInto(opts *Options, args []string) error {
	fs := pflag.NewFlagSet("tpick", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var help bool
	prefix, suffix := "", ""
	if opts.Prefix != nil {
		prefix = *opts.Prefix
	}
	if opts.Suffix != nil {
		suffix = *opts.Suffix
	}

	fs.BoolVarP(&opts.Stdin, "stdin", "i", opts.Stdin, "read things from standard input")
	fs.StringVarP(&prefix, "prefix", "p", prefix, "prepend TEXT to the pattern")
	fs.StringVarP(&suffix, "suffix", "s", suffix, "append TEXT to the pattern")
	fs.BoolVarP(&opts.NoPrefix, "no-prefix", "P", opts.NoPrefix, "equivalent to -p \"\"")
	fs.BoolVarP(&opts.NoSuffix, "no-suffix", "S", opts.NoSuffix, "equivalent to -s \"\"")
	fs.BoolVarP(&opts.NoQQ, "no-qq", "Q", opts.NoQQ, "disable exit on two consecutive q characters")
	fs.BoolVar(&opts.NoAltScreen, "no-alt-screen", opts.NoAltScreen, "draw on the main screen")
	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "read settings from FILE")
	fs.StringVar(&opts.LogPath, "log", opts.LogPath, "write debug log to FILE")
	fs.BoolVarP(&help, "help", "h", false, "output this help message")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if help {
		return ErrHelp
	}

	if fs.Changed("prefix") {
		opts.Prefix = &prefix
	}
	if fs.Changed("suffix") {
		opts.Suffix = &suffix
	}
	opts.Args = fs.Args()
	return nil
}

// Apply layers the options over the configuration file values
func (o Options) Apply(cfg *config.Config) Settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := Settings{
		Prefix:    cfg.Prefix,
		Suffix:    cfg.Suffix,
		Prompt:    cfg.Prompt,
		QuitOnQQ:  cfg.DoubleQQuit && !o.NoQQ,
		AltScreen: cfg.AltScreen && !o.NoAltScreen,
	}

	if o.Prefix != nil {
		s.Prefix = *o.Prefix
	}
	if o.NoPrefix {
		s.Prefix = ""
	}
	if o.Suffix != nil {
		s.Suffix = *o.Suffix
	}
	if o.NoSuffix {
		s.Suffix = ""
	}
	return s
}
