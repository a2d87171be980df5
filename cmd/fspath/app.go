package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/carlmjohnson/versioninfo"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fsys"
)

// environment is the process state commands run against.
type environment struct {
	fs     fsys.FS
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *Config
	r   *fspath.Resolver
	log zerolog.Logger
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, env *environment) int {
	def := defaultConfig()
	env.cfg = &def
	env.log = zerolog.Nop()

	if err := newApp(env).RunContext(ctx, args); err != nil {
		env.report(err)
		return 1
	}
	return 0
}

// report prints a failure in the configured output format.
func (env *environment) report(err error) {
	if env.cfg.Output == outputJSON {
		enc := json.NewEncoder(env.stderr)
		if encErr := enc.Encode(errors.ToJSON(err)); encErr == nil {
			return
		}
	}
	fmt.Fprintln(env.stderr, "fspath:", err)
}

func newApp(env *environment) *cli.App {
	return &cli.App{
		Name:      "fspath",
		Version:   toolVersion(),
		Usage:     "Inspects and manipulates validated filesystem paths",
		Reader:    env.stdin,
		Writer:    env.stdout,
		ErrWriter: env.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path of the config file (default: fspath.yaml in the working or user config directory)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Minimum level of log messages written to stderr",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json or yaml",
			},
		},
		Before: func(c *cli.Context) error {
			return env.setup(c)
		},
		Commands: commands(env),
		Suggest:  true,
	}
}

// setup loads the configuration and builds the logger and resolver.
func (env *environment) setup(c *cli.Context) error {
	overrides := map[string]any{}
	if c.IsSet("log-level") {
		overrides["log_level"] = c.String("log-level")
	}
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}

	cfg, err := LoadConfig(c.String("config"), overrides)
	if err != nil {
		return err
	}
	env.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidInput, "invalid log level %q", cfg.LogLevel)
	}
	env.log = zerolog.New(zerolog.ConsoleWriter{Out: env.stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	env.r = fspath.New(env.fs, fspath.WithLogger(env.log))

	env.log.Debug().
		Str("output", cfg.Output).
		Int("workers", cfg.Workers).
		Str("fs", env.fs.Type().String()).
		Msg("configuration loaded")
	return nil
}

// toolVersion reports the module version, or the VCS revision for
// development builds.
func toolVersion() string {
	v := versioninfo.Version
	if v == "unknown" || v == "(devel)" {
		v = versioninfo.Revision
	}
	if versioninfo.DirtyBuild {
		v += "-dirty"
	}
	return v
}
