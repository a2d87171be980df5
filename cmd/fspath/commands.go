package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

func commands(env *environment) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "resolve",
			Usage:     "Prints the canonical form of each path",
			ArgsUsage: "PATH...",
			Action:    env.resolveAction,
		},
		{
			Name:      "type",
			Usage:     "Prints whether a path is a file or a directory",
			ArgsUsage: "PATH",
			Action:    env.typeAction,
		},
		{
			Name:      "ls",
			Usage:     "Lists the entries of a directory",
			ArgsUsage: "DIR",
			Action:    env.lsAction,
		},
		{
			Name:      "glob",
			Usage:     "Lists the entries below a directory matching a doublestar pattern",
			ArgsUsage: "DIR PATTERN",
			Action:    env.globAction,
		},
		{
			Name:      "cat",
			Usage:     "Prints the content of a file",
			ArgsUsage: "FILE",
			Action:    env.catAction,
		},
		{
			Name:      "write",
			Usage:     "Atomically replaces the content of a file with stdin",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "create",
					Usage: "Create the file if it does not exist",
				},
			},
			Action: env.writeAction,
		},
		{
			Name:      "append",
			Usage:     "Appends stdin to a file",
			ArgsUsage: "FILE",
			Action:    env.appendAction,
		},
		{
			Name:      "cp",
			Usage:     "Copies a file",
			ArgsUsage: "SRC DST",
			Action:    env.cpAction,
		},
		{
			Name:      "mkdir",
			Usage:     "Creates a directory",
			ArgsUsage: "DIR",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "parents",
					Aliases: []string{"p"},
					Usage:   "Create missing parent directories",
				},
			},
			Action: env.mkdirAction,
		},
		{
			Name:      "rm",
			Usage:     "Removes a file or an empty directory",
			ArgsUsage: "PATH",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "recursive",
					Aliases: []string{"r"},
					Usage:   "Remove directories and their contents",
				},
			},
			Action: env.rmAction,
		},
		{
			Name:      "mv",
			Usage:     "Moves a file or directory",
			ArgsUsage: "SRC DST",
			Action:    env.mvAction,
		},
	}
}

// args returns exactly n positional arguments or fails with CodeInvalidInput.
func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"%s expects %d argument(s) (%s), got %d", c.Command.Name, n, c.Command.ArgsUsage, c.NArg())
	}
	return c.Args().Slice(), nil
}

func (env *environment) resolveAction(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New(errors.CodeInvalidInput, "resolve expects at least one PATH")
	}

	results := make([]resolved, len(paths))
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(env.cfg.Workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			abs, err := env.r.Abs(p)
			if err != nil {
				return err
			}
			results[i] = resolved{Input: p, Path: abs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return env.emit(results, func(w io.Writer) error {
		for _, res := range results {
			if _, err := fmt.Fprintln(w, res.Path); err != nil {
				return err
			}
		}
		return nil
	})
}

func (env *environment) typeAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	abs, err := env.r.Abs(a[0])
	if err != nil {
		return err
	}
	kind, err := abs.Type()
	if err != nil {
		return err
	}
	return env.emit(typed{Path: abs, Type: kind.String()}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, kind)
		return err
	})
}

func (env *environment) lsAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	dir, err := env.r.Dir(a[0])
	if err != nil {
		return err
	}

	var entries []fspath.Entry
	for entry, err := range dir.List() {
		if err != nil {
			env.log.Warn().Err(err).Msg("skipping entry")
			continue
		}
		entries = append(entries, entry)
	}
	return env.emitEntries(entries)
}

func (env *environment) globAction(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	dir, err := env.r.Dir(a[0])
	if err != nil {
		return err
	}
	entries, err := dir.Glob(a[1])
	if err != nil {
		return err
	}
	return env.emitEntries(entries)
}

func (env *environment) catAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	f, err := env.r.File(a[0])
	if err != nil {
		return err
	}
	return f.WithRead(func(h *fspath.ReadHandle) error {
		_, err := io.Copy(env.stdout, h)
		return err
	})
}

func (env *environment) writeAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(env.stdin)
	if err != nil {
		return errors.Wrap(err, errors.CodeIOFailure, "failed to read stdin")
	}

	var f fspath.File
	if c.Bool("create") {
		f, err = env.r.CreateFile(a[0])
	} else {
		f, err = env.r.File(a[0])
	}
	if err != nil {
		return err
	}
	if err := f.WriteBytes(data); err != nil {
		return err
	}
	env.log.Info().Str("path", f.Path()).Int("bytes", len(data)).Msg("wrote file")
	return nil
}

func (env *environment) appendAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	f, err := env.r.File(a[0])
	if err != nil {
		return err
	}
	data, err := io.ReadAll(env.stdin)
	if err != nil {
		return errors.Wrap(err, errors.CodeIOFailure, "failed to read stdin")
	}
	return f.Append(data)
}

func (env *environment) cpAction(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	src, err := env.r.File(a[0])
	if err != nil {
		return err
	}
	dst, err := src.CopyTo(a[1])
	if err != nil {
		return err
	}
	return env.emitPath(dst.Path())
}

func (env *environment) mkdirAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	var dir fspath.Dir
	if c.Bool("parents") {
		dir, err = env.r.CreateDirAll(a[0])
	} else {
		dir, err = env.r.CreateDir(a[0])
	}
	if err != nil {
		return err
	}
	return env.emitPath(dir.Path())
}

func (env *environment) rmAction(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	abs, err := env.r.Abs(a[0])
	if err != nil {
		return err
	}
	if !c.Bool("recursive") {
		return abs.Remove()
	}
	kind, err := abs.Type()
	if err != nil {
		return err
	}
	if kind != fspath.KindDir {
		return abs.Remove()
	}
	dir, err := abs.Dir()
	if err != nil {
		return err
	}
	return dir.RemoveAll()
}

func (env *environment) mvAction(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	abs, err := env.r.Abs(a[0])
	if err != nil {
		return err
	}
	return abs.Rename(a[1])
}
