// Command fspath inspects and manipulates validated filesystem paths.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmgilman/go/fspath/fsys/billy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	env := &environment{
		fs:     billy.NewLocal(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	code := run(ctx, os.Args, env)
	stop()
	os.Exit(code)
}
