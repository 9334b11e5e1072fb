package main

import (
	"context"
	"os"

	"github.com/daystram/chessrules/shell"
)

func runShell() error {
	return shell.NewInterface(
		shell.WithParallelPerft(*parallelPerft),
	).Run(context.Background(), os.Stdin, os.Stdout)
}
