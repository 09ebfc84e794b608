package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/verance/rtac/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own errors; flag and usage errors from
		// cobra still need a line here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
