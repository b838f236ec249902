package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/dacite/cmd"
	"github.com/thenoetrevino/dacite/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "dacite: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
