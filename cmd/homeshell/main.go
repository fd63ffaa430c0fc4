package main

import (
	"os"

	"github.com/grovetools/homeshell/cli"
	"github.com/grovetools/homeshell/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"homeshell",
		"A dual-pane settings shell with deep-link routing",
	)

	rootCmd.AddCommand(cmd.NewOpenCmd())
	rootCmd.AddCommand(cmd.NewRouteCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
