// Package cmd holds the homeshell subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/homeshell/cli"
	"github.com/grovetools/homeshell/config"
	"github.com/grovetools/homeshell/intent"
	"github.com/grovetools/homeshell/logging"
	"github.com/grovetools/homeshell/tui/shell"
)

// NewOpenCmd creates the `open` command, the interactive settings shell.
func NewOpenCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"open",
		"Open the interactive settings shell",
	)
	cmd.Long = `Launches the settings homepage TUI. A deep link passed with
--deep-link opens its destination in the secondary pane, the same way
an external caller would address the shell.

Examples:
  # Plain homepage
  homeshell open

  # Deep link straight into network settings
  homeshell open --deep-link 'intent:#Intent;action=homeshell.action.NETWORK;end' --highlight network`

	cmd.Flags().String("deep-link", "", "Encoded intent URI to open in the secondary pane")
	cmd.Flags().String("highlight", "", "Menu key to highlight in the top-level list")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return handler.Handle(err)
		}

		var shellOpts []shell.Option
		if uri, _ := cmd.Flags().GetString("deep-link"); uri != "" {
			req := intent.NewRequest(intent.ActionDeepLink)
			req.PutExtra(intent.ExtraDeepLinkURI, uri)
			if highlight, _ := cmd.Flags().GetString("highlight"); highlight != "" {
				req.PutExtra(intent.ExtraHighlightMenuKey, highlight)
			}
			shellOpts = append(shellOpts, shell.WithInitialRequest(req))
		}

		p := tea.NewProgram(shell.New(cfg, shellOpts...), tea.WithAltScreen())

		// A config file on disk gets a watcher so edits re-enter the
		// host while the shell runs.
		if cwd, err := os.Getwd(); err == nil {
			if path, err := config.FindConfigFile(cwd); err == nil {
				watcher, err := config.NewWatcher(path, 0, logging.NewLogger("config-watcher"), func(file string) {
					if next, err := config.Load(file); err == nil {
						p.Send(shell.ConfigReloaded(next))
					}
				})
				if err == nil {
					ctx, cancel := context.WithCancel(context.Background())
					defer cancel()
					defer watcher.Close()
					go watcher.Start(ctx)
				}
			}
		}

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running shell: %v\n", err)
			return err
		}
		return nil
	}

	return cmd
}
