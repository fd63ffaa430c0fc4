package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/homeshell/cli"
	"github.com/grovetools/homeshell/embedding"
	"github.com/grovetools/homeshell/homepage"
	"github.com/grovetools/homeshell/intent"
	"github.com/grovetools/homeshell/tui/shell"
)

// routeResult is the JSON shape of a headless route.
type routeResult struct {
	Outcome   string              `json:"outcome"`
	Component string              `json:"component,omitempty"`
	Action    string              `json:"action,omitempty"`
	Data      string              `json:"data,omitempty"`
	Rules     []embedding.PaneRule `json:"rules,omitempty"`
}

// printDispatcher records the dispatched target instead of opening a pane.
type printDispatcher struct {
	target *intent.NavigationRequest
}

func (d *printDispatcher) Start(req *intent.NavigationRequest) error {
	d.target = req
	return nil
}

// NewRouteCmd creates the `route` command: resolve a deep link without
// opening the TUI, for scripting and debugging.
func NewRouteCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"route",
		"Resolve a deep link without opening the shell",
	)
	cmd.Long = `Runs a deep link through the router and prints the resolved
destination, the registered pane rules, and the outcome. Useful for
checking what an external caller's intent URI would open.

Examples:
  # Resolve an encoded intent URI
  homeshell route 'intent:#Intent;action=homeshell.action.DISPLAY;end'

  # Machine-readable output
  homeshell route --json 'intent:#Intent;action=homeshell.action.DISPLAY;end'`

	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return handler.Handle(err)
		}

		registry := intent.NewRegistry()
		shell.RegisterMenu(registry, shell.DefaultMenu)

		rules := embedding.NewRulesController()
		dispatcher := &printDispatcher{}
		router := homepage.NewDeepLinkRouter(registry, rules, dispatcher)

		req := intent.NewRequest(intent.ActionDeepLink)
		req.PutExtra(intent.ExtraDeepLinkURI, args[0])

		outcome, err := router.Route(req, cfg.Embedding.Enabled)
		if err != nil {
			return handler.Handle(err)
		}

		result := routeResult{Outcome: outcome.String()}
		if dispatcher.target != nil {
			result.Component = dispatcher.target.Component.String()
			result.Action = dispatcher.target.Action
			result.Data = dispatcher.target.Data
			result.Rules = rules.Rules()
		}

		if opts.JSONOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("outcome:   %s\n", result.Outcome)
		if result.Component != "" {
			fmt.Printf("component: %s\n", result.Component)
			fmt.Printf("action:    %s\n", result.Action)
			if result.Data != "" {
				fmt.Printf("data:      %s\n", result.Data)
			}
			fmt.Printf("rules:     %d\n", len(result.Rules))
		}
		return nil
	}

	return cmd
}
