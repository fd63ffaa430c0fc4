package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/homeshell/cli"
	"github.com/grovetools/homeshell/config"
)

// NewConfigCmd creates the `config` command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Shows the configuration the shell would run with: the --config
flag when given, otherwise the nearest homeshell.yml found by walking
up from the working directory, otherwise the global config, otherwise
built-in defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			if cwd, err := os.Getwd(); err == nil {
				if path, err := config.FindConfigFile(cwd); err == nil {
					fmt.Printf("# Source: %s\n", path)
				} else {
					fmt.Println("# Source: built-in defaults")
				}
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
	return cmd
}
