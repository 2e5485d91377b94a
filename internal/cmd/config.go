package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the client configuration",
	Long: `Show or change the client configuration stored in the teller
directory.

Examples:
  teller config show
  teller config set api_base_url http://localhost:8080
  teller config set log_level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("File:         %s\n", filepath.Join(e.dir, config.FileName))
		fmt.Printf("api_base_url: %s\n", e.cfg.APIBaseURL)
		fmt.Printf("log_level:    %s\n", e.cfg.LogLevel)
		fmt.Printf("log_format:   %s\n", e.cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = config.DefaultDir()
		}

		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "api_base_url":
			cfg.APIBaseURL = value
		case "log_level":
			cfg.LogLevel = value
		case "log_format":
			cfg.LogFormat = value
		default:
			return fmt.Errorf("unknown config key %q (known: api_base_url, log_level, log_format)", key)
		}

		if err := config.Save(dir, cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
