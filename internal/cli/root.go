// Package cli wires configuration, storage and the HTTP server into the
// todolist command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hajnalm/ClearPoint/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Store      string
}

// NewRootCommand creates the root command for the todolist binary.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "To-do list backend",
		Long:          "Serves the to-do list HTTP API over an in-memory, SQLite or Postgres store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "store driver (memory|sqlite|postgres)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// loadConfig reads the config file and environment, then applies flag
// overrides. Flags win over everything else.
func loadConfig(opts *RootOptions, override func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Store != "" {
		cfg.Store.Driver = opts.Store
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
