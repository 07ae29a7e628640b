package cmd

import (
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand builds the CLI. Running it without a subcommand serves the API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "student-api",
		Short:        "Student management API",
		Long:         "HTTP API for students, courses, tasks and users backed by MongoDB.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a config file (default ./config.yaml)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewIndexesCommand(opts))

	return cmd
}
