package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewIndexesCommand creates the collection indexes and exits.
func NewIndexesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			_, logger, st, err := bootstrap(ctx, opts)
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer st.Close(context.Background())

			return st.EnsureIndexes(ctx)
		},
	}
}
