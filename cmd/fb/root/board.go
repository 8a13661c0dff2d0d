package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, currentUserKey(), cmd.OutOrStdout())
		},
	}

	return cmd
}
