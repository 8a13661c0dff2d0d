package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo a completion",
		Long: `Return a completed task to pending.

The points awarded for the completion are deducted (never below zero) and its
Flex record is removed. Streaks and badges are not reverted: the day you were
active still happened, and badges are permanent.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.UncompleteTask(ctx, currentUserKey(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Warn.Render(ui.IconUndo+" Undone"), res.TaskID, ui.Muted.Render(fmt.Sprintf("(-%d pts)", res.PointsDeducted)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Total", res.TotalPoints))
			return nil
		},
	}

	return cmd
}
