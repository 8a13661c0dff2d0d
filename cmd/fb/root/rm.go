package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func parseIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Soft-delete a task",
		Long:  "Hide a task from every listing. The row is kept and can be brought back with `fb restore`.",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := parseIDArg(args)
			if err := svc.DeleteTask(ctx, currentUserKey(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render(ui.IconTrash+" Deleted"), id)
			return nil
		},
	}

	return cmd
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted task",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := parseIDArg(args)
			if err := svc.RestoreTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Good.Render(ui.IconUndo+" Restored"), id)
			return nil
		},
	}

	return cmd
}
