package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func newAddCmd() *cobra.Command {
	var projectID int64
	var points int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			if projectID == 0 {
				return errors.New("a project is required (--project)")
			}

			task, err := svc.CreateTask(ctx, currentUserKey(), engine.CreateTaskInput{
				ProjectID: projectID,
				Title:     args[0],
				Points:    points,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), task.ID, task.Title, ui.Muted.Render(fmt.Sprintf("(%d pts)", task.Points)))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "Project ID the task belongs to")
	cmd.Flags().IntVar(&points, "points", 0, "Point value (default 10)")

	return cmd
}
