package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func newListCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			userKey := currentUserKey()
			tasks, err := svc.TaskRepo().ListByUser(ctx, userKey)
			if err != nil {
				return err
			}
			projects, err := svc.ProjectRepo().ListByUser(ctx, userKey)
			if err != nil {
				return err
			}
			names := map[int64]string{}
			for _, p := range projects {
				names[p.ID] = p.Name
			}

			out := cmd.OutOrStdout()
			var lastProject int64 = -1
			shown := 0
			for _, t := range tasks {
				if t.Completed && !showAll {
					continue
				}
				if t.ProjectID != lastProject {
					fmt.Fprintln(out, ui.H2.Render(ui.IconBox+" "+names[t.ProjectID]))
					lastProject = t.ProjectID
				}
				fmt.Fprintf(out, "  %s #%d %s %s\n", ui.TaskState(t.Completed), t.ID, t.Title, ui.Muted.Render(fmt.Sprintf("(%d pts)", t.Points)))
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks. Add one with `fb add <title> --project <id>`."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include completed tasks")

	return cmd
}
