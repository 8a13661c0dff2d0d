package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, streaks and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			userKey := currentUserKey()
			st, err := svc.UserStatus(ctx, userKey)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFlex, "FlexBoard — "+userKey))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (next level at %d, %d to go)", st.User.Points, st.NextLevelAt, st.PointsToNext)))
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(st.User.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", fmt.Sprintf("%d days", st.User.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Completed tasks", st.CompletedTasks))
			fmt.Fprintln(out, "")

			earned := map[string]bool{}
			for _, b := range st.Badges {
				earned[b.Slug] = true
			}
			catalog, err := svc.BadgeRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range catalog {
				if earned[b.Slug] {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Gold.Render(b.Name), ui.Muted.Render("— "+b.Description))
				} else {
					fmt.Fprintf(out, "- %s\n", ui.Muted.Render("🔒 "+b.Name+" — "+b.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
