package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
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
			res, err := svc.CompleteTask(ctx, currentUserKey(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Done!"), ui.Title.Render(res.Message))

			earned := fmt.Sprintf("+%d pts", res.PointsEarned)
			if res.StreakBonus {
				earned += fmt.Sprintf(" (%.2fx streak bonus)", res.Multiplier)
			}
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Earned", earned))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Total", res.TotalPoints))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Streak", ui.StreakText(res.Streak)))
			if res.BadgeEarned != nil {
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), res.BadgeEarned.Icon, ui.Gold.Render(res.BadgeEarned.Name), ui.Muted.Render("— "+res.BadgeEarned.Description))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.IconSparkle, ui.BannerLevelUp+fmt.Sprintf(" — level %d → %d", res.LevelBefore, res.LevelAfter))
			}
			return nil
		},
	}

	return cmd
}
