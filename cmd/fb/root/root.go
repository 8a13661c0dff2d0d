package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

const Version = "0.1.0"

var userFlag string

var rootCmd = &cobra.Command{
	Use:           "fb",
	Short:         "FlexBoard, the gamified task tracker",
	Long:          "FlexBoard is a task tracker that pays you in points, streaks and badges for getting things done.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User key (defaults to FLEXBOARD_USER, then \"main\")")

	rootCmd.AddCommand(
		newProjectCmd(),
		newAddCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newRmCmd(),
		newRestoreCmd(),
		newListCmd(),
		newStatusCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
