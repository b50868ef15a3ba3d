package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/restyle/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild stylesheets when sources change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ConfigPath: configPath(cmd),
				Jobs:       jobs,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Maximum parallel compiles (default: number of CPUs)")
	return cmd
}
