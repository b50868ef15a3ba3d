package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/restyle/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [files...]",
		Short: "Compile stale stylesheets",
		Long: "Compile the named stylesheets, relative to the configured src directory,\n" +
			"or every discovered stylesheet when none are named. Up to date outputs are skipped.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				ConfigPath: configPath(cmd),
				Force:      force,
				Jobs:       jobs,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Recompile every stylesheet, skipping staleness checks")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum parallel compiles (default: number of CPUs)")
	return cmd
}
