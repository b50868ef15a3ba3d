package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/restyle/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve compiled stylesheets, compiling them on request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				ConfigPath: configPath(cmd),
				Addr:       addr,
			})
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: serve.addr from restyle.yaml)")
	return cmd
}
