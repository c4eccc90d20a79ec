package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(wireApp)
}

func newRootCmdWith(wire wireFunc) *cobra.Command {
	c := &cli{wire: wire}

	rootCmd := &cobra.Command{
		Use:   "credits [teamio|inwork]",
		Short: "Record the remaining credits on the Teamio and InWork job portals",
		Long: "credits opens each job portal in a visible browser, waits for you to confirm the credits page is showing,\n" +
			"reads the remaining credits and appends them to a JSON log. Without arguments every portal is read.",
		Args:          validatePortalArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCollect(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.opts.configFile, "config", "", "config file (default <home>/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&c.opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCollectCmd(c),
		newLoginCmd(c),
		newProfilesCmd(c),
		newHistoryCmd(c),
	)

	return rootCmd
}
