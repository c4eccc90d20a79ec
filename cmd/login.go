package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/portal-credits/internal/domain"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login <teamio|inwork>",
		Short: "Log in once in a visible browser and keep the session for later runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portal, err := domain.ParsePortal(args[0])
			if err != nil {
				return &domain.UsageError{Arg: args[0]}
			}

			app, err := c.load(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opening %s with the profile in %s\n", portal.Label(), app.cfg.ProfileDir(portal))
			profile, err := app.profiles.Bootstrap(cmd.Context(), portal)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Session saved in %s. Collection reuses it until the portal expires it.\n", profile.Dir)
			return err
		},
	}
}
