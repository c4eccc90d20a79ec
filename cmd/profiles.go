package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bnema/portal-credits/internal/domain"
)

type profileJSON struct {
	Portal         string     `json:"portal"`
	Dir            string     `json:"dir"`
	BootstrappedAt time.Time  `json:"bootstrapped_at"`
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
}

func newProfilesCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the browser profiles created with login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.load(cmd)
			if err != nil {
				return err
			}

			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeProfilesJSON(cmd, profiles)
			}
			if len(profiles) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet. Run `credits login teamio` to create one.")
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), profilesTable(profiles))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print profiles as JSON")
	return cmd
}

func profilesTable(profiles []domain.Profile) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PORTAL", "PROFILE", "LOGGED IN", "LAST USED")

	for _, profile := range profiles {
		t.Row(profile.Portal.Label(), profile.Dir, formatOptionalTime(profile.BootstrappedAt), formatOptionalTime(profile.LastUsedAt))
	}

	return t.String()
}

func writeProfilesJSON(cmd *cobra.Command, profiles []domain.Profile) error {
	out := make([]profileJSON, 0, len(profiles))
	for _, profile := range profiles {
		entry := profileJSON{Portal: string(profile.Portal), Dir: profile.Dir, BootstrappedAt: profile.BootstrappedAt}
		if !profile.LastUsedAt.IsZero() {
			lastUsed := profile.LastUsedAt
			entry.LastUsedAt = &lastUsed
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatOptionalTime(at time.Time) string {
	if at.IsZero() {
		return "never"
	}
	return at.Format("2006-01-02 15:04 MST")
}
