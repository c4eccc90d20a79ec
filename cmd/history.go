package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	historyrender "github.com/bnema/portal-credits/internal/adapters/render/history"
	"github.com/bnema/portal-credits/internal/application"
	"github.com/bnema/portal-credits/internal/domain"
)

const defaultStaleAfter = 7 * 24 * time.Hour

type summaryJSON struct {
	Portal   string     `json:"portal"`
	Credits  int        `json:"credits"`
	ReadAt   time.Time  `json:"read_at"`
	Delta    *int       `json:"delta,omitempty"`
	Previous *time.Time `json:"previous_read_at,omitempty"`
	Readings int        `json:"readings"`
}

type readingJSON struct {
	Timestamp time.Time `json:"timestamp"`
	Portal    string    `json:"portal"`
	Credits   int       `json:"credits"`
}

func newHistoryCmd(c *cli) *cobra.Command {
	var (
		asJSON     bool
		all        bool
		portalName string
		staleAfter time.Duration
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the latest credits per portal from the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var portal domain.Portal
			if portalName != "" {
				parsed, err := domain.ParsePortal(portalName)
				if err != nil {
					return &domain.UsageError{Arg: portalName}
				}
				portal = parsed
			}

			app, err := c.load(cmd)
			if err != nil {
				return err
			}

			if all {
				readings, err := app.history.Readings(cmd.Context(), portal)
				if err != nil {
					return err
				}
				return writeReadings(cmd, readings, asJSON)
			}

			summaries, err := app.history.Summaries(cmd.Context())
			if err != nil {
				return err
			}
			if portal != "" {
				summaries = filterSummaries(summaries, portal)
			}
			if asJSON {
				return writeSummariesJSON(cmd, summaries)
			}

			rendered, err := app.historyRenderer(summaries, historyrender.RenderOptions{
				Now:        app.now(),
				StaleAfter: staleAfter,
				LogPath:    app.cfg.LogPath,
			})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the rendered view")
	cmd.Flags().BoolVar(&all, "all", false, "list every reading instead of per-portal summaries")
	cmd.Flags().StringVar(&portalName, "portal", "", "only show one portal (teamio or inwork)")
	cmd.Flags().DurationVar(&staleAfter, "stale-after", defaultStaleAfter, "flag readings older than this as stale")
	return cmd
}

func filterSummaries(summaries []application.PortalSummary, portal domain.Portal) []application.PortalSummary {
	filtered := make([]application.PortalSummary, 0, 1)
	for _, summary := range summaries {
		if summary.Portal == portal {
			filtered = append(filtered, summary)
		}
	}
	return filtered
}

func writeSummariesJSON(cmd *cobra.Command, summaries []application.PortalSummary) error {
	out := make([]summaryJSON, 0, len(summaries))
	for _, summary := range summaries {
		entry := summaryJSON{
			Portal:   summary.Portal.Label(),
			Credits:  summary.Latest.Credits,
			ReadAt:   summary.Latest.Timestamp,
			Readings: summary.Count,
		}
		if delta, ok := summary.Delta(); ok {
			previous := summary.Previous.Timestamp
			entry.Delta = &delta
			entry.Previous = &previous
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeReadings(cmd *cobra.Command, readings []domain.CreditReading, asJSON bool) error {
	if asJSON {
		out := make([]readingJSON, 0, len(readings))
		for _, reading := range readings {
			out = append(out, readingJSON{Timestamp: reading.Timestamp, Portal: reading.Portal.Label(), Credits: reading.Credits})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(readings) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No readings recorded yet.")
		return err
	}
	for _, reading := range readings {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %d\n",
			reading.Timestamp.Format(time.RFC3339), reading.Portal.Label(), reading.Credits); err != nil {
			return err
		}
	}

	return nil
}
