package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/portal-credits/internal/application"
	"github.com/bnema/portal-credits/internal/domain"
)

func newCollectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "collect [teamio|inwork]",
		Short: "Read credits from one portal or all of them and append them to the log",
		Args:  validatePortalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCollect(cmd, args)
		},
	}
}

// validatePortalArgs accepts no argument or exactly one known portal.
func validatePortalArgs(_ *cobra.Command, args []string) error {
	_, err := parsePortalArgs(args)
	return err
}

func parsePortalArgs(args []string) ([]domain.Portal, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 1:
		portal, err := domain.ParsePortal(args[0])
		if err != nil {
			return nil, &domain.UsageError{Arg: args[0]}
		}
		return []domain.Portal{portal}, nil
	default:
		return nil, &domain.UsageError{Arg: args[1]}
	}
}

func (c *cli) runCollect(cmd *cobra.Command, args []string) error {
	portals, err := parsePortalArgs(args)
	if err != nil {
		return err
	}

	app, err := c.load(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := app.collector.Collect(cmd.Context(), portals)
	writeCollectResult(out, result)

	if err != nil {
		return fmt.Errorf("save readings to %s: %w", app.cfg.LogPath, err)
	}
	if ctxErr := cmd.Context().Err(); ctxErr != nil {
		fmt.Fprintln(out, "Interrupted.")
	}

	switch {
	case result.NothingToSave():
		_, err = fmt.Fprintln(out, "Nothing new to save.")
	case result.Saved:
		_, err = fmt.Fprintf(out, "Saved %s to %s.\n", plural(len(result.Readings), "reading"), app.cfg.LogPath)
	}
	return err
}

func writeCollectResult(out io.Writer, result application.CollectResult) {
	for _, reading := range result.Readings {
		fmt.Fprintf(out, "[%s] %s: %d credits\n",
			reading.Portal.Label(), reading.Timestamp.Format(time.RFC3339), reading.Credits)
	}
	for _, failure := range result.Failures {
		fmt.Fprintf(out, "[%s] error: %s\n", failure.Portal.Label(), failureMessage(failure))
	}
}

func failureMessage(failure application.PortalFailure) string {
	var sessionErr *domain.SessionUnavailableError
	var extractionErr *domain.ExtractionError
	switch {
	case errors.As(failure.Err, &extractionErr):
		return "credits not found on page; " + extractionErr.Hint
	case errors.As(failure.Err, &sessionErr):
		return "session unavailable: " + sessionErr.Err.Error()
	default:
		return strings.TrimPrefix(failure.Err.Error(), failure.Portal.Label()+": ")
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
