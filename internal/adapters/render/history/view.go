package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/portal-credits/internal/application"
)

const readingLayout = "2006-01-02 15:04 MST"

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
	LogPath    string
}

func renderView(summaries []application.PortalSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Portal Credits"),
		s.header.Render(fmt.Sprintf("portals: %d", len(summaries))),
	}
	if opts.LogPath != "" {
		lines = append(lines, s.header.Render("log: "+opts.LogPath))
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No readings recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderPortal(summary, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPortal(summary application.PortalSummary, opts RenderOptions, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.portal.Render(summary.Portal.Label()),
		creditsLine(summary, s),
		readAtLine(summary.Latest.Timestamp, opts, s),
		s.detail.Render(fmt.Sprintf("readings: %d", summary.Count)),
	)
}

func creditsLine(summary application.PortalSummary, s styles) string {
	line := s.key.Render("credits:") + " " + s.credits.Render(fmt.Sprintf("%d", summary.Latest.Credits))

	delta, ok := summary.Delta()
	if !ok {
		return line
	}

	return line + " " + deltaStyle(delta, s).Render(fmt.Sprintf("(%s since %s)",
		formatDelta(delta), summary.Previous.Timestamp.Format(readingLayout)))
}

func readAtLine(at time.Time, opts RenderOptions, s styles) string {
	line := s.key.Render("read:") + " " + s.detail.Render(at.Format(readingLayout))
	if opts.Now.IsZero() {
		return line
	}

	age := opts.Now.Sub(at)
	ageStyle := lipgloss.NewStyle().Foreground(ageColor(age, opts.StaleAfter))
	line += " " + ageStyle.Render("("+formatAge(age)+")")

	if opts.StaleAfter > 0 && age > opts.StaleAfter {
		line += " " + s.warning.Render("[stale]")
	}

	return line
}

func deltaStyle(delta int, s styles) lipgloss.Style {
	switch {
	case delta > 0:
		return s.gain
	case delta < 0:
		return s.loss
	default:
		return s.unchanged
	}
}

func formatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

func formatAge(age time.Duration) string {
	if age < time.Minute {
		return "just now"
	}

	age = age.Round(time.Minute)
	days := int(age / (24 * time.Hour))
	hours := int((age % (24 * time.Hour)) / time.Hour)
	minutes := int((age % time.Hour) / time.Minute)

	switch {
	case days > 0:
		return pluralize(days, "day") + " ago"
	case hours > 0:
		return pluralize(hours, "hour") + " ago"
	default:
		return pluralize(minutes, "minute") + " ago"
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ageColor is bright for a fresh reading and fades to grey as it nears staleAfter.
func ageColor(age, staleAfter time.Duration) lipgloss.Color {
	if staleAfter <= 0 || age <= 0 {
		return lipgloss.Color("255")
	}

	return interpolateColor(staleAfter.Seconds()-age.Seconds(), 0, staleAfter.Seconds())
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max <= min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, 240 faded to 255 bright
	colorCode := 240 + int(15*normalized+0.5)
	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
