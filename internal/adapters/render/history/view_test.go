package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/portal-credits/internal/application"
	"github.com/bnema/portal-credits/internal/domain"
)

func TestRenderSummaries(t *testing.T) {
	now := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)
	previous := domain.CreditReading{Portal: domain.PortalTeamio, Credits: 1490, Timestamp: now.Add(-48 * time.Hour)}

	output, err := Render([]application.PortalSummary{
		{
			Portal:   domain.PortalTeamio,
			Latest:   domain.CreditReading{Portal: domain.PortalTeamio, Credits: 1486, Timestamp: now.Add(-2 * time.Hour)},
			Previous: &previous,
			Count:    2,
		},
		{
			Portal: domain.PortalInWork,
			Latest: domain.CreditReading{Portal: domain.PortalInWork, Credits: 2, Timestamp: now.Add(-10 * 24 * time.Hour)},
			Count:  1,
		},
	}, RenderOptions{Now: now, StaleAfter: 7 * 24 * time.Hour, LogPath: "/home/op/credits.json"})

	require.NoError(t, err)
	assert.Contains(t, output, "portals: 2")
	assert.Contains(t, output, "log: /home/op/credits.json")
	assert.Contains(t, output, "Teamio")
	assert.Contains(t, output, "credits: 1486")
	assert.Contains(t, output, "(-4 since 2025-11-19 09:00 UTC)")
	assert.Contains(t, output, "(2 hours ago)")
	assert.Contains(t, output, "InWork")
	assert.Contains(t, output, "(10 days ago)")
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "readings: 1")
}

func TestRenderFreshReadingIsNotStale(t *testing.T) {
	now := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)

	output, err := Render([]application.PortalSummary{
		{
			Portal: domain.PortalInWork,
			Latest: domain.CreditReading{Portal: domain.PortalInWork, Credits: 3, Timestamp: now.Add(-30 * time.Second)},
			Count:  1,
		},
	}, RenderOptions{Now: now, StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "credits: 3")
	assert.Contains(t, output, "(just now)")
	assert.NotContains(t, output, "since")
	assert.NotContains(t, output, "stale")
}

func TestRenderEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "portals: 0")
	assert.Contains(t, output, "No readings recorded yet.")
}

func TestFormatAge(t *testing.T) {
	testCases := []struct {
		age  time.Duration
		want string
	}{
		{age: 10 * time.Second, want: "just now"},
		{age: time.Minute, want: "1 minute ago"},
		{age: 90 * time.Minute, want: "1 hour ago"},
		{age: 25 * time.Hour, want: "1 day ago"},
		{age: 72 * time.Hour, want: "3 days ago"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatAge(tc.age))
	}
}

func TestAgeColorFades(t *testing.T) {
	assert.Equal(t, "255", string(ageColor(0, time.Hour)))
	assert.Equal(t, "240", string(ageColor(2*time.Hour, time.Hour)))
	assert.Equal(t, "248", string(ageColor(30*time.Minute, time.Hour)))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+5", formatDelta(5))
	assert.Equal(t, "-4", formatDelta(-4))
	assert.Equal(t, "0", formatDelta(0))
}
