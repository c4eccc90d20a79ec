package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/portal-credits/internal/adapters/repo/jsonlog"
	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/ports"
	"github.com/bnema/portal-credits/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var collectedAt = time.Date(2025, 11, 21, 7, 30, 0, 0, time.UTC)

func testTargets() TargetMap {
	return TargetMap{
		domain.PortalTeamio: {Portal: domain.PortalTeamio, URL: "https://teamio.test/credits"},
		domain.PortalInWork: {Portal: domain.PortalInWork, URL: "https://inwork.test/dashboard"},
	}
}

func pageSource(t *testing.T, text string) *mocks.MockPageTextSource {
	t.Helper()

	src := mocks.NewMockPageTextSource(t)
	src.EXPECT().CurrentPageText(mockAnyContext()).Return(text, nil)
	src.EXPECT().Close().Return(nil)
	return src
}

func fixedClock(t *testing.T) *mocks.MockClock {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(collectedAt).Maybe()
	return clock
}

func newJSONLog(t *testing.T) *jsonlog.Log {
	t.Helper()

	l, err := jsonlog.NewLog(filepath.Join(t.TempDir(), "credits.json"), nil)
	require.NoError(t, err)
	return l
}

func TestCollectAllPortalsSucceeds(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	collector := NewCollector(sessions, readings, nil, testTargets(), fixedClock(t), nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(pageSource(t, "Zbývá 1486  kreditů"), nil)
	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalInWork]).Return(pageSource(t, "Stav kreditů: 2"), nil)

	want := []domain.CreditReading{
		{Portal: domain.PortalTeamio, Credits: 1486, Timestamp: collectedAt},
		{Portal: domain.PortalInWork, Credits: 2, Timestamp: collectedAt},
	}
	readings.EXPECT().Append(mockAnyContext(), want).Return(nil)

	result, err := collector.Collect(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, want, result.Readings)
	assert.Empty(t, result.Failures)
	assert.NotEmpty(t, result.RunID)
}

func TestCollectSinglePortalOnlyTouchesThatPortal(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	collector := NewCollector(sessions, readings, nil, testTargets(), fixedClock(t), nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalInWork]).Return(pageSource(t, "Stav kreditů: 7"), nil)
	readings.EXPECT().Append(mockAnyContext(), []domain.CreditReading{
		{Portal: domain.PortalInWork, Credits: 7, Timestamp: collectedAt},
	}).Return(nil)

	result, err := collector.Collect(context.Background(), []domain.Portal{domain.PortalInWork, domain.PortalInWork})
	require.NoError(t, err)
	assert.Len(t, result.Readings, 1)
}

func TestCollectFailureIsIsolated(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	log := newJSONLog(t)
	collector := NewCollector(sessions, log, nil, testTargets(), fixedClock(t), nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(pageSource(t, "Přihlaste se prosím"), nil)
	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalInWork]).Return(pageSource(t, "5 kreditů"), nil)

	result, err := collector.Collect(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, domain.PortalTeamio, result.Failures[0].Portal)

	var extractionErr *domain.ExtractionError
	assert.ErrorAs(t, result.Failures[0].Err, &extractionErr)

	stored, err := log.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CreditReading{
		{Portal: domain.PortalInWork, Credits: 5, Timestamp: collectedAt},
	}, stored)
}

func TestCollectNothingToSaveLeavesLogUntouched(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	collector := NewCollector(sessions, readings, nil, testTargets(), fixedClock(t), nil)

	sessions.EXPECT().Open(mockAnyContext(), mock.Anything).Return(nil, errors.New("browser failed to start")).Times(2)

	result, err := collector.Collect(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, result.NothingToSave())
	assert.False(t, result.Saved)
	require.Len(t, result.Failures, 2)

	var sessionErr *domain.SessionUnavailableError
	require.ErrorAs(t, result.Failures[0].Err, &sessionErr)
	assert.Equal(t, domain.PortalTeamio, sessionErr.Portal)
	readings.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCollectOperatorDeclinedIsSessionFailure(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	collector := NewCollector(sessions, readings, nil, testTargets(), fixedClock(t), nil)

	declined := &domain.SessionUnavailableError{Portal: domain.PortalTeamio, Err: ports.ErrOperatorDeclined}
	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(nil, declined)

	result, err := collector.Collect(context.Background(), []domain.Portal{domain.PortalTeamio})
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, ports.ErrOperatorDeclined)
}

func TestCollectRecoversFromPanickingSource(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	log := newJSONLog(t)
	collector := NewCollector(sessions, log, nil, testTargets(), fixedClock(t), nil)

	broken := mocks.NewMockPageTextSource(t)
	broken.EXPECT().CurrentPageText(mockAnyContext()).Run(func(context.Context) {
		panic("renderer crashed")
	})
	broken.EXPECT().Close().Return(nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(broken, nil)
	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalInWork]).Return(pageSource(t, "Stav kreditů: 4"), nil)

	result, err := collector.Collect(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Err.Error(), "renderer crashed")
	assert.Len(t, result.Readings, 1)
}

func TestCollectCanceledSkipsRemainingPortalsAndSavesCollected(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	log := newJSONLog(t)
	collector := NewCollector(sessions, log, nil, testTargets(), fixedClock(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := mocks.NewMockPageTextSource(t)
	src.EXPECT().CurrentPageText(mockAnyContext()).RunAndReturn(func(context.Context) (string, error) {
		cancel()
		return "1200 kreditů", nil
	})
	src.EXPECT().Close().Return(nil)
	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(src, nil)

	result, err := collector.Collect(ctx, nil)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, domain.PortalInWork, result.Failures[0].Portal)
	assert.ErrorIs(t, result.Failures[0].Err, context.Canceled)

	stored, err := log.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1200, stored[0].Credits)
}

func TestCollectAppendFailureIsReturned(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	collector := NewCollector(sessions, readings, nil, testTargets(), fixedClock(t), nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(pageSource(t, "credits 9"), nil)
	readings.EXPECT().Append(mockAnyContext(), mock.Anything).Return(errors.New("disk full"))

	result, err := collector.Collect(context.Background(), []domain.Portal{domain.PortalTeamio})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append readings")
	assert.False(t, result.Saved)
	assert.Len(t, result.Readings, 1)
}

func TestCollectRejectsUnknownPortal(t *testing.T) {
	collector := NewCollector(mocks.NewMockSessionProvider(t), mocks.NewMockReadingLog(t), nil, testTargets(), nil, nil)

	_, err := collector.Collect(context.Background(), []domain.Portal{"jobs"})
	require.ErrorIs(t, err, domain.ErrUnknownPortal)
}

func TestCollectTouchesBootstrappedProfiles(t *testing.T) {
	sessions := mocks.NewMockSessionProvider(t)
	readings := mocks.NewMockReadingLog(t)
	profiles := mocks.NewMockProfileRepository(t)
	clock := fixedClock(t)
	collector := NewCollector(sessions, readings, NewProfileService(sessions, profiles, testTargets(), clock), testTargets(), clock, nil)

	sessions.EXPECT().Open(mockAnyContext(), testTargets()[domain.PortalTeamio]).Return(pageSource(t, "88 credits"), nil)
	readings.EXPECT().Append(mockAnyContext(), mock.Anything).Return(nil)

	profile := domain.Profile{Portal: domain.PortalTeamio, Dir: "/profiles/teamio"}
	profiles.EXPECT().GetByPortal(mockAnyContext(), domain.PortalTeamio).Return(profile, nil)
	profiles.EXPECT().Save(mockAnyContext(), domain.Profile{
		Portal:     domain.PortalTeamio,
		Dir:        "/profiles/teamio",
		LastUsedAt: collectedAt,
	}).Return(nil)

	_, err := collector.Collect(context.Background(), []domain.Portal{domain.PortalTeamio})
	require.NoError(t, err)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
