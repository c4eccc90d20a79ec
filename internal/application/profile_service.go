package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/ports"
)

type ProfileService struct {
	sessions ports.SessionProvider
	profiles ports.ProfileRepository
	targets  Targets
	clock    ports.Clock
}

func NewProfileService(sessions ports.SessionProvider, profiles ports.ProfileRepository, targets Targets, clock ports.Clock) *ProfileService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ProfileService{sessions: sessions, profiles: profiles, targets: targets, clock: clock}
}

// Bootstrap runs the interactive login for a portal and records its profile.
func (s *ProfileService) Bootstrap(ctx context.Context, portal domain.Portal) (domain.Profile, error) {
	if !portal.Known() {
		return domain.Profile{}, fmt.Errorf("%w: %q", domain.ErrUnknownPortal, portal)
	}

	profile, err := s.sessions.Bootstrap(ctx, s.targets.Target(portal))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("bootstrap %s profile: %w", portal.Label(), err)
	}

	existing, err := s.profiles.GetByPortal(ctx, portal)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{}, fmt.Errorf("load %s profile: %w", portal.Label(), err)
	}

	profile.Portal = portal
	profile.BootstrappedAt = s.clock.Now().UTC()
	profile.LastUsedAt = existing.LastUsedAt

	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("save %s profile: %w", portal.Label(), err)
	}

	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, nil
}

// Touch records that a portal's profile was just used. Portals without a
// bootstrapped profile are left alone.
func (s *ProfileService) Touch(ctx context.Context, portal domain.Portal, at time.Time) error {
	return touchProfile(ctx, s.profiles, portal, at)
}

func touchProfile(ctx context.Context, profiles ports.ProfileRepository, portal domain.Portal, at time.Time) error {
	profile, err := profiles.GetByPortal(ctx, portal)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		return fmt.Errorf("load profile: %w", err)
	}

	profile.LastUsedAt = at.UTC()
	if err := profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}
