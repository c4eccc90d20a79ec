package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/extract"
	"github.com/bnema/portal-credits/internal/logging"
	"github.com/bnema/portal-credits/internal/ports"
)

type PortalFailure struct {
	Portal domain.Portal
	Err    error
}

type CollectResult struct {
	RunID    string
	Readings []domain.CreditReading
	Failures []PortalFailure
	// Saved reports whether Readings were appended to the log.
	Saved bool
}

func (r CollectResult) NothingToSave() bool {
	return len(r.Readings) == 0
}

// ProfileToucher records that a portal's browser profile was used.
type ProfileToucher interface {
	Touch(ctx context.Context, portal domain.Portal, at time.Time) error
}

// Collector reads the credits of the requested portals one at a time and
// appends every successful reading to the log in a single batch.
type Collector struct {
	sessions ports.SessionProvider
	readings ports.ReadingLog
	profiles ProfileToucher
	targets  Targets
	clock    ports.Clock
	logger   *slog.Logger
}

// NewCollector wires a collector; profiles may be nil.
func NewCollector(sessions ports.SessionProvider, readings ports.ReadingLog, profiles ProfileToucher, targets Targets, clock ports.Clock, logger *slog.Logger) *Collector {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Collector{
		sessions: sessions,
		readings: readings,
		profiles: profiles,
		targets:  targets,
		clock:    clock,
		logger:   logger,
	}
}

// Collect never aborts on a single portal's failure. The returned error is
// reserved for invalid input and for failing to persist the batch.
func (c *Collector) Collect(ctx context.Context, portals []domain.Portal) (CollectResult, error) {
	requested, err := normalizePortals(portals)
	if err != nil {
		return CollectResult{}, err
	}

	logger, runID := logging.WithRun(c.logger)
	result := CollectResult{RunID: runID}
	logger.Debug("collection started", "portals", len(requested))

	for i, portal := range requested {
		if err := ctx.Err(); err != nil {
			for _, skipped := range requested[i:] {
				result.Failures = append(result.Failures, PortalFailure{Portal: skipped, Err: err})
			}
			logger.Warn("collection interrupted", "skipped", len(requested)-i, "error", err)
			break
		}

		reading, err := c.collectOne(ctx, logger, portal)
		if err != nil {
			logger.Warn("portal collection failed", "portal", portal.Label(), "error", err)
			result.Failures = append(result.Failures, PortalFailure{Portal: portal, Err: err})
			continue
		}

		logger.Info("credits collected", "portal", portal.Label(), "credits", reading.Credits)
		result.Readings = append(result.Readings, reading)
	}

	if result.NothingToSave() {
		logger.Info("nothing to save")
		return result, nil
	}

	// Readings already collected are persisted even when the run was interrupted.
	persistCtx := context.WithoutCancel(ctx)
	if err := c.readings.Append(persistCtx, result.Readings); err != nil {
		return result, fmt.Errorf("append readings: %w", err)
	}
	result.Saved = true
	logger.Info("readings saved", "count", len(result.Readings))

	if c.profiles != nil {
		for _, reading := range result.Readings {
			if err := c.profiles.Touch(persistCtx, reading.Portal, reading.Timestamp); err != nil {
				logger.Debug("profile last-used update failed", "portal", reading.Portal.Label(), "error", err)
			}
		}
	}

	return result, nil
}

func (c *Collector) collectOne(ctx context.Context, logger *slog.Logger, portal domain.Portal) (reading domain.CreditReading, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: unexpected failure: %v", portal.Label(), r)
		}
	}()

	target := c.targets.Target(portal)
	src, err := c.sessions.Open(ctx, target)
	if err != nil {
		var sessionErr *domain.SessionUnavailableError
		if errors.As(err, &sessionErr) {
			return domain.CreditReading{}, err
		}
		return domain.CreditReading{}, &domain.SessionUnavailableError{Portal: portal, Err: err}
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Debug("close session failed", "portal", portal.Label(), "error", closeErr)
		}
	}()

	credits, err := extract.FromSource(ctx, src, target)
	if err != nil {
		return domain.CreditReading{}, err
	}

	return domain.NewCreditReading(portal, credits, c.clock.Now()), nil
}

func normalizePortals(portals []domain.Portal) ([]domain.Portal, error) {
	if len(portals) == 0 {
		return domain.KnownPortals(), nil
	}

	out := make([]domain.Portal, 0, len(portals))
	seen := make(map[domain.Portal]struct{}, len(portals))
	for _, portal := range portals {
		if !portal.Known() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPortal, portal)
		}
		if _, ok := seen[portal]; ok {
			continue
		}
		seen[portal] = struct{}{}
		out = append(out, portal)
	}

	return out, nil
}
