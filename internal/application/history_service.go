package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/ports"
)

type PortalSummary struct {
	Portal   domain.Portal
	Latest   domain.CreditReading
	Previous *domain.CreditReading
	Count    int
}

// Delta is the change from the previous reading; ok is false for a single reading.
func (s PortalSummary) Delta() (delta int, ok bool) {
	if s.Previous == nil {
		return 0, false
	}
	return s.Latest.Credits - s.Previous.Credits, true
}

type HistoryService struct {
	readings ports.ReadingLog
}

func NewHistoryService(readings ports.ReadingLog) *HistoryService {
	return &HistoryService{readings: readings}
}

// Summaries scans the log in order. Known portals come first, any other
// portal names found in the log follow alphabetically.
func (s *HistoryService) Summaries(ctx context.Context) ([]PortalSummary, error) {
	readings, err := s.readings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}

	byPortal := map[domain.Portal]*PortalSummary{}
	for _, reading := range readings {
		summary, ok := byPortal[reading.Portal]
		if !ok {
			summary = &PortalSummary{Portal: reading.Portal}
			byPortal[reading.Portal] = summary
		}
		if summary.Count > 0 {
			previous := summary.Latest
			summary.Previous = &previous
		}
		summary.Latest = reading
		summary.Count++
	}

	summaries := make([]PortalSummary, 0, len(byPortal))
	for _, portal := range domain.KnownPortals() {
		if summary, ok := byPortal[portal]; ok {
			summaries = append(summaries, *summary)
			delete(byPortal, portal)
		}
	}

	others := make([]PortalSummary, 0, len(byPortal))
	for _, summary := range byPortal {
		others = append(others, *summary)
	}
	sort.Slice(others, func(i, j int) bool {
		return others[i].Portal < others[j].Portal
	})

	return append(summaries, others...), nil
}

// Readings returns the log entries of one portal, or all entries when portal is empty.
func (s *HistoryService) Readings(ctx context.Context, portal domain.Portal) ([]domain.CreditReading, error) {
	readings, err := s.readings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}
	if portal == "" {
		return readings, nil
	}

	filtered := make([]domain.CreditReading, 0, len(readings))
	for _, reading := range readings {
		if reading.Portal == portal {
			filtered = append(filtered, reading)
		}
	}

	return filtered, nil
}
