package jsonlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamps written without an offset are read as UTC.
var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type entrySchema struct {
	Timestamp string `json:"timestamp"`
	Portal    string `json:"portal"`
	Credits   *int64 `json:"credits"`
}

func toSchema(reading domain.CreditReading) entrySchema {
	credits := int64(reading.Credits)
	return entrySchema{
		Timestamp: reading.Timestamp.UTC().Format(timestampLayout),
		Portal:    reading.Portal.Label(),
		Credits:   &credits,
	}
}

func fromSchema(entry entrySchema) (domain.CreditReading, error) {
	if strings.TrimSpace(entry.Portal) == "" {
		return domain.CreditReading{}, errors.New("portal is empty")
	}
	if entry.Credits == nil {
		return domain.CreditReading{}, errors.New("credits missing")
	}
	if *entry.Credits < 0 {
		return domain.CreditReading{}, fmt.Errorf("credits %d is negative", *entry.Credits)
	}

	at, err := parseTimestamp(entry.Timestamp)
	if err != nil {
		return domain.CreditReading{}, err
	}

	portal := domain.Portal(entry.Portal)
	if parsed, err := domain.ParsePortal(entry.Portal); err == nil {
		portal = parsed
	}

	return domain.CreditReading{
		Portal:    portal,
		Credits:   int(*entry.Credits),
		Timestamp: at.UTC(),
	}, nil
}

func decodeEntry(raw json.RawMessage) (domain.CreditReading, error) {
	var entry entrySchema
	if err := json.Unmarshal(raw, &entry); err != nil {
		return domain.CreditReading{}, fmt.Errorf("decode entry: %w", err)
	}

	return fromSchema(entry)
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return at, nil
	}

	for _, layout := range naiveTimestampLayouts {
		if naive, naiveErr := time.ParseInLocation(layout, raw, time.UTC); naiveErr == nil {
			return naive, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse timestamp: %w", err)
}
