package jsonlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/ports"
)

const (
	logFileMode     = 0o644
	logDirMode      = 0o755
	tempFilePattern = ".credits-*.json.tmp"
	corruptSuffix   = ".corrupt-"
)

// Log is the append-only record log stored as a single JSON array.
type Log struct {
	path   string
	mu     *sync.RWMutex
	logger *slog.Logger
	now    func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ReadingLog = (*Log)(nil)

func NewLog(path string, logger *slog.Logger) (*Log, error) {
	if path == "" {
		return nil, errors.New("credits log path is empty")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve credits log path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Log{path: absPath, mu: lockForPath(absPath), logger: logger, now: time.Now}, nil
}

func (l *Log) Path() string {
	return l.path
}

// Load never fails on a missing, unreadable or malformed file; such logs read as empty.
func (l *Log) Load(ctx context.Context) ([]domain.CreditReading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	snap, err := l.read()
	if err != nil {
		l.logger.Warn("credits log unreadable, treating history as empty", "path", l.path, "error", err)
		return []domain.CreditReading{}, nil
	}
	if snap.corruptErr != nil {
		l.logger.Warn("credits log is malformed, treating history as empty", "path", l.path, "error", snap.corruptErr)
		return []domain.CreditReading{}, nil
	}
	if len(snap.skipped) > 0 {
		l.logger.Warn("skipping unreadable credits log entries", "path", l.path,
			"skipped", len(snap.skipped), "error", errors.Join(snap.skipped...))
	}

	return snap.readings, nil
}

func (l *Log) Append(ctx context.Context, readings []domain.CreditReading) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(readings) == 0 {
		return nil
	}

	encoded := make([]json.RawMessage, 0, len(readings))
	for _, reading := range readings {
		if err := reading.Validate(); err != nil {
			return fmt.Errorf("invalid %s reading: %w", reading.Portal.Label(), err)
		}
		raw, err := encodeEntry(toSchema(reading))
		if err != nil {
			return err
		}
		encoded = append(encoded, raw)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	snap, err := l.read()
	if err != nil {
		return fmt.Errorf("read credits log: %w", err)
	}

	if snap.corruptErr != nil {
		backup, err := l.preserveCorrupt(snap.data)
		if err != nil {
			return err
		}
		l.logger.Warn("credits log was malformed; previous content preserved, starting a new history",
			"path", l.path, "backup", backup, "error", snap.corruptErr)
		snap.entries = nil
	}

	entries := append(snap.entries, encoded...)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.write(entries); err != nil {
		return err
	}

	l.logger.Debug("credits log appended", "path", l.path, "added", len(encoded), "total", len(entries))
	return nil
}

type snapshot struct {
	data       []byte
	entries    []json.RawMessage
	readings   []domain.CreditReading
	skipped    []error
	corruptErr error
}

func (l *Log) read() (snapshot, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snapshot{}, nil
		}
		return snapshot{}, err
	}

	snap := snapshot{data: data}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		snap.corruptErr = fmt.Errorf("decode credits log: %w", err)
		return snap, nil
	}
	if entries == nil {
		snap.corruptErr = errors.New("credits log is not a JSON array")
		return snap, nil
	}

	// Entries that do not decode stay in the file untouched; only the
	// array itself decides whether the log is well formed.
	readings := make([]domain.CreditReading, 0, len(entries))
	for i, raw := range entries {
		reading, err := decodeEntry(raw)
		if err != nil {
			snap.skipped = append(snap.skipped, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		readings = append(readings, reading)
	}

	snap.entries = entries
	snap.readings = readings
	return snap, nil
}

func (l *Log) preserveCorrupt(data []byte) (string, error) {
	backup := l.path + corruptSuffix + l.now().UTC().Format("20060102T150405Z")
	if err := os.WriteFile(backup, data, logFileMode); err != nil {
		return "", fmt.Errorf("preserve malformed credits log: %w", err)
	}

	return backup, nil
}

func (l *Log) write(entries []json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(l.path), logDirMode); err != nil {
		return fmt.Errorf("create credits log directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode credits log: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(l.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credits log: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credits log: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp credits log: %w", err)
	}

	if err := tempFile.Chmod(logFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credits log: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credits log: %w", err)
	}

	if err := os.Rename(tempName, l.path); err != nil {
		return fmt.Errorf("replace credits log: %w", err)
	}

	cleanup = false
	return nil
}

func encodeEntry(entry entrySchema) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return nil, fmt.Errorf("encode credits entry: %w", err)
	}

	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
