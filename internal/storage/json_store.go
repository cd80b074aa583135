package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/service"
	"github.com/google/uuid"
)

// JSONStore implements service.Store on top of a single JSON file.
type JSONStore struct {
	logger *slog.Logger
	path   string
	retry  service.RetryOptions
}

// saveRetry covers short-lived failures such as another process holding
// the data file during rename.
var saveRetry = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 10 * time.Millisecond,
	MaxDelay:     100 * time.Millisecond,
	Multiplier:   2,
}

// NewJSONStore creates a store backed by the file at path. The file does
// not need to exist yet.
func NewJSONStore(path string, logger *slog.Logger) (*JSONStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &JSONStore{
		path:   path,
		logger: logger.With("component", "storage", "path", path),
		retry:  saveRetry,
	}, nil
}

// Path returns the location of the data file.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the ledger from disk. A missing, empty or malformed file
// yields an empty ledger; problems are logged, never returned.
func (s *JSONStore) Load(ctx context.Context) model.Ledger {
	if err := validateContext(ctx); err != nil {
		s.logger.Warn("Skipping load", "error", err)
		return model.NewLedger()
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No data file yet, starting fresh")
		} else {
			s.logger.Warn("Failed to read data file, starting fresh", "error", err)
		}
		return model.NewLedger()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("Data file is empty, starting fresh")
		return model.NewLedger()
	}

	ledger, err := decodeLedger(data)
	if err != nil {
		s.logger.Warn("Data file is malformed, starting fresh", "error", err)
		return model.NewLedger()
	}

	s.logger.Debug("Loaded ledger",
		"karma_total", ledger.KarmaTotal,
		"entries", len(ledger.History))

	return ledger
}

// Save atomically replaces the data file with the full ledger.
func (s *JSONStore) Save(ctx context.Context, ledger model.Ledger) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLedger(ledger); err != nil {
		return fmt.Errorf("refusing to save ledger: %w", err)
	}

	data, err := encodeLedger(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := common.WithRetry(ctx, func() error {
		return s.replaceFile(dir, data)
	}, s.retry); err != nil {
		return err
	}

	s.logger.Debug("Saved ledger",
		"karma_total", ledger.KarmaTotal,
		"entries", len(ledger.History))

	return nil
}

// replaceFile writes data to a fresh temp file in dir and renames it over
// the data file.
func (s *JSONStore) replaceFile(dir string, data []byte) error {
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.New().String()))
	if err := writeFileSync(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		return classifyIOError(fmt.Errorf("failed to write temp file: %w", err))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return classifyIOError(fmt.Errorf("failed to replace data file: %w", err))
	}
	return nil
}

// classifyIOError marks failures that another attempt cannot fix.
func classifyIOError(err error) error {
	if errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EROFS) {
		return common.Permanent(err)
	}
	return err
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// encodeLedger renders the ledger as indented UTF-8 JSON. Tally entries
// without a positive count are left out, as decodeLedger ignores them.
func encodeLedger(ledger model.Ledger) ([]byte, error) {
	doc := ledger.Clone()
	if doc.History == nil {
		doc.History = []model.ConfessionRecord{}
	}
	for c, count := range doc.Tally {
		if count <= 0 {
			delete(doc.Tally, c)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
