package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"encard/internal/logging"
	"encard/internal/question"
)

const jsonDocumentVersion = 1

// jsonDocument is the on-disk layout of the JSON backend.
type jsonDocument struct {
	Version   int               `json:"version"`
	Questions []question.Record `json:"questions"`
}

// JSONStore keeps every record in memory and rewrites the backing file
// atomically on append.
type JSONStore struct {
	mu      sync.Mutex
	path    string
	records []question.Record
	rng     *rand.Rand
	log     logrus.FieldLogger
}

// OpenJSON loads the JSON file at opts.Path, creating it and its directory
// when absent.
func OpenJSON(opts Options) (*JSONStore, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: store path is required", ErrStorageUnavailable)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	s := &JSONStore{
		path: opts.Path,
		rng:  opts.Rand,
		log:  log.WithField("store", opts.Path),
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create store directory: %w", ErrStorageUnavailable, err)
	}
	data, err := os.ReadFile(opts.Path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.save(nil); err != nil {
			return nil, err
		}
		s.log.Info("created empty question store")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, opts.Path, err)
	}
	records, err := decodeJSONDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedStorage, opts.Path, err)
	}
	s.records = records
	s.log.WithField("questions", len(records)).Debug("loaded question store")
	return s, nil
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// LoadRandom returns a uniformly random record.
func (s *JSONStore) LoadRandom(ctx context.Context) (question.Record, error) {
	if err := ctx.Err(); err != nil {
		return question.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return question.Record{}, ErrStoreEmpty
	}
	return s.records[pickIndex(s.rng, len(s.records))].Clone(), nil
}

// Append validates the record and persists it. The in-memory collection only
// changes once the file write succeeded.
func (s *JSONStore) Append(ctx context.Context, record question.Record) (question.Record, error) {
	if err := ctx.Err(); err != nil {
		return question.Record{}, err
	}
	prepared, err := prepareRecord(record)
	if err != nil {
		return question.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.records {
		if existing.ID == prepared.ID {
			return question.Record{}, question.DuplicateID(prepared.ID)
		}
	}
	next := make([]question.Record, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, prepared)
	if err := s.save(next); err != nil {
		return question.Record{}, err
	}
	s.records = next
	s.log.WithField("id", prepared.ID).Debug("appended question")
	return prepared.Clone(), nil
}

// List returns every record in insertion order.
func (s *JSONStore) List(ctx context.Context) ([]question.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]question.Record, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record.Clone())
	}
	return out, nil
}

// Close is a no-op; the file is not held open.
func (s *JSONStore) Close() error {
	return nil
}

// save writes records to the backing file using an atomic rename.
func (s *JSONStore) save(records []question.Record) error {
	if records == nil {
		records = []question.Record{}
	}
	payload, err := json.MarshalIndent(jsonDocument{Version: jsonDocumentVersion, Questions: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode question store: %w", err)
	}
	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	_, writeErr := file.Write(append(payload, '\n'))
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, s.path, err)
		}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// decodeJSONDocument parses and validates the stored document. A zero-length
// file is an empty store.
func decodeJSONDocument(data []byte) ([]question.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var doc jsonDocument
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("parse json: trailing data after document")
	}
	if doc.Version != 0 && doc.Version != jsonDocumentVersion {
		return nil, fmt.Errorf("unsupported version %d", doc.Version)
	}
	seen := make(map[string]int, len(doc.Questions))
	for i, record := range doc.Questions {
		if err := question.Validate(record); err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		if record.ID == "" {
			continue
		}
		if first, ok := seen[record.ID]; ok {
			return nil, fmt.Errorf("questions[%d]: id %q duplicates questions[%d]", i, record.ID, first)
		}
		seen[record.ID] = i
	}
	return doc.Questions, nil
}
