package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/sirupsen/logrus"

	"encard/internal/logging"
	"encard/internal/question"
)

//go:embed schema.sql
var schemaDDL string

// DuckDBStore keeps records in a DuckDB database file. Choices are stored as a
// JSON array column.
type DuckDBStore struct {
	mu  sync.Mutex
	db  *sql.DB
	rng *rand.Rand
	log logrus.FieldLogger
}

// OpenDuckDB opens (or creates) the database at opts.Path and applies the
// schema. An empty path opens an in-memory database.
func OpenDuckDB(ctx context.Context, opts Options) (*DuckDBStore, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create store directory: %w", ErrStorageUnavailable, err)
		}
	}
	db, err := sql.Open("duckdb", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open duckdb: %w", ErrStorageUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping duckdb: %w", ErrStorageUnavailable, err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply schema: %w", ErrStorageUnavailable, err)
	}
	return &DuckDBStore{
		db:  db,
		rng: opts.Rand,
		log: log.WithField("store", opts.Path),
	}, nil
}

// LoadRandom picks a uniformly random row by offset.
func (s *DuckDBStore) LoadRandom(ctx context.Context) (question.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM questions`).Scan(&count); err != nil {
		return question.Record{}, fmt.Errorf("%w: count questions: %w", ErrStorageUnavailable, err)
	}
	if count == 0 {
		return question.Record{}, ErrStoreEmpty
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT question_id, prompt, choices, correct_index
		 FROM questions ORDER BY seq LIMIT 1 OFFSET ?`,
		pickIndex(s.rng, count),
	)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return question.Record{}, ErrStoreEmpty
	}
	return record, err
}

// Append validates and inserts a record.
func (s *DuckDBStore) Append(ctx context.Context, record question.Record) (question.Record, error) {
	prepared, err := prepareRecord(record)
	if err != nil {
		return question.Record{}, err
	}
	choices, err := json.Marshal(prepared.Choices)
	if err != nil {
		return question.Record{}, fmt.Errorf("encode choices: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var taken int
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM questions WHERE question_id = ?`, prepared.ID,
	).Scan(&taken); err != nil {
		return question.Record{}, fmt.Errorf("%w: check question id: %w", ErrStorageUnavailable, err)
	}
	if taken > 0 {
		return question.Record{}, question.DuplicateID(prepared.ID)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (question_id, prompt, choices, correct_index)
		 VALUES (?, ?, ?, ?)`,
		prepared.ID,
		prepared.Prompt,
		string(choices),
		prepared.CorrectIndex,
	); err != nil {
		return question.Record{}, fmt.Errorf("%w: insert question: %w", ErrStorageUnavailable, err)
	}
	s.log.WithField("id", prepared.ID).Debug("appended question")
	return prepared, nil
}

// List returns every record ordered by insertion.
func (s *DuckDBStore) List(ctx context.Context) ([]question.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, prompt, choices, correct_index FROM questions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()
	var records []question.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list questions: %w", ErrStorageUnavailable, err)
	}
	return records, nil
}

// Close releases the database handle.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (question.Record, error) {
	var (
		record  question.Record
		choices string
	)
	if err := row.Scan(&record.ID, &record.Prompt, &choices, &record.CorrectIndex); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return question.Record{}, err
		}
		return question.Record{}, fmt.Errorf("%w: scan question: %w", ErrStorageUnavailable, err)
	}
	if err := json.Unmarshal([]byte(choices), &record.Choices); err != nil {
		return question.Record{}, fmt.Errorf("%w: question %s choices: %w", ErrMalformedStorage, record.ID, err)
	}
	if err := question.Validate(record); err != nil {
		return question.Record{}, fmt.Errorf("%w: question %s: %w", ErrMalformedStorage, record.ID, err)
	}
	return record, nil
}
