// Package store persists question records and samples them at random.
package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"encard/internal/logging"
	"encard/internal/question"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendDuckDB = "duckdb"
)

var (
	// ErrStoreEmpty is returned when a record is requested from an empty store.
	ErrStoreEmpty = errors.New("no questions available")
	// ErrStorageUnavailable wraps I/O failures on the backing storage.
	ErrStorageUnavailable = errors.New("question storage unavailable")
	// ErrMalformedStorage is returned when stored data cannot be decoded into
	// valid records. The stored data is left untouched.
	ErrMalformedStorage = errors.New("malformed question storage")
)

// Store is a durable collection of question records.
type Store interface {
	// LoadRandom returns a uniformly random record or ErrStoreEmpty.
	LoadRandom(ctx context.Context) (question.Record, error)
	// Append validates and stores a record, returning it with its assigned ID.
	Append(ctx context.Context, record question.Record) (question.Record, error)
	// List returns every record in insertion order.
	List(ctx context.Context) ([]question.Record, error)
	Close() error
}

// Options configures Open.
type Options struct {
	Backend string
	Path    string
	// Rand drives random selection; nil uses the global source.
	Rand   *rand.Rand
	Logger logrus.FieldLogger
}

// Open creates or opens the backing storage for the configured backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	switch opts.Backend {
	case "", BackendJSON:
		return OpenJSON(opts)
	case BackendDuckDB:
		return OpenDuckDB(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %s|%s)", opts.Backend, BackendJSON, BackendDuckDB)
	}
}

// prepareRecord validates a record and assigns an ID when missing. The
// record's text is stored exactly as given.
func prepareRecord(record question.Record) (question.Record, error) {
	if err := question.Validate(record); err != nil {
		return question.Record{}, err
	}
	prepared := record.Clone()
	if prepared.ID == "" {
		prepared.ID = newRecordID()
	}
	return prepared, nil
}

func pickIndex(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
