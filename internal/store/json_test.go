package store

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"encard/internal/question"
	"encard/internal/testutil"
)

func sampleRecord() question.Record {
	return testutil.TwoPlusTwo()
}

func openTestJSON(t *testing.T, path string) *JSONStore {
	t.Helper()
	s, err := OpenJSON(Options{Path: path, Rand: rand.New(rand.NewPCG(1, 2))})
	if err != nil {
		t.Fatalf("open json store: %v", err)
	}
	return s
}

func TestJSONStore_CreatesMissingFileIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "questions.json")
	for i := 0; i < 2; i++ {
		s := openTestJSON(t, path)
		if s.Path() != path {
			t.Fatalf("expected path %q, got %q", path, s.Path())
		}
		records, err := s.List(testutil.Context(t, time.Second))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected empty store, got %d records", len(records))
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected store file to exist: %v", err)
	}
}

func TestJSONStore_EmptyStoreReturnsErrStoreEmpty(t *testing.T) {
	s := openTestJSON(t, filepath.Join(t.TempDir(), "questions.json"))
	_, err := s.LoadRandom(testutil.Context(t, time.Second))
	if !errors.Is(err, ErrStoreEmpty) {
		t.Fatalf("expected ErrStoreEmpty, got %v", err)
	}
}

func TestJSONStore_RoundTripAcrossReopen(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	path := filepath.Join(t.TempDir(), "questions.json")
	s := openTestJSON(t, path)
	stored, err := s.Append(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected an assigned id")
	}

	reopened := openTestJSON(t, path)
	got, err := reopened.LoadRandom(ctx)
	if err != nil {
		t.Fatalf("load random: %v", err)
	}
	want := sampleRecord()
	if got.Prompt != want.Prompt || !reflect.DeepEqual(got.Choices, want.Choices) || got.CorrectIndex != want.CorrectIndex {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.ID != stored.ID {
		t.Fatalf("expected id %q, got %q", stored.ID, got.ID)
	}
}

func TestJSONStore_AppendRejectsInvalidRecord(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	path := filepath.Join(t.TempDir(), "questions.json")
	s := openTestJSON(t, path)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	_, err = s.Append(ctx, question.Record{Prompt: "q", Choices: []string{"a"}, CorrectIndex: 1})
	if !errors.Is(err, question.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("expected store file to be unchanged")
	}
}

func TestJSONStore_MalformedFileIsReportedAndKept(t *testing.T) {
	cases := map[string]string{
		"syntax":        `{"questions": [`,
		"unknown field": `{"questions": [{"prompt": "q", "choices": ["a"], "correct_index": 0, "extra": 1}]}`,
		"bad index":     `{"questions": [{"prompt": "q", "choices": ["a"], "correct_index": 4}]}`,
		"no choices":    `{"questions": [{"prompt": "q", "choices": [], "correct_index": 0}]}`,
		"blank prompt":  `{"questions": [{"prompt": "   ", "choices": ["a"], "correct_index": 0}]}`,
		"duplicate ids": `{"questions": [{"id": "x", "prompt": "q", "choices": ["a"], "correct_index": 0}, {"id": "x", "prompt": "r", "choices": ["a"], "correct_index": 0}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "questions.json", payload)
			_, err := OpenJSON(Options{Path: path})
			if !errors.Is(err, ErrMalformedStorage) {
				t.Fatalf("expected ErrMalformedStorage, got %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read store: %v", err)
			}
			if string(data) != payload {
				t.Fatalf("expected malformed data to be left intact, got %q", data)
			}
		})
	}
}

func TestJSONStore_ZeroLengthFileIsEmpty(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "questions.json", "")
	s := openTestJSON(t, path)
	if _, err := s.LoadRandom(testutil.Context(t, time.Second)); !errors.Is(err, ErrStoreEmpty) {
		t.Fatalf("expected ErrStoreEmpty, got %v", err)
	}
}

func TestJSONStore_UnavailableDirectory(t *testing.T) {
	blocker := testutil.WriteFile(t, t.TempDir(), "file", "x")
	_, err := OpenJSON(Options{Path: filepath.Join(blocker, "questions.json")})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestJSONStore_LoadRandomCoversAllRecords(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	s := openTestJSON(t, filepath.Join(t.TempDir(), "questions.json"))
	prompts := []string{"a?", "b?", "c?"}
	for _, prompt := range prompts {
		if _, err := s.Append(ctx, question.Record{Prompt: prompt, Choices: []string{"x"}}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		record, err := s.LoadRandom(ctx)
		if err != nil {
			t.Fatalf("load random: %v", err)
		}
		seen[record.Prompt] = true
	}
	for _, prompt := range prompts {
		if !seen[prompt] {
			t.Fatalf("expected %q to be sampled", prompt)
		}
	}
}

func TestJSONStore_ConcurrentAppendsAreSerialized(t *testing.T) {
	ctx := testutil.Context(t, 5*time.Second)
	path := filepath.Join(t.TempDir(), "questions.json")
	s := openTestJSON(t, path)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Append(ctx, sampleRecord()); err != nil {
				t.Errorf("append: %v", err)
			}
		}()
	}
	wg.Wait()
	reopened := openTestJSON(t, path)
	records, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 20 {
		t.Fatalf("expected 20 records, got %d", len(records))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be removed, got %v", err)
	}
}

func paddedRecord() question.Record {
	return question.Record{Prompt: "  What does this print?\n", Choices: []string{"  if x:", "    y", " "}, CorrectIndex: 2}
}

func TestJSONStore_KeepsTextExactlyAsGiven(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	path := filepath.Join(t.TempDir(), "questions.json")
	s := openTestJSON(t, path)
	stored, err := s.Append(ctx, paddedRecord())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	want := paddedRecord()
	want.ID = stored.ID
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("expected %+v, got %+v", want, stored)
	}

	got, err := openTestJSON(t, path).LoadRandom(ctx)
	if err != nil {
		t.Fatalf("load random: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want.Choices, got.Choices)
	}
}

func TestJSONStore_RejectsDuplicateID(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	s := openTestJSON(t, filepath.Join(t.TempDir(), "questions.json"))
	record := sampleRecord()
	record.ID = "fixed-id"
	if _, err := s.Append(ctx, record); err != nil {
		t.Fatalf("append: %v", err)
	}
	_, err := s.Append(ctx, record)
	var validationErr *question.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Issues[0].Field != "id" {
		t.Fatalf("expected id validation error, got %v", err)
	}
	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}
