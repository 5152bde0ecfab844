package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"encard/internal/question"
)

// TwoPlusTwo is the sample record used across store, session and CLI tests.
func TwoPlusTwo() question.Record {
	return question.Record{Prompt: "2+2?", Choices: []string{"3", "4"}, CorrectIndex: 1}
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
