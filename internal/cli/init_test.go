package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"encard/internal/config"
	"encard/internal/testutil"
)

func stubInitInput(t *testing.T, input string) {
	t.Helper()
	orig := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = orig })
}

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	code, out, errOut := runIn(t, dir, "init", "--yes")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr output, got %q", errOut)
	}
	if !strings.Contains(out, "Wrote "+config.ConfigPath(dir)) {
		t.Fatalf("expected config write in output, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "questions.json")); err != nil {
		t.Fatalf("expected store file to exist: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("expected scaffolded config to load: %v", err)
	}
	if cfg.Store.Backend != "json" {
		t.Fatalf("expected json backend, got %q", cfg.Store.Backend)
	}
}

func TestInitCommandPromptsForBackend(t *testing.T) {
	dir := t.TempDir()
	stubInitInput(t, "y\nduckdb\n")
	code, out, errOut := runIn(t, dir, "init")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Store backend (json|duckdb) [json]:") {
		t.Fatalf("expected backend prompt, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "questions.duckdb")); err != nil {
		t.Fatalf("expected duckdb store: %v", err)
	}

	// Later commands pick the backend up from config.yml.
	if code, _, errOut := runIn(t, dir, "add", "--prompt", "q", "--choice", "a", "--answer", "0"); code != ExitOK {
		t.Fatalf("add failed: %s", errOut)
	}
	_, out, _ = runIn(t, dir, "--backend", "duckdb", "list")
	if !strings.Contains(out, "1. q") {
		t.Fatalf("expected record in duckdb store, got %q", out)
	}
}

func TestInitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	stubInitInput(t, "n\n")
	code, _, errOut := runIn(t, dir, "init")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Init cancelled.") {
		t.Fatalf("expected cancel message, got %q", errOut)
	}
	if _, err := os.Stat(config.ConfigPath(dir)); !os.IsNotExist(err) {
		t.Fatalf("expected no config file, got %v", err)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, config.ConfigFileName, "version: 1\n")
	code, out, errOut := runIn(t, dir, "init", "--yes")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected overwrite warning, got %q", errOut)
	}
}

func TestPromptYesNoRetriesUntilAnswered(t *testing.T) {
	var out strings.Builder
	answer, err := promptYesNo(bufioReader("maybe\nno\n"), &out, "Continue?", true)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if answer {
		t.Fatalf("expected no")
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Fatalf("expected retry hint, got %q", out.String())
	}
}

func TestPromptChoiceRejectsUnknownAtEOF(t *testing.T) {
	_, err := promptChoice(bufioReader("sqlite"), io.Discard, "Store backend", []string{"json", "duckdb"}, "json")
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
