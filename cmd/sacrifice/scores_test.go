package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

func TestPrintScoresEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store, "sacrifice", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", out.String())
	}
	if strings.Contains(out.String(), "Recent runs") {
		t.Error("no recent runs section expected without runs")
	}
}

func TestPrintScoresShowsRecentRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for i, score := range []int{30, 75, 12, 48, 60, 91} {
		st := core.RunStats{Frames: 1000 + i, Jumps: 20 + i, Sacrifices: 3, DamageTaken: 55, Healed: 14}
		if _, err := store.SaveRun(storage.NewRunRecord("sacrifice", score, st)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printScores(&out, store, "sacrifice", 3); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	text := out.String()

	if !strings.Contains(text, "Recent runs") {
		t.Fatalf("recent runs section missing:\n%s", text)
	}
	recent := text[strings.Index(text, "Recent runs"):]
	lines := strings.Split(strings.TrimSpace(recent[:strings.Index(recent, "Runs:")]), "\n")
	if got := len(lines) - 2; got != recentRuns {
		t.Errorf("recent run rows = %d, expected %d", got, recentRuns)
	}
	if !strings.Contains(lines[2], "91") || !strings.Contains(lines[2], "1005") {
		t.Errorf("newest run should be listed first, got %q", lines[2])
	}
	if !strings.Contains(text, "Runs: 6  Best: 91") {
		t.Errorf("stats line missing:\n%s", text)
	}
}
