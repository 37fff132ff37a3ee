package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("sacrifice", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("sacrifice", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("sacrifice", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for sacrifice
	scores, err := store.TopScores("sacrifice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for other
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("sacrifice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("sacrifice", 100)
	store.SaveScore("sacrifice", 300)
	store.SaveScore("sacrifice", 200)

	high, err = store.HighScore("sacrifice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("sacrifice", 100)
	store.SaveScore("sacrifice", 200)
	store.SaveScore("other", 300)

	// Clear only sacrifice scores
	err = store.ClearScores("sacrifice")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	sacrificeScores, _ := store.TopScores("sacrifice", 10)
	if len(sacrificeScores) != 0 {
		t.Errorf("Expected 0 sacrifice scores after clear, got %d", len(sacrificeScores))
	}

	// Dino should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other games should not be affected by clearing sacrifice")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		GameID:      "sacrifice",
		Score:       137,
		Frames:      274,
		Jumps:       12,
		Sacrifices:  3,
		DamageTaken: 60,
		Healed:      14,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive run ID, got %d", id)
	}

	runs, err := store.RecentRuns("sacrifice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	got.ID, got.CreatedAt = 0, run.CreatedAt
	if got != run {
		t.Errorf("RecentRuns()[0] = %+v, expected %+v", got, run)
	}

	// A run also lands in the score table
	high, err := store.HighScore("sacrifice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 137 {
		t.Errorf("Expected high score 137 from the saved run, got %d", high)
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(RunRecord{GameID: "sacrifice", Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("sacrifice", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Same-second inserts fall back to id order
	if runs[0].Score != 5 || runs[2].Score != 3 {
		t.Errorf("Runs not newest first: %+v", runs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "sacrifice", Score: 100, Frames: 200, Jumps: 10, Sacrifices: 2})
	store.SaveRun(RunRecord{GameID: "sacrifice", Score: 50, Frames: 100, Jumps: 4, Sacrifices: 1})
	store.SaveScore("sacrifice", 30)

	stats, err := store.GetGameStats("sacrifice")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 100 || stats.TotalScore != 180 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("Expected average 60, got %v", stats.AvgScore)
	}
	if stats.LongestRun != 200 || stats.TotalJumps != 14 || stats.TotalSacrifices != 3 {
		t.Errorf("Unexpected run stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
