package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID string, score, turns int) {
	t.Helper()
	if _, err := store.SaveScore(gameID, score, turns); err != nil {
		t.Fatalf("SaveScore(%q, %d) failed: %v", gameID, score, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "blobblab", 120, 14)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("blobblab")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d after reopen, expected 120", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "blobblab", 100, 10)
	mustSave(t, store, "blobblab", 50, 4)
	mustSave(t, store, "blobblab", 200, 31)
	mustSave(t, store, "blobblab_12", 500, 60)

	scores, err := store.TopScores("blobblab", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending, turns carried along
	expected := []struct{ score, turns int }{{200, 31}, {100, 10}, {50, 4}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Turns != e.turns {
			t.Errorf("scores[%d] = %d/%d turns, expected %d/%d", i, scores[i].Score, scores[i].Turns, e.score, e.turns)
		}
		if scores[i].GameID != "blobblab" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt should be set", i)
		}
	}

	other, err := store.TopScores("blobblab_12", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for blobblab_12, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100, i)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "test", 100, 1)
	mustSave(t, store, "test", 100, 2)

	scores, err := store.TopScores("test", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Turns != 1 || scores[1].Turns != 2 {
		t.Errorf("Equal scores should keep insert order, got %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blobblab")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "blobblab", 100, 1)
	mustSave(t, store, "blobblab", 300, 1)
	mustSave(t, store, "blobblab", 200, 1)

	high, err = store.HighScore("blobblab")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "blobblab", 100, 1)
	mustSave(t, store, "blobblab", 200, 1)
	mustSave(t, store, "blobblab_16", 300, 1)

	if err := store.ClearScores("blobblab"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("blobblab", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("blobblab_16", 10)
	if len(kept) != 1 {
		t.Error("Other board sizes should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i*10, i)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores()[0] = %d, expected 190", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blobblab")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	mustSave(t, store, "blobblab", 100, 10)
	mustSave(t, store, "blobblab", 300, 20)

	stats, err := store.GetGameStats("blobblab")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 || stats.TotalTurns != 30 {
		t.Errorf("Totals = %d score / %d turns, expected 400/30", stats.TotalScore, stats.TotalTurns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "blobblab", 100, 10)
	mustSave(t, store, "blobblab_12", 40, 5)
	mustSave(t, store, "blobblab_12", 60, 7)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}

	s12 := all["blobblab_12"]
	if s12 == nil || s12.GamesCount != 2 || s12.HighScore != 60 || s12.TotalTurns != 12 {
		t.Errorf("blobblab_12 stats = %+v", s12)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	ref := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", ref, ref},
		{"sqlite text", "2024-05-06 07:08:09", ref},
		{"rfc3339 text", "2024-05-06T07:08:09Z", ref},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.expected) {
				t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}
