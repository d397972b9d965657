package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("bricks", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// A different game's scores must not leak into the query.
	if _, err := store.SaveScore("pong", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("bricks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending.
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "bricks" {
			t.Errorf("scores[%d].GameID = %q, want bricks", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("bricks", (i+1)*100)
	}

	scores, err := store.TopScores("bricks", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bricks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("bricks", 100)
	store.SaveScore("bricks", 300)
	store.SaveScore("bricks", 200)

	high, err = store.HighScore("bricks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bricks", 100)
	store.SaveScore("bricks", 200)
	store.SaveScore("pong", 300)

	if err := store.ClearScores("bricks"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	bricksScores, _ := store.TopScores("bricks", 10)
	if len(bricksScores) != 0 {
		t.Errorf("Expected 0 bricks scores after clear, got %d", len(bricksScores))
	}

	pongScores, _ := store.TopScores("pong", 10)
	if len(pongScores) != 1 {
		t.Error("Other games' scores should not be affected by the clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("bricks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Empty game stats = %+v, want zeros", stats)
	}

	store.SaveScore("bricks", 10)
	store.SaveScore("bricks", 30)

	stats, err = store.GetGameStats("bricks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", stats.TotalScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
