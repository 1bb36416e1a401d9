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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.paddles/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".paddles", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, player string
		score        int
	}{
		{"pong", "", 3},
		{"pong", "alice", 5},
		{"pong", "bob", 1},
		{"breakout", "", 500},
	} {
		if _, err := store.SaveScore(s.game, s.player, "", s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 pong scores, got %d", len(scores))
	}

	want := []int{5, 3, 1}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("score[%d] = %d, expected %d", i, e.Score, want[i])
		}
		if e.GameID != "pong" || e.Preset != "normal" {
			t.Errorf("entry %d = %+v", i, e)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d has no timestamp", i)
		}
	}
	if scores[0].Player != "alice" || scores[1].Player != LocalPlayer {
		t.Errorf("players = %q, %q", scores[0].Player, scores[1].Player)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("hockey", "", "", i*10); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopScores("hockey", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 5 || top[0].Score != 190 || top[4].Score != 150 {
		t.Errorf("TopScores(5) = %+v", top)
	}

	def, err := store.TopScores("hockey", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(def) != 10 {
		t.Errorf("default limit returned %d rows, expected 10", len(def))
	}

	all, err := store.AllScores("hockey")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 20 {
		t.Errorf("AllScores returned %d rows, expected 20", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	if hs, err := store.HighScore("pong"); err != nil || hs != 0 {
		t.Fatalf("HighScore() on empty = %d, %v", hs, err)
	}

	store.SaveScore("pong", "", "", 2)
	store.SaveScore("pong", "", "hard", 7)
	store.SaveScore("breakout", "", "", 90)

	if hs, _ := store.HighScore("pong"); hs != 7 {
		t.Errorf("HighScore() = %d, expected 7", hs)
	}

	if err := store.ClearScores("pong"); err != nil {
		t.Fatal(err)
	}
	if hs, _ := store.HighScore("pong"); hs != 0 {
		t.Errorf("HighScore() after clear = %d", hs)
	}
	if hs, _ := store.HighScore("breakout"); hs != 90 {
		t.Errorf("clear touched another game: breakout high = %d", hs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("pong", "", "", 2)
	store.SaveScore("pong", "", "", 4)
	store.SaveScore("hockey", "", "", 1)

	st, err := store.GetGameStats("pong")
	if err != nil {
		t.Fatal(err)
	}
	if st.GamesCount != 2 || st.HighScore != 4 || st.AvgScore != 3 || st.TotalScore != 6 {
		t.Errorf("stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatal(err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["hockey"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []SimRun{
		{RunID: "run-a", GameID: "pong", Seed: 1, Ticks: 600, Score: 2, Contacts: 40, Duration: 1500 * time.Millisecond},
		{RunID: "run-b", GameID: "breakout", Seed: 2, Ticks: 900, Score: 120, Contacts: 300, Duration: time.Second},
		{RunID: "run-c", GameID: "pong", Seed: 3, Ticks: 60, Score: 0, Contacts: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}

	if _, err := store.SaveRun(runs[0]); err == nil {
		t.Error("duplicate run id should fail")
	}

	got, err := store.RunByID("run-a")
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if got.Ticks != 600 || got.Contacts != 40 || got.Duration != 1500*time.Millisecond {
		t.Errorf("run-a = %+v", got)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}

	pong, err := store.RecentRuns("pong", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(pong) != 2 || pong[0].RunID != "run-c" {
		t.Errorf("RecentRuns(pong) = %+v", pong)
	}

	every, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(every) != 3 {
		t.Errorf("RecentRuns(all) returned %d runs", len(every))
	}
}
