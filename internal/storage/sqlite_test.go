package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func summary(outcome tictactoe.Outcome, moves int) tictactoe.RoundSummary {
	return tictactoe.RoundSummary{
		Mode:       tictactoe.ModeHumanVsComputer,
		Difficulty: tictactoe.Hard,
		Human:      tictactoe.X,
		Outcome:    outcome,
		Moves:      moves,
	}
}

func TestStoreRecordAndTotals(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []tictactoe.RoundSummary{
		summary(tictactoe.OutcomeX, 5),
		summary(tictactoe.OutcomeX, 7),
		summary(tictactoe.OutcomeO, 6),
		summary(tictactoe.OutcomeTie, 9),
	} {
		id, err := store.RecordRound("alice", s)
		if err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("RecordRound() returned non-UUID id %q", id)
		}
	}
	if _, err := store.RecordRound("bob", summary(tictactoe.OutcomeO, 8)); err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Rounds: 5, XWins: 2, OWins: 2, Ties: 1}
	if totals != want {
		t.Errorf("Totals() = %+v, expected %+v", totals, want)
	}
	if totals.Scoreboard() != (tictactoe.Scoreboard{X: 2, O: 2, Ties: 1}) {
		t.Errorf("Scoreboard() = %+v", totals.Scoreboard())
	}

	alice, err := store.SessionTotals("alice")
	if err != nil {
		t.Fatalf("SessionTotals() failed: %v", err)
	}
	if alice != (Totals{Rounds: 4, XWins: 2, OWins: 1, Ties: 1}) {
		t.Errorf("SessionTotals(alice) = %+v", alice)
	}

	nobody, err := store.SessionTotals("nobody")
	if err != nil {
		t.Fatalf("SessionTotals() failed: %v", err)
	}
	if nobody != (Totals{}) {
		t.Errorf("SessionTotals(nobody) = %+v, expected zero", nobody)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for i := 1; i <= 5; i++ {
		if _, err := store.RecordRound("s", summary(tictactoe.OutcomeTie, i+4)); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Moves != 9 || rounds[2].Moves != 7 {
		t.Errorf("unexpected order: %+v", rounds)
	}
	if !rounds[0].PlayedAt.Equal(base.Add(5 * time.Second)) {
		t.Errorf("PlayedAt = %v", rounds[0].PlayedAt)
	}

	r := rounds[0]
	if r.Session != "s" || r.Mode != "cpu" || r.Difficulty != "hard" || r.Human != "X" || r.Outcome != "tie" {
		t.Errorf("unexpected entry: %+v", r)
	}

	all, err := store.RecentRounds(0)
	if err != nil {
		t.Fatalf("RecentRounds(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 rounds, got %d", len(all))
	}
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if rounds == nil || len(rounds) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", rounds)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordRound("s", summary(tictactoe.OutcomeX, 5)); err != nil {
		t.Fatal(err)
	}
	totals, err := b.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if totals.Rounds != 0 {
		t.Errorf("second store saw %d rounds", totals.Rounds)
	}
}

func TestRecorderWithController(t *testing.T) {
	store := openTestStore(t)
	rec := store.Recorder("carol", nil)

	c := tictactoe.NewController(tictactoe.Options{Observer: rec})
	defer c.Close()
	for _, i := range []int{0, 1, 4, 2, 8} {
		c.OnCellActivated(i)
	}

	totals, err := store.SessionTotals(rec.Session())
	if err != nil {
		t.Fatalf("SessionTotals() failed: %v", err)
	}
	if totals != (Totals{Rounds: 1, XWins: 1}) {
		t.Errorf("SessionTotals() = %+v", totals)
	}

	rounds, err := store.RecentRounds(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 1 || rounds[0].Mode != "pvp" || rounds[0].Moves != 5 {
		t.Errorf("unexpected journal entry: %+v", rounds)
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := store.Recorder(uuid.NewString(), nil)
			for j := 0; j < 10; j++ {
				rec.RoundFinished(summary(tictactoe.Outcome(i%3), 5))
			}
		}()
	}
	wg.Wait()

	totals, err := store.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if totals.Rounds != 80 {
		t.Errorf("Expected 80 rounds, got %d", totals.Rounds)
	}
}
