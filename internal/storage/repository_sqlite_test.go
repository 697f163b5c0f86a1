package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mcoelho/zombie-horde/internal/game"
)

func openTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "horde.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return NewSQLiteRepository(db)
}

func TestRepository_ZombieRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	now := time.Unix(1_700_000_000, 0).UTC()

	// Ledger ids start at zero; the zero id must survive persistence.
	zombies := []game.Zombie{
		{ID: 0, Name: "Zombie 1", DNA: 1234567890123400, Level: 1, ReadyAt: now, Owner: "alice"},
		{ID: 1, Name: "Zombie 2", DNA: 9876543210987600, Level: 3, WinCount: 4, Owner: "bob", ApprovedFor: "alice"},
	}
	if err := repo.SaveZombies(zombies); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.ListZombies()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != 0 || got[0].Owner != "alice" || got[0].DNA != zombies[0].DNA {
		t.Fatalf("row 0 did not round-trip: %+v", got[0])
	}
	if got[1].ApprovedFor != "alice" || got[1].WinCount != 4 {
		t.Fatalf("row 1 did not round-trip: %+v", got[1])
	}

	// Saving again with changed fields must update, not duplicate.
	zombies[0].Owner = "carol"
	if err := repo.SaveZombie(&zombies[0]); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}
	byOwner, err := repo.ListZombiesByOwner("carol")
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if len(byOwner) != 1 || byOwner[0].ID != 0 {
		t.Fatalf("expected updated row for carol, got %+v", byOwner)
	}
	all, _ := repo.ListZombies()
	if len(all) != 2 {
		t.Fatalf("upsert must not duplicate rows, got %d", len(all))
	}
}

func TestRepository_EventLogOrderAndLimit(t *testing.T) {
	repo := openTestRepo(t)
	now := time.Unix(1_700_000_000, 0).UTC()

	kinds := []game.EventKind{game.EventZombieCreated, game.EventApproval, game.EventTransfer}
	for i, k := range kinds {
		ev := game.Event{ID: string(rune('a' + i)), Kind: k, At: now.Add(time.Duration(i) * time.Second)}
		if err := repo.SaveEvent(&ev); err != nil {
			t.Fatalf("save event failed: %v", err)
		}
	}

	all, err := repo.ListEvents(0)
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	for i, k := range kinds {
		if all[i].Kind != k {
			t.Fatalf("event %d: expected kind %q, got %q", i, k, all[i].Kind)
		}
	}

	last, err := repo.ListEvents(2)
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if len(last) != 2 || last[0].Kind != game.EventApproval || last[1].Kind != game.EventTransfer {
		t.Fatalf("expected the 2 most recent events oldest first, got %+v", last)
	}
}

func TestRepository_TopZombies(t *testing.T) {
	repo := openTestRepo(t)

	rows := []game.Zombie{
		{ID: 0, Name: "A", Owner: "a", WinCount: 1, Level: 1},
		{ID: 1, Name: "B", Owner: "b", WinCount: 5, Level: 2},
		{ID: 2, Name: "C", Owner: "c", WinCount: 5, Level: 7},
	}
	if err := repo.SaveZombies(rows); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	top, err := repo.GetTopZombies(2)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].ID != 2 || top[1].ID != 1 {
		t.Fatalf("expected wins desc then level desc, got %+v", top)
	}
}
