package service

import (
	"testing"
	"time"

	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/ledger"
)

func TestAttack_PersistsAllTouchedZombies(t *testing.T) {
	led, clock := newServiceLedger()
	mr := &mockRepo{}

	attacker, _, err := Spawn(led, mr, "alice", "Attacker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target, _, err := Spawn(led, mr, "bob", "Target")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.Advance(time.Hour)
	before := len(mr.savedZombies)

	res, ev, err := Attack(led, mr, "alice", attacker.ID, target.ID)
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}
	if !res.Won || res.Offspring == nil {
		t.Fatalf("always-win policy should produce an offspring, got %+v", res)
	}
	// Attacker, target and offspring rows all hit storage.
	if got := len(mr.savedZombies) - before; got != 3 {
		t.Fatalf("expected 3 persisted rows, got %d", got)
	}
	if mr.savedEvents[len(mr.savedEvents)-1].ID != ev.ID {
		t.Fatalf("expected the attack event to be persisted last")
	}
}

func TestAttack_CooldownErrorSkipsPersistence(t *testing.T) {
	led, _ := newServiceLedger()
	mr := &mockRepo{}

	attacker, _, _ := Spawn(led, mr, "alice", "Attacker")
	target, _, _ := Spawn(led, mr, "bob", "Target")
	before := len(mr.savedZombies)

	if _, _, err := Attack(led, mr, "alice", attacker.ID, target.ID); err != ledger.ErrOnCooldown {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
	if len(mr.savedZombies) != before {
		t.Fatalf("failed attack must not persist anything")
	}
	if led.OwnerCount(game.Principal("alice")) != 1 {
		t.Fatalf("failed attack must not change ownership")
	}
}
