package engine

import (
	"testing"

	"github.com/mcoelho/zombie-horde/internal/game"
)

func TestDNAPolicy_Deterministic(t *testing.T) {
	p := DNAPolicy{}
	attacker := &game.Zombie{DNA: 8765432109876500, Level: 3, WinCount: 2, LossCount: 1}
	target := &game.Zombie{DNA: 1234567890123400, Level: 1}

	first := p.AttackerWins(attacker, target)
	for i := 0; i < 10; i++ {
		if p.AttackerWins(attacker, target) != first {
			t.Fatalf("policy must be deterministic for identical state")
		}
	}

	clone := *attacker
	if p.AttackerWins(&clone, target) != first {
		t.Fatalf("policy must depend only on zombie state, not identity")
	}
}

func TestDNAPolicy_VariesWithBattleHistory(t *testing.T) {
	p := DNAPolicy{}
	target := &game.Zombie{DNA: 1234567890123400, Level: 1}

	// Over many battle counts the draw must not be constant; a policy that
	// always returns the same outcome for a pair would make rematches
	// pointless.
	base := game.Zombie{DNA: 8765432109876500, Level: 2}
	seenWin, seenLoss := false, false
	for n := 0; n < 200 && !(seenWin && seenLoss); n++ {
		z := base
		z.WinCount = n
		if p.AttackerWins(&z, target) {
			seenWin = true
		} else {
			seenLoss = true
		}
	}
	if !seenWin || !seenLoss {
		t.Fatalf("expected both outcomes across 200 battle histories (win=%v loss=%v)", seenWin, seenLoss)
	}
}
