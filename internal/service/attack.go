package service

import (
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/ledger"
)

// Attack resolves a battle between the caller's zombie and a target, then
// persists every touched row: attacker, target, the offspring when the
// attacker won, and the attack event.
func Attack(led *ledger.Ledger, repo ZombieRepo, caller game.Principal, attackerID, targetID uint) (ledger.AttackResult, game.Event, error) {
	res, ev, err := led.Attack(caller, attackerID, targetID)
	if err != nil {
		return ledger.AttackResult{}, game.Event{}, err
	}

	touched := []game.Zombie{res.Attacker, res.Target}
	if res.Offspring != nil {
		touched = append(touched, *res.Offspring)
	}
	if err := repo.SaveZombies(touched); err != nil {
		return res, ev, err
	}
	if err := repo.SaveEvent(&ev); err != nil {
		return res, ev, err
	}
	return res, ev, nil
}
