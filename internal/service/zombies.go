package service

import (
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/ledger"
)

// ZombieRepo is the minimal repository interface required by the services.
// Using a small interface simplifies testing.
type ZombieRepo interface {
	SaveZombie(z *game.Zombie) error
	SaveZombies(zs []game.Zombie) error
	SaveEvent(ev *game.Event) error
}

// Spawn creates a zombie for the given owner and persists the new row plus
// its creation event.
func Spawn(led *ledger.Ledger, repo ZombieRepo, owner game.Principal, name string) (game.Zombie, game.Event, error) {
	z, ev, err := led.CreateFor(owner, name)
	if err != nil {
		return game.Zombie{}, game.Event{}, err
	}
	if err := repo.SaveZombie(&z); err != nil {
		return z, ev, err
	}
	if err := repo.SaveEvent(&ev); err != nil {
		return z, ev, err
	}
	return z, ev, nil
}

// Approve delegates transfer rights for a zombie and persists the change.
func Approve(led *ledger.Ledger, repo ZombieRepo, caller game.Principal, id uint, approved game.Principal) (game.Event, error) {
	ev, err := led.Approve(caller, id, approved)
	if err != nil {
		return game.Event{}, err
	}
	if err := persistZombie(led, repo, id); err != nil {
		return ev, err
	}
	if err := repo.SaveEvent(&ev); err != nil {
		return ev, err
	}
	return ev, nil
}

// Transfer moves ownership of a zombie and persists the change.
func Transfer(led *ledger.Ledger, repo ZombieRepo, caller, from, to game.Principal, id uint) (game.Event, error) {
	ev, err := led.TransferFrom(caller, from, to, id)
	if err != nil {
		return game.Event{}, err
	}
	if err := persistZombie(led, repo, id); err != nil {
		return ev, err
	}
	if err := repo.SaveEvent(&ev); err != nil {
		return ev, err
	}
	return ev, nil
}

// LevelUp raises a zombie's level and persists the change.
func LevelUp(led *ledger.Ledger, repo ZombieRepo, caller game.Principal, id uint) (game.Zombie, game.Event, error) {
	z, ev, err := led.LevelUp(caller, id)
	if err != nil {
		return game.Zombie{}, game.Event{}, err
	}
	if err := repo.SaveZombie(&z); err != nil {
		return z, ev, err
	}
	if err := repo.SaveEvent(&ev); err != nil {
		return z, ev, err
	}
	return z, ev, nil
}

func persistZombie(led *ledger.Ledger, repo ZombieRepo, id uint) error {
	z, err := led.Get(id)
	if err != nil {
		return err
	}
	return repo.SaveZombie(&z)
}
