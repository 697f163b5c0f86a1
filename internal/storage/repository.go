package storage

import (
	"github.com/mcoelho/zombie-horde/internal/game"
)

// Repository persists ledger state. The ledger remains authoritative at
// runtime; rows are written after each mutation and loaded back at startup.
type Repository interface {
	SaveZombie(z *game.Zombie) error
	SaveZombies(zs []game.Zombie) error
	GetZombieByID(id uint) (*game.Zombie, error)
	ListZombies() ([]game.Zombie, error)
	ListZombiesByOwner(owner game.Principal) ([]game.Zombie, error)

	SaveEvent(ev *game.Event) error
	// ListEvents returns the most recent events, oldest first, capped at
	// limit. A non-positive limit returns the whole log.
	ListEvents(limit int) ([]game.Event, error)

	// GetTopZombies returns the leaderboard: zombies ordered by wins desc,
	// then level desc.
	GetTopZombies(limit int) ([]game.Zombie, error)
}
