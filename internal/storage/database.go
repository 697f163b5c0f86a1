package storage

import (
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (or creates) the SQLite database at the given path and
// keeps the schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Zombie{}, &EventRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadState reads all persisted zombies and events so the caller can rebuild
// the in-memory ledger at startup. A fresh database yields empty slices.
func LoadState(repo Repository) ([]game.Zombie, []game.Event, error) {
	zombies, err := repo.ListZombies()
	if err != nil {
		return nil, nil, err
	}
	events, err := repo.ListEvents(0)
	if err != nil {
		return nil, nil, err
	}
	if len(zombies) > 0 {
		logging.Info("restored ledger state", logging.Fields{"zombies": len(zombies), "events": len(events)})
	}
	return zombies, events, nil
}
