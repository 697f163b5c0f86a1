package main

import (
	"github.com/mcoelho/zombie-horde/internal/config"
	"github.com/mcoelho/zombie-horde/internal/ledger"
	"github.com/mcoelho/zombie-horde/internal/logging"
	"github.com/mcoelho/zombie-horde/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid horde configuration", err, logging.Fields{"config_path": path, "hint": "create a horde_config.json with 'dna_salt' and optional keys: server.address, cooldown_seconds, leaderboard_limit"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}

func restoreLedgerOrExit(led *ledger.Ledger, repo storage.Repository) {
	zombies, events, err := storage.LoadState(repo)
	if err != nil {
		logging.Fatal("Failed to load persisted ledger state", err, nil)
	}
	led.Restore(zombies, events)
}
