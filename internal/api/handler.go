package api

import (
	"github.com/mcoelho/zombie-horde/internal/ledger"
	"github.com/mcoelho/zombie-horde/internal/storage"
)

// ZombieHandler groups all HTTP handlers around the shared ledger and its
// persistence.
type ZombieHandler struct {
	led              *ledger.Ledger
	repo             storage.Repository
	leaderboardLimit int
}

// NewZombieHandler creates a handler backed by the given ledger and
// repository.
func NewZombieHandler(led *ledger.Ledger, repo storage.Repository, leaderboardLimit int) *ZombieHandler {
	return &ZombieHandler{led: led, repo: repo, leaderboardLimit: leaderboardLimit}
}
