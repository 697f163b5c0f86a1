package main

import (
	"os"

	"github.com/mcoelho/zombie-horde/internal/api"
	"github.com/mcoelho/zombie-horde/internal/constants"
	"github.com/mcoelho/zombie-horde/internal/ledger"
	"github.com/mcoelho/zombie-horde/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration. Path comes from HORDE_CONFIG or defaults to
	// ./horde_config.json in the working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via HORDE_DB. Default to a `data/`
	// directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)

	led := ledger.New(ledger.SystemClock{}, cfg.Cooldown, cfg.DNASalt, nil)
	restoreLedgerOrExit(led, repo)

	handler := api.NewZombieHandler(led, repo, cfg.LeaderboardLimit)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteEvents, handler.ListEvents)

		apiRoutes.POST(constants.RouteZombies, handler.CreateZombie)
		apiRoutes.GET(constants.RouteZombieByID, handler.GetZombie)
		apiRoutes.GET(constants.RouteZombieOwner, handler.GetZombieOwner)
		apiRoutes.POST(constants.RouteZombieApprove, handler.ApproveZombie)
		apiRoutes.POST(constants.RouteZombieTransfer, handler.TransferZombie)
		apiRoutes.POST(constants.RouteZombieAttack, handler.AttackZombie)
		apiRoutes.POST(constants.RouteZombieLevelUp, handler.LevelUpZombie)

		apiRoutes.GET(constants.RouteOwnerZombies, handler.ListOwnerZombies)
		apiRoutes.GET(constants.RouteOwnerCount, handler.GetOwnerCount)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
