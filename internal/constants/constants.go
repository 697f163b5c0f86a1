package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "HORDE_CONFIG"
	EnvDBPath     = "HORDE_DB"

	// Defaults when the env vars above are unset
	DefaultConfigPath = "./horde_config.json"
	DefaultDBPath     = "./data/horde.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteZombies        = "/zombies"
	RouteZombieByID     = "/zombies/:zombieID"
	RouteZombieOwner    = "/zombies/:zombieID/owner"
	RouteZombieApprove  = "/zombies/:zombieID/approve"
	RouteZombieTransfer = "/zombies/:zombieID/transfer"
	RouteZombieAttack   = "/zombies/:zombieID/attack"
	RouteZombieLevelUp  = "/zombies/:zombieID/level-up"
	RouteOwnerZombies   = "/owners/:owner/zombies"
	RouteOwnerCount     = "/owners/:owner/count"
	RouteLeaderboard    = "/leaderboard"
	RouteEvents         = "/events"
	RouteVersion        = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrInvalidZombieID  = "Invalid zombie ID"
	ErrZombieNotFound   = "Zombie not found"
	ErrOwnerRequired    = "Owner principal is required"
	ErrCallerRequired   = "Caller principal is required"
	ErrFailedFetchBoard = "Failed to fetch leaderboard"
	ErrFailedFetchLog   = "Failed to fetch event log"
	ErrFailedPersist    = "State applied but could not be persisted"
)

// Logging field names
const (
	LogFieldZombieID = "zombie_id"
	LogFieldOwner    = "owner"
	LogFieldCaller   = "caller"
	LogFieldAddr     = "addr"
)
