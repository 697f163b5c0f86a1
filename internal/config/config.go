package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Cooldown applied to a zombie at creation and after every attack,
	// in seconds. Defaults to one day to match the classic game rule.
	CooldownSeconds int `json:"cooldown_seconds"`
	// Salt mixed into dna derivation. Changing it changes the dna of every
	// zombie created afterwards, so treat it as fixed per deployment.
	DNASalt string `json:"dna_salt"`
	// Optional cap for the leaderboard endpoint.
	LeaderboardLimit int `json:"leaderboard_limit"`
}

// LoadedConfig contains the validated server settings.
type LoadedConfig struct {
	ServerAddress    string
	Cooldown         time.Duration
	DNASalt          string
	LeaderboardLimit int
}

// LoadConfig reads the configuration file at path. The only required key is
// `dna_salt`; everything else has a sensible default.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	salt := strings.TrimSpace(rc.DNASalt)
	if salt == "" {
		return nil, fmt.Errorf("config file %s: 'dna_salt' is required (dna derivation must be stable per deployment)", path)
	}
	if rc.CooldownSeconds < 0 {
		return nil, fmt.Errorf("config file %s: 'cooldown_seconds' must not be negative", path)
	}

	cooldown := 24 * time.Hour
	if rc.CooldownSeconds > 0 {
		cooldown = time.Duration(rc.CooldownSeconds) * time.Second
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	limit := 10
	if rc.LeaderboardLimit > 0 {
		limit = rc.LeaderboardLimit
	}

	return &LoadedConfig{
		ServerAddress:    addr,
		Cooldown:         cooldown,
		DNASalt:          salt,
		LeaderboardLimit: limit,
	}, nil
}
