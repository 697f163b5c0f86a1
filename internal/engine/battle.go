package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/mcoelho/zombie-horde/internal/game"
)

// Policy decides the outcome of an attack. Implementations must be pure:
// the same pair of zombies in the same state always yields the same result,
// so battles are fully reproducible in tests and across replays.
type Policy interface {
	// AttackerWins reports whether the attacker beats the target.
	AttackerWins(attacker, target *game.Zombie) bool
}

// attackVictoryProbability is the percentage of draws that favor the
// attacker under the default policy.
const attackVictoryProbability = 70

// DNAPolicy is the default outcome policy. It derives a 0-99 draw from both
// combatants' dna, levels and accumulated battle counts, then compares it
// against attackVictoryProbability. Folding the battle counts in makes
// rematches between the same pair vary while keeping every single decision
// deterministic.
type DNAPolicy struct{}

func (DNAPolicy) AttackerWins(attacker, target *game.Zombie) bool {
	var buf [40]byte
	binary.BigEndian.PutUint64(buf[0:], attacker.DNA)
	binary.BigEndian.PutUint64(buf[8:], target.DNA)
	binary.BigEndian.PutUint64(buf[16:], uint64(attacker.Level))
	binary.BigEndian.PutUint64(buf[24:], uint64(attacker.WinCount+attacker.LossCount))
	binary.BigEndian.PutUint64(buf[32:], uint64(target.WinCount+target.LossCount))
	draw := xxhash.Sum64(buf[:]) % 100
	return int(draw) < attackVictoryProbability
}
