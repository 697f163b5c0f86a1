package game

import (
	"time"
)

// Principal is the opaque identifier of an account issuing operations
// (creation, approval, transfer, attack). The server never interprets it
// beyond equality checks.
type Principal string

// None is the zero principal. Ownership is never None after creation; the
// value only appears in approval slots that have been cleared or never set.
const None Principal = ""

// Zombie is a uniquely identified, owned game entity. The ledger assigns the
// ID itself (a dense, strictly increasing sequence), so the column must not
// auto-increment.
type Zombie struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name"`
	// DNA is a 16-decimal-digit value derived from the name and the server
	// salt at creation. The low two digits are always zero; later trait
	// decoding relies on that slot being free.
	DNA       uint64    `json:"dna" gorm:"column:dna"`
	Level     int       `json:"level"`
	ReadyAt   time.Time `json:"ready_at"`
	WinCount  int       `json:"win_count"`
	LossCount int       `json:"loss_count"`
	Owner     Principal `json:"owner" gorm:"index"`
	// ApprovedFor holds the principal allowed to transfer this zombie on the
	// owner's behalf. Cleared on every transfer.
	ApprovedFor Principal `json:"approved_for"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ready reports whether the zombie may act at the given instant.
func (z *Zombie) Ready(now time.Time) bool {
	return !now.Before(z.ReadyAt)
}
