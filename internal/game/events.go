package game

import "time"

// EventKind discriminates the payload carried by an Event. Using a dedicated
// type instead of plain string makes code safer and self-documenting.
type EventKind string

const (
	EventZombieCreated EventKind = "zombie_created"
	EventApproval      EventKind = "approval"
	EventTransfer      EventKind = "transfer"
	EventAttack        EventKind = "attack"
	EventLevelUp       EventKind = "level_up"
)

// Event is the record emitted by every mutating ledger operation. It is
// returned synchronously to the caller and appended to the event log, so
// clients (and tests) can assert on creation/transfer details right after the
// call returns. Exactly one payload pointer is non-nil, matching Kind.
type Event struct {
	ID   string    `json:"id"`
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`

	Created  *CreatedPayload  `json:"created,omitempty"`
	Approval *ApprovalPayload `json:"approval,omitempty"`
	Transfer *TransferPayload `json:"transfer,omitempty"`
	Attack   *AttackPayload   `json:"attack,omitempty"`
	LevelUp  *LevelUpPayload  `json:"level_up,omitempty"`
}

type CreatedPayload struct {
	ZombieID uint      `json:"zombie_id"`
	Name     string    `json:"name"`
	DNA      uint64    `json:"dna"`
	Owner    Principal `json:"owner"`
}

type ApprovalPayload struct {
	ZombieID uint      `json:"zombie_id"`
	Owner    Principal `json:"owner"`
	Approved Principal `json:"approved"`
}

type TransferPayload struct {
	ZombieID uint      `json:"zombie_id"`
	From     Principal `json:"from"`
	To       Principal `json:"to"`
}

type AttackPayload struct {
	AttackerID uint `json:"attacker_id"`
	TargetID   uint `json:"target_id"`
	Won        bool `json:"won"`
	// OffspringID is set when the attacker won and a new zombie was spawned
	// for its owner.
	OffspringID *uint `json:"offspring_id,omitempty"`
}

type LevelUpPayload struct {
	ZombieID uint `json:"zombie_id"`
	NewLevel int  `json:"new_level"`
}
