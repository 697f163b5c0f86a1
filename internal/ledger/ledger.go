package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcoelho/zombie-horde/internal/engine"
	"github.com/mcoelho/zombie-horde/internal/game"
)

// Ledger is the authoritative in-process state machine: entity store,
// ownership registry, approvals and the cooldown gate, all behind one mutex
// so operations never interleave. Every mutating method validates completely
// before touching state; a returned error means nothing changed.
type Ledger struct {
	mu sync.Mutex

	clock    Clock
	cooldown time.Duration
	salt     string
	policy   engine.Policy

	zombies    map[uint]*game.Zombie
	nextID     uint
	ownerCount map[game.Principal]int
	events     []game.Event
}

// AttackResult reports the applied outcome of an attack. Zombie fields are
// copies of post-attack state.
type AttackResult struct {
	Won       bool
	Attacker  game.Zombie
	Target    game.Zombie
	Offspring *game.Zombie
}

// New creates an empty ledger. A nil policy falls back to the default
// dna-based one.
func New(clock Clock, cooldown time.Duration, salt string, policy engine.Policy) *Ledger {
	if policy == nil {
		policy = engine.DNAPolicy{}
	}
	return &Ledger{
		clock:      clock,
		cooldown:   cooldown,
		salt:       salt,
		policy:     policy,
		zombies:    make(map[uint]*game.Zombie),
		ownerCount: make(map[game.Principal]int),
	}
}

// Restore loads previously persisted state into an empty ledger. Id
// assignment resumes after the highest restored id.
func (l *Ledger) Restore(zombies []game.Zombie, events []game.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range zombies {
		z := zombies[i]
		l.zombies[z.ID] = &z
		l.ownerCount[z.Owner]++
		if z.ID >= l.nextID {
			l.nextID = z.ID + 1
		}
	}
	l.events = append(l.events, events...)
}

// CreateFor creates a new zombie owned by owner. A principal that already
// owns any zombie cannot create another one through this entry point; that
// is the documented game rule, not a technical limitation (zombies won in
// battle do not pass through here).
func (l *Ledger) CreateFor(owner game.Principal, name string) (game.Zombie, game.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(name) == 0 {
		return game.Zombie{}, game.Event{}, ErrInvalidName
	}
	if l.ownerCount[owner] != 0 {
		return game.Zombie{}, game.Event{}, ErrAlreadyOwnsZombie
	}

	z := l.spawnLocked(owner, name, DeriveDNA(name, l.salt))
	ev := l.appendEventLocked(game.Event{
		Kind: game.EventZombieCreated,
		Created: &game.CreatedPayload{
			ZombieID: z.ID,
			Name:     z.Name,
			DNA:      z.DNA,
			Owner:    owner,
		},
	})
	return *z, ev, nil
}

// Get returns a copy of the zombie with the given id.
func (l *Ledger) Get(id uint) (game.Zombie, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	z, ok := l.zombies[id]
	if !ok {
		return game.Zombie{}, ErrNotFound
	}
	return *z, nil
}

// OwnerOf returns the owner of the zombie with the given id.
func (l *Ledger) OwnerOf(id uint) (game.Principal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	z, ok := l.zombies[id]
	if !ok {
		return game.None, ErrNotFound
	}
	return z.Owner, nil
}

// OwnerCount returns how many zombies the principal owns, zero for unknown
// principals.
func (l *Ledger) OwnerCount(owner game.Principal) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ownerCount[owner]
}

// ZombiesByOwner returns copies of the principal's zombies ordered by id.
func (l *Ledger) ZombiesByOwner(owner game.Principal) []game.Zombie {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]game.Zombie, 0, l.ownerCount[owner])
	for _, z := range l.zombies {
		if z.Owner == owner {
			out = append(out, *z)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Approve delegates transfer rights for one zombie to another principal. A
// new approval replaces any previous one.
func (l *Ledger) Approve(caller game.Principal, id uint, approved game.Principal) (game.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	z, ok := l.zombies[id]
	if !ok {
		return game.Event{}, ErrNotFound
	}
	if z.Owner != caller {
		return game.Event{}, ErrNotOwner
	}

	z.ApprovedFor = approved
	z.UpdatedAt = l.clock.Now()
	ev := l.appendEventLocked(game.Event{
		Kind: game.EventApproval,
		Approval: &game.ApprovalPayload{
			ZombieID: id,
			Owner:    z.Owner,
			Approved: approved,
		},
	})
	return ev, nil
}

// TransferFrom moves ownership of a zombie from `from` to `to`. The caller
// must be either `from` itself or the principal approved for this zombie;
// both paths produce the same post-state. Any approval is consumed.
func (l *Ledger) TransferFrom(caller, from, to game.Principal, id uint) (game.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	z, ok := l.zombies[id]
	if !ok {
		return game.Event{}, ErrNotFound
	}
	if z.Owner != from {
		return game.Event{}, ErrOwnershipMismatch
	}
	if caller != from && (z.ApprovedFor == game.None || caller != z.ApprovedFor) {
		return game.Event{}, ErrNotAuthorized
	}

	l.ownerCount[from]--
	if l.ownerCount[from] == 0 {
		delete(l.ownerCount, from)
	}
	l.ownerCount[to]++
	z.Owner = to
	z.ApprovedFor = game.None
	z.UpdatedAt = l.clock.Now()
	ev := l.appendEventLocked(game.Event{
		Kind: game.EventTransfer,
		Transfer: &game.TransferPayload{
			ZombieID: id,
			From:     from,
			To:       to,
		},
	})
	return ev, nil
}

// Attack resolves a battle between the caller's zombie and a target. The
// attacker must be off cooldown; win or lose it goes back on cooldown, while
// the target's ready time is untouched. A win levels the attacker up and
// spawns an offspring for its owner with mixed dna.
func (l *Ledger) Attack(caller game.Principal, attackerID, targetID uint) (AttackResult, game.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	attacker, ok := l.zombies[attackerID]
	if !ok {
		return AttackResult{}, game.Event{}, ErrNotFound
	}
	target, ok := l.zombies[targetID]
	if !ok {
		return AttackResult{}, game.Event{}, ErrNotFound
	}
	if attacker.Owner != caller {
		return AttackResult{}, game.Event{}, ErrNotOwner
	}
	now := l.clock.Now()
	if !attacker.Ready(now) {
		return AttackResult{}, game.Event{}, ErrOnCooldown
	}

	won := l.policy.AttackerWins(attacker, target)
	res := AttackResult{Won: won}
	payload := &game.AttackPayload{
		AttackerID: attackerID,
		TargetID:   targetID,
		Won:        won,
	}
	if won {
		attacker.WinCount++
		attacker.Level++
		target.LossCount++
		offspring := l.spawnLocked(attacker.Owner, offspringName, MixDNA(attacker.DNA, target.DNA))
		oid := offspring.ID
		payload.OffspringID = &oid
		oc := *offspring
		res.Offspring = &oc
	} else {
		attacker.LossCount++
		target.WinCount++
	}
	attacker.ReadyAt = now.Add(l.cooldown)
	attacker.UpdatedAt = now
	target.UpdatedAt = now
	res.Attacker = *attacker
	res.Target = *target

	ev := l.appendEventLocked(game.Event{Kind: game.EventAttack, Attack: payload})
	return res, ev, nil
}

// LevelUp raises the zombie's level by one. Owner-only.
func (l *Ledger) LevelUp(caller game.Principal, id uint) (game.Zombie, game.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	z, ok := l.zombies[id]
	if !ok {
		return game.Zombie{}, game.Event{}, ErrNotFound
	}
	if z.Owner != caller {
		return game.Zombie{}, game.Event{}, ErrNotOwner
	}

	z.Level++
	z.UpdatedAt = l.clock.Now()
	ev := l.appendEventLocked(game.Event{
		Kind: game.EventLevelUp,
		LevelUp: &game.LevelUpPayload{
			ZombieID: id,
			NewLevel: z.Level,
		},
	})
	return *z, ev, nil
}

// Events returns a copy of the event log, oldest first.
func (l *Ledger) Events() []game.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]game.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Snapshot returns copies of every zombie ordered by id, for persistence.
func (l *Ledger) Snapshot() []game.Zombie {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]game.Zombie, 0, len(l.zombies))
	for _, z := range l.zombies {
		out = append(out, *z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// offspringName is the placeholder name for zombies spawned by a winning
// attack, kept distinct from player-chosen names.
const offspringName = "NoName"

func (l *Ledger) spawnLocked(owner game.Principal, name string, dna uint64) *game.Zombie {
	now := l.clock.Now()
	z := &game.Zombie{
		ID:        l.nextID,
		Name:      name,
		DNA:       dna,
		Level:     1,
		ReadyAt:   now.Add(l.cooldown),
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.nextID++
	l.zombies[z.ID] = z
	l.ownerCount[owner]++
	return z
}

func (l *Ledger) appendEventLocked(ev game.Event) game.Event {
	ev.ID = uuid.NewString()
	ev.At = l.clock.Now()
	l.events = append(l.events, ev)
	return ev
}
