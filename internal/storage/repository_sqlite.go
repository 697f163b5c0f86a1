package storage

import (
	"encoding/json"
	"time"

	"github.com/mcoelho/zombie-horde/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRecord is the persisted shape of a game.Event. The payload is stored
// as a JSON blob so the events table does not need a column per event kind.
type EventRecord struct {
	SeqNo   uint   `gorm:"primaryKey;autoIncrement"`
	EventID string `gorm:"uniqueIndex"`
	Kind    string
	At      time.Time
	Payload string `gorm:"type:text"`
}

func (EventRecord) TableName() string { return "ledger_events" }

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveZombie(z *game.Zombie) error {
	// Upsert by primary key: zombie ids are assigned by the ledger (starting
	// at zero), so a plain Save would mistake the first zombie for a new row
	// on every write.
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(z).Error
}

func (r *sqliteRepository) SaveZombies(zs []game.Zombie) error {
	for i := range zs {
		if err := r.SaveZombie(&zs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) GetZombieByID(id uint) (*game.Zombie, error) {
	var z game.Zombie
	if err := r.db.Where("id = ?", id).First(&z).Error; err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *sqliteRepository) ListZombies() ([]game.Zombie, error) {
	var zs []game.Zombie
	if err := r.db.Order("id asc").Find(&zs).Error; err != nil {
		return nil, err
	}
	return zs, nil
}

func (r *sqliteRepository) ListZombiesByOwner(owner game.Principal) ([]game.Zombie, error) {
	var zs []game.Zombie
	if err := r.db.Where("owner = ?", string(owner)).Order("id asc").Find(&zs).Error; err != nil {
		return nil, err
	}
	return zs, nil
}

func (r *sqliteRepository) SaveEvent(ev *game.Event) error {
	rec, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) ListEvents(limit int) ([]game.Event, error) {
	var recs []EventRecord
	q := r.db.Order("seq_no desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	// Reverse into oldest-first order.
	out := make([]game.Event, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		ev, err := decodeEvent(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *sqliteRepository) GetTopZombies(limit int) ([]game.Zombie, error) {
	if limit <= 0 {
		limit = 10
	}
	var zs []game.Zombie
	if err := r.db.Model(&game.Zombie{}).
		Order("win_count DESC").
		Order("level DESC").
		Limit(limit).
		Find(&zs).Error; err != nil {
		return nil, err
	}
	return zs, nil
}

func encodeEvent(ev *game.Event) (*EventRecord, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return &EventRecord{
		EventID: ev.ID,
		Kind:    string(ev.Kind),
		At:      ev.At,
		Payload: string(b),
	}, nil
}

func decodeEvent(rec *EventRecord) (game.Event, error) {
	var ev game.Event
	if err := json.Unmarshal([]byte(rec.Payload), &ev); err != nil {
		return game.Event{}, err
	}
	return ev, nil
}
