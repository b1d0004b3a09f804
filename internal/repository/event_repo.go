package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"connected/internal/models"
)

// EventRepository owns the canonical in-memory event list and mirrors it into
// the snapshot store as one JSON array. Events are append-only; there is no
// update or delete.
//
// The repository is not goroutine-safe on its own: callers serialize access
// through the app state lock.
type EventRepository struct {
	kv     SnapshotKV
	key    string
	events []models.Event
	now    func() time.Time
}

func NewEventRepository(kv SnapshotKV, key string) *EventRepository {
	return &EventRepository{kv: kv, key: key, now: time.Now}
}

// Load reads the snapshot, falling back to the seed set when the key is
// missing or its value does not parse. A corrupt snapshot is never fatal.
func (r *EventRepository) Load() []models.Event {
	raw, ok, err := r.kv.Get(r.key)
	if err != nil {
		log.Printf("storage: read %q failed, using seed events: %v", r.key, err)
		r.events = SeedEvents()
		return r.all()
	}
	if !ok {
		r.events = SeedEvents()
		return r.all()
	}
	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("storage: snapshot %q is corrupt, using seed events: %v", r.key, err)
		r.events = SeedEvents()
		return r.all()
	}
	r.events = events
	return r.all()
}

// Append assigns a unique time-based id, adds the event and persists the full
// list immediately.
func (r *EventRepository) Append(ev models.Event) (models.Event, error) {
	id := r.now().UnixMilli()
	for r.hasID(id) {
		id++
	}
	ev.ID = id
	r.events = append(r.events, ev)
	if err := r.Persist(); err != nil {
		return ev, err
	}
	return ev, nil
}

// Persist serializes the entire list back to the snapshot store, overwriting
// any prior value.
func (r *EventRepository) Persist() error {
	raw, err := json.Marshal(r.events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	return r.kv.Set(r.key, raw)
}

// All returns the events in insertion order.
func (r *EventRepository) All() []models.Event {
	return r.all()
}

// GetByID looks an event up against the full store, not any filtered subset.
func (r *EventRepository) GetByID(id int64) (*models.Event, bool) {
	for i := range r.events {
		if r.events[i].ID == id {
			ev := r.events[i]
			return &ev, true
		}
	}
	return nil, false
}

func (r *EventRepository) Len() int {
	return len(r.events)
}

func (r *EventRepository) hasID(id int64) bool {
	for i := range r.events {
		if r.events[i].ID == id {
			return true
		}
	}
	return false
}

func (r *EventRepository) all() []models.Event {
	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out
}
