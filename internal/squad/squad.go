package squad

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Kytol/skeleton-crew/internal/goblin"
)

type Row string

const (
	RowFront  Row = "front"
	RowMiddle Row = "middle"
	RowBack   Row = "back"
)

// MaxCapacity is the total slot count across all rows.
const MaxCapacity = 12

type Slot struct {
	Position int    `json:"position"`
	Row      Row    `json:"row"`
	GoblinID string `json:"goblin_id,omitempty"`
}

type Squad struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxCapacity int    `json:"max_capacity"`
	Slots       []Slot `json:"slots"`
}

// Member is a filled slot resolved against the goblin roster at read time.
type Member struct {
	Slot   Slot          `json:"slot"`
	Goblin goblin.Goblin `json:"goblin"`
}

// Store holds the single squad formation. Goblins are referenced by ID
// only; members are looked up when read so they are never stale.
type Store struct {
	mu      sync.RWMutex
	squad   Squad
	goblins goblin.Repository
}

func NewStore(goblins goblin.Repository) *Store {
	return &Store{
		squad: Squad{
			ID:          uuid.NewString(),
			Name:        "My Raid Squad",
			MaxCapacity: MaxCapacity,
			Slots:       initSlots(),
		},
		goblins: goblins,
	}
}

func initSlots() []Slot {
	slots := make([]Slot, 0, MaxCapacity)
	position := 0
	for _, row := range []Row{RowFront, RowMiddle, RowBack} {
		for i := 0; i < 4; i++ {
			slots = append(slots, Slot{Position: position, Row: row})
			position++
		}
	}
	return slots
}

func (s *Store) Squad(ctx context.Context) Squad {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.squad
	out.Slots = append([]Slot(nil), s.squad.Slots...)
	return out
}

// Members resolves filled slots against the roster. Slots referencing a
// goblin that no longer resolves are skipped.
func (s *Store) Members(ctx context.Context) ([]Member, error) {
	s.mu.RLock()
	slots := append([]Slot(nil), s.squad.Slots...)
	s.mu.RUnlock()

	out := make([]Member, 0)
	for _, slot := range slots {
		if slot.GoblinID == "" {
			continue
		}
		g, ok, err := s.goblins.Get(ctx, slot.GoblinID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, Member{Slot: slot, Goblin: g})
	}
	return out, nil
}

// MemberIDs returns the IDs of all squad members in slot order.
func (s *Store) MemberIDs(ctx context.Context) []string {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0)
	for _, slot := range s.squad.Slots {
		if slot.GoblinID != "" {
			out = append(out, slot.GoblinID)
		}
	}
	return out
}

// Add places a goblin in the first empty slot (or the requested one).
// A goblin cannot occupy two slots.
func (s *Store) Add(ctx context.Context, goblinID string, position *int) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.squad.Slots {
		if slot.GoblinID == goblinID {
			return false
		}
	}

	idx := -1
	for i, slot := range s.squad.Slots {
		if slot.GoblinID != "" {
			continue
		}
		if position == nil || slot.Position == *position {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	s.squad.Slots[idx].GoblinID = goblinID
	return true
}

// Remove clears the goblin's slot, if any.
func (s *Store) Remove(ctx context.Context, goblinID string) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.squad.Slots {
		if s.squad.Slots[i].GoblinID == goblinID {
			s.squad.Slots[i].GoblinID = ""
		}
	}
}

// Move swaps the goblin into the target slot, exchanging occupants.
func (s *Store) Move(ctx context.Context, goblinID string, toPosition int) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to := -1, -1
	for i, slot := range s.squad.Slots {
		if slot.GoblinID == goblinID {
			from = i
		}
		if slot.Position == toPosition {
			to = i
		}
	}
	if from == -1 || to == -1 {
		return false
	}
	s.squad.Slots[from].GoblinID = s.squad.Slots[to].GoblinID
	s.squad.Slots[to].GoblinID = goblinID
	return true
}

func (s *Store) Rename(ctx context.Context, name string) {
	_ = ctx
	s.mu.Lock()
	s.squad.Name = name
	s.mu.Unlock()
}

func (s *Store) Contains(ctx context.Context, goblinID string) bool {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, slot := range s.squad.Slots {
		if slot.GoblinID == goblinID {
			return true
		}
	}
	return false
}
