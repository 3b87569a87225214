package shop

import (
	"context"
	"sync"

	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/task"
)

// Wallet is the gold gate for purchases. *economy.Store satisfies it.
type Wallet interface {
	Spend(ctx context.Context, c economy.Currency, amount int, description string) bool
}

// Notifier emits purchase notifications. *notify.Center satisfies it.
type Notifier interface {
	Add(ctx context.Context, typ notify.Type, title, message, icon string) notify.Notification
}

// Rester restores a goblin's energy when a consumable is used.
type Rester interface {
	RestGoblin(ctx context.Context, goblinID string) bool
}

// Store holds the player inventory and per-goblin equipment loadouts.
type Store struct {
	mu        sync.Mutex
	catalog   []Item
	inventory []Item
	equipment map[string]map[Slot]Item

	wallet   Wallet
	notifier Notifier
}

func NewStore(wallet Wallet, notifier Notifier) *Store {
	return &Store{
		catalog:   Catalog(),
		inventory: make([]Item, 0),
		equipment: make(map[string]map[Slot]Item),
		wallet:    wallet,
		notifier:  notifier,
	}
}

func (s *Store) CatalogItems(ctx context.Context) []Item {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.catalog...)
}

func (s *Store) Inventory(ctx context.Context) []Item {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.inventory...)
}

// Buy spends gold and adds the item to the inventory. A consumable already
// owned stacks; anything else appends.
func (s *Store) Buy(ctx context.Context, itemID string) bool {
	s.mu.Lock()
	var item *Item
	for i := range s.catalog {
		if s.catalog[i].ID == itemID {
			item = &s.catalog[i]
			break
		}
	}
	if item == nil {
		s.mu.Unlock()
		return false
	}
	bought := *item
	s.mu.Unlock()

	if !s.wallet.Spend(ctx, economy.CurrencyGold, bought.Price, "bought "+bought.Name) {
		return false
	}

	s.mu.Lock()
	stacked := false
	if bought.Type == TypeConsumable {
		for i := range s.inventory {
			if s.inventory[i].ID == bought.ID {
				s.inventory[i].Quantity++
				stacked = true
				break
			}
		}
	}
	if !stacked {
		bought.Quantity = 1
		s.inventory = append(s.inventory, bought)
	}
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Add(ctx, notify.TypeItemFound, "Item Purchased!", "You bought "+bought.Name+"!", bought.Icon)
	}
	return true
}

// Equip places an owned equipment item into the goblin's matching slot,
// replacing whatever was there.
func (s *Store) Equip(ctx context.Context, goblinID, itemID string) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *Item
	for i := range s.inventory {
		if s.inventory[i].ID == itemID {
			item = &s.inventory[i]
			break
		}
	}
	if item == nil || item.Type != TypeEquipment || item.Slot == "" {
		return false
	}

	loadout, ok := s.equipment[goblinID]
	if !ok {
		loadout = make(map[Slot]Item)
		s.equipment[goblinID] = loadout
	}
	loadout[item.Slot] = *item
	return true
}

func (s *Store) Unequip(ctx context.Context, goblinID string, slot Slot) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if loadout, ok := s.equipment[goblinID]; ok {
		delete(loadout, slot)
	}
}

func (s *Store) Equipment(ctx context.Context, goblinID string) map[Slot]Item {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Slot]Item)
	for slot, item := range s.equipment[goblinID] {
		out[slot] = item
	}
	return out
}

// EquipmentBonuses sums bonuses across the goblin's loadout. Category
// bonuses count only when the worked category matches.
func (s *Store) EquipmentBonuses(ctx context.Context, goblinID string, category task.Category) Bonuses {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	var b Bonuses
	for _, item := range s.equipment[goblinID] {
		b.Gold += item.Stats.GoldBonus
		b.XP += item.Stats.XPBonus
		b.Energy += item.Stats.EnergyBonus
		if item.Stats.CategoryBonus != nil && item.Stats.CategoryBonus.Category == category {
			b.Gold += item.Stats.CategoryBonus.Bonus
			b.XP += item.Stats.CategoryBonus.Bonus
		}
	}
	return b
}

// UseConsumable spends one charge. An energy consumable fully rests the
// goblin via the supplied rester. Quantity zero removes the stack.
func (s *Store) UseConsumable(ctx context.Context, itemID, goblinID string, rester Rester) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.inventory {
		if s.inventory[i].ID == itemID && s.inventory[i].Type == TypeConsumable {
			idx = i
			break
		}
	}
	if idx == -1 || s.inventory[idx].Quantity <= 0 {
		s.mu.Unlock()
		return false
	}
	item := s.inventory[idx]
	s.inventory[idx].Quantity--
	if s.inventory[idx].Quantity <= 0 {
		s.inventory = append(s.inventory[:idx], s.inventory[idx+1:]...)
	}
	s.mu.Unlock()

	if item.Stats.EnergyBonus > 0 && rester != nil {
		rester.RestGoblin(ctx, goblinID)
	}
	return true
}
