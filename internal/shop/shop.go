package shop

import (
	"github.com/Kytol/skeleton-crew/internal/task"
)

type ItemType string

const (
	TypeEquipment  ItemType = "equipment"
	TypeConsumable ItemType = "consumable"
)

type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
	SlotTool      Slot = "tool"
)

// CategoryBonus is an extra bonus that only applies when the worked task
// matches the item's category.
type CategoryBonus struct {
	Category task.Category `json:"category"`
	Bonus    float64       `json:"bonus"`
}

type ItemStats struct {
	GoldBonus     float64        `json:"gold_bonus,omitempty"`
	XPBonus       float64        `json:"xp_bonus,omitempty"`
	EnergyBonus   int            `json:"energy_bonus,omitempty"`
	CategoryBonus *CategoryBonus `json:"category_bonus,omitempty"`
}

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Type        ItemType  `json:"type"`
	Slot        Slot      `json:"slot,omitempty"`
	Price       int       `json:"price"`
	Stats       ItemStats `json:"stats"`
	Quantity    int       `json:"quantity,omitempty"`
}

// Bonuses are the summed equipment bonuses for one goblin and category,
// fed into the weather multiplier composition.
type Bonuses struct {
	Gold   float64 `json:"gold"`
	XP     float64 `json:"xp"`
	Energy int     `json:"energy"`
}

// Catalog returns the fixed shop inventory.
func Catalog() []Item {
	return []Item{
		{
			ID: "rusty-pickaxe", Name: "Rusty Pickaxe", Icon: "⛏️",
			Description: "Better than bare hands. Barely.",
			Type:        TypeEquipment, Slot: SlotTool, Price: 200,
			Stats: ItemStats{CategoryBonus: &CategoryBonus{Category: task.CategoryMining, Bonus: 0.15}},
		},
		{
			ID: "sharpened-shiv", Name: "Sharpened Shiv", Icon: "🗡️",
			Description: "A goblin classic.",
			Type:        TypeEquipment, Slot: SlotWeapon, Price: 350,
			Stats: ItemStats{GoldBonus: 0.05, CategoryBonus: &CategoryBonus{Category: task.CategoryCombat, Bonus: 0.2}},
		},
		{
			ID: "leather-jerkin", Name: "Leather Jerkin", Icon: "🥋",
			Description: "Smells awful, works great.",
			Type:        TypeEquipment, Slot: SlotArmor, Price: 300,
			Stats: ItemStats{XPBonus: 0.1},
		},
		{
			ID: "lucky-tooth", Name: "Lucky Tooth", Icon: "🦷",
			Description: "Whose tooth? Best not to ask.",
			Type:        TypeEquipment, Slot: SlotAccessory, Price: 500,
			Stats: ItemStats{GoldBonus: 0.1, XPBonus: 0.05},
		},
		{
			ID: "scouting-goggles", Name: "Scouting Goggles", Icon: "🥽",
			Description: "See further, wander farther.",
			Type:        TypeEquipment, Slot: SlotAccessory, Price: 450,
			Stats: ItemStats{CategoryBonus: &CategoryBonus{Category: task.CategoryExploration, Bonus: 0.2}},
		},
		{
			ID: "tinkers-gloves", Name: "Tinker's Gloves", Icon: "🧤",
			Description: "Fewer lost fingers per project.",
			Type:        TypeEquipment, Slot: SlotTool, Price: 400,
			Stats: ItemStats{CategoryBonus: &CategoryBonus{Category: task.CategoryCrafting, Bonus: 0.2}},
		},
		{
			ID: "mushroom-brew", Name: "Mushroom Brew", Icon: "🍄",
			Description: "Restores a goblin to full energy.",
			Type:        TypeConsumable, Price: 150,
			Stats:       ItemStats{EnergyBonus: 10},
		},
		{
			ID: "swamp-coffee", Name: "Swamp Coffee", Icon: "☕",
			Description: "Thick enough to chew. Full energy restore.",
			Type:        TypeConsumable, Price: 250,
			Stats:       ItemStats{EnergyBonus: 10},
		},
	}
}
