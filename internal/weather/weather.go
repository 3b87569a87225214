package weather

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Kytol/skeleton-crew/internal/task"
)

type Kind string

const (
	KindSunny   Kind = "sunny"
	KindRainy   Kind = "rainy"
	KindStormy  Kind = "stormy"
	KindFoggy   Kind = "foggy"
	KindMagical Kind = "magical"
)

// Effects are pure multipliers consumed by reward computation.
type Effects struct {
	GoldMultiplier float64       `json:"gold_multiplier"`
	XPMultiplier   float64       `json:"xp_multiplier"`
	EnergyCost     float64       `json:"energy_cost"`
	CategoryBonus  task.Category `json:"category_bonus,omitempty"`
}

type Weather struct {
	Kind        Kind    `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Effects     Effects `json:"effects"`
}

// Config holds the fixed weather table.
var Config = map[Kind]Weather{
	KindSunny: {
		Kind: KindSunny, Name: "Sunny", Icon: "☀️",
		Description: "A fine day for goblin labor.",
		Effects:     Effects{GoldMultiplier: 1.0, XPMultiplier: 1.0, EnergyCost: 1.0},
	},
	KindRainy: {
		Kind: KindRainy, Name: "Rainy", Icon: "🌧️",
		Description: "Damp tunnels favor the gatherers.",
		Effects:     Effects{GoldMultiplier: 0.9, XPMultiplier: 1.1, EnergyCost: 1.0, CategoryBonus: task.CategoryGathering},
	},
	KindStormy: {
		Kind: KindStormy, Name: "Stormy", Icon: "⛈️",
		Description: "Dangerous weather; only the brave profit.",
		Effects:     Effects{GoldMultiplier: 1.2, XPMultiplier: 1.2, EnergyCost: 1.5, CategoryBonus: task.CategoryCombat},
	},
	KindFoggy: {
		Kind: KindFoggy, Name: "Foggy", Icon: "🌫️",
		Description: "Hard to see, easy to sneak.",
		Effects:     Effects{GoldMultiplier: 0.8, XPMultiplier: 1.0, EnergyCost: 0.8, CategoryBonus: task.CategoryExploration},
	},
	KindMagical: {
		Kind: KindMagical, Name: "Magical Aurora", Icon: "✨",
		Description: "Wild magic supercharges everything.",
		Effects:     Effects{GoldMultiplier: 1.5, XPMultiplier: 1.5, EnergyCost: 0.5},
	},
}

// draw order and weights; magical is rare.
var (
	kinds   = []Kind{KindSunny, KindRainy, KindStormy, KindFoggy, KindMagical}
	weights = []int{40, 25, 15, 15, 5}
)

// CategoryBonusValue is the extra multiplier when the weather favors the
// task's category.
const CategoryBonusValue = 0.25

// Store holds the single current-weather value and re-rolls it on demand.
type Store struct {
	mu      sync.RWMutex
	current Weather
	rng     *rand.Rand
}

func NewStore() *Store {
	return &Store{
		current: Config[KindSunny],
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand overrides the RNG for tests.
func (s *Store) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	s.rng = rng
	s.mu.Unlock()
}

func (s *Store) Current(ctx context.Context) Weather {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Roll draws a new weather by weight. If the draw equals the current
// weather nothing changes and changed is false; no signal is emitted.
func (s *Store) Roll(ctx context.Context) (Weather, bool) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, w := range weights {
		total += w
	}
	roll := s.rng.Intn(total)
	cumulative := 0
	selected := KindSunny
	for i, k := range kinds {
		cumulative += weights[i]
		if roll < cumulative {
			selected = k
			break
		}
	}

	if selected == s.current.Kind {
		return s.current, false
	}
	s.current = Config[selected]
	return s.current, true
}

// Multipliers returns the gold and XP multipliers for a task category under
// the current weather: weatherMultiplier × (1 + extras + categoryBonus).
// The extras term carries equipment bonuses supplied by the caller.
func (s *Store) Multipliers(ctx context.Context, category task.Category, equipGold, equipXP float64) (gold, xp float64) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	catBonus := 0.0
	if s.current.Effects.CategoryBonus == category && category != "" {
		catBonus = CategoryBonusValue
	}
	gold = s.current.Effects.GoldMultiplier * (1 + equipGold + catBonus)
	xp = s.current.Effects.XPMultiplier * (1 + equipXP + catBonus)
	return gold, xp
}
