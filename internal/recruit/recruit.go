package recruit

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/task"
)

// Template is a goblin waiting to be purchased. Once unlocked it cannot be
// bought again.
type Template struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Specialty task.Category `json:"specialty"`
	Race      goblin.Race   `json:"race"`
	Class     goblin.Class  `json:"class"`
	Cost      int           `json:"cost"`
	Unlocked  bool          `json:"unlocked"`
}

// Wallet is the gold gate for recruitment. *economy.Store satisfies it.
type Wallet interface {
	Spend(ctx context.Context, c economy.Currency, amount int, description string) bool
}

// Notifier emits recruitment notifications. *notify.Center satisfies it.
type Notifier interface {
	Add(ctx context.Context, typ notify.Type, title, message, icon string) notify.Notification
}

// Service owns the recruitable template pool. Recruiting spends gold, flips
// the template's unlocked latch and adds the goblin to the roster.
type Service struct {
	mu          sync.Mutex
	templates   []Template
	maxEnergy   int
	xpThreshold int

	goblins  goblin.Repository
	wallet   Wallet
	notifier Notifier
}

func NewService(goblins goblin.Repository, wallet Wallet, notifier Notifier, maxEnergy, xpThreshold int) *Service {
	return &Service{
		templates:   DefaultTemplates(),
		maxEnergy:   maxEnergy,
		xpThreshold: xpThreshold,
		goblins:     goblins,
		wallet:      wallet,
		notifier:    notifier,
	}
}

func (s *Service) Templates(ctx context.Context) []Template {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Template(nil), s.templates...)
}

// Recruit purchases a template. Unknown, already-unlocked or unaffordable
// templates return false without side effects.
func (s *Service) Recruit(ctx context.Context, templateID string) (goblin.Goblin, bool) {
	s.mu.Lock()
	idx := -1
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			idx = i
			break
		}
	}
	if idx == -1 || s.templates[idx].Unlocked {
		s.mu.Unlock()
		return goblin.Goblin{}, false
	}
	tpl := s.templates[idx]
	s.mu.Unlock()

	if !s.wallet.Spend(ctx, economy.CurrencyGold, tpl.Cost, "recruited "+tpl.Name) {
		return goblin.Goblin{}, false
	}

	s.mu.Lock()
	s.templates[idx].Unlocked = true
	s.mu.Unlock()

	g := goblin.New(tpl.Name, tpl.Avatar, tpl.Specialty, s.maxEnergy, s.xpThreshold)
	g.Race = tpl.Race
	g.Class = tpl.Class
	g.HireCost = tpl.Cost
	if _, err := s.goblins.Add(ctx, g); err != nil {
		return goblin.Goblin{}, false
	}

	if s.notifier != nil {
		s.notifier.Add(ctx, notify.TypeAchievement, "New Goblin Recruited!",
			fmt.Sprintf("%s has joined your team!", tpl.Name), tpl.Avatar)
	}
	return g, true
}

// DefaultTemplates returns the recruitable goblin pool.
func DefaultTemplates() []Template {
	return []Template{
		{ID: "rec-grak", Name: "Grak Stonefist", Avatar: "🪨", Specialty: task.CategoryMining, Race: goblin.RaceGoblin, Class: goblin.ClassTank, Cost: 1000},
		{ID: "rec-snizzle", Name: "Snizzle Quickfingers", Avatar: "🪡", Specialty: task.CategoryCrafting, Race: goblin.RaceGoblin, Class: goblin.ClassAssassin, Cost: 1500},
		{ID: "rec-mugwort", Name: "Mugwort the Forager", Avatar: "🍄", Specialty: task.CategoryGathering, Race: goblin.RaceTroll, Class: goblin.ClassHealer, Cost: 1200},
		{ID: "rec-skarr", Name: "Skarr Bonecrusher", Avatar: "💀", Specialty: task.CategoryCombat, Race: goblin.RaceOrc, Class: goblin.ClassBerserker, Cost: 2500},
		{ID: "rec-whisper", Name: "Whisper", Avatar: "🌫️", Specialty: task.CategoryExploration, Race: goblin.RaceDarkElf, Class: goblin.ClassAssassin, Cost: 3000},
	}
}
