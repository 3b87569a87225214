package quest

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/task"
)

// GoldSink receives quest rewards. *economy.Store satisfies it.
type GoldSink interface {
	Earn(ctx context.Context, c economy.Currency, amount int, description string) bool
}

// Notifier emits quest notifications. *notify.Center satisfies it.
type Notifier interface {
	Add(ctx context.Context, typ notify.Type, title, message, icon string) notify.Notification
}

// Service owns daily quests and quest chains.
type Service struct {
	mu          sync.Mutex
	dailies     []Quest
	chains      []Chain
	lastRefresh string
	balance     config.Balance
	rewards     GoldSink
	notifier    Notifier
	rng         *rand.Rand
	now         func() time.Time
}

func NewService(balance config.Balance, rewards GoldSink, notifier Notifier) *Service {
	return &Service{
		balance:  balance,
		rewards:  rewards,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// SetRand overrides the RNG for tests.
func (s *Service) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	s.rng = rng
	s.mu.Unlock()
}

// SeedChains installs quest chains, replacing any existing set.
func (s *Service) SeedChains(ctx context.Context, chains []Chain) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chains = chains
}

// Dailies returns the current daily quests.
func (s *Service) Dailies(ctx context.Context) []Quest {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Quest, len(s.dailies))
	copy(out, s.dailies)
	return out
}

// Chains returns the current quest chains.
func (s *Service) Chains(ctx context.Context) []Chain {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Chain, len(s.chains))
	copy(out, s.chains)
	return out
}

// Refresh regenerates the daily quests once per calendar day. Calling it
// again the same day is a no-op.
func (s *Service) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format("2006-01-02")
	if s.lastRefresh == today {
		return false
	}

	category := task.Categories[s.rng.Intn(len(task.Categories))]
	s.dailies = []Quest{
		{ID: "dq-1", Title: "Task Crusher", Description: "Complete 3 tasks today", Kind: KindCompleteTasks, Target: 3, Reward: 100, XPReward: 50, Icon: "✅"},
		{ID: "dq-2", Title: "Gold Rush", Description: "Earn 200 gold", Kind: KindEarnGold, Target: 200, Reward: 75, XPReward: 40, Icon: "💰"},
		{ID: "dq-3", Title: "Specialist", Description: fmt.Sprintf("Complete 2 %s tasks", category), Kind: KindCategoryFocus, Category: category, Target: 2, Reward: 150, XPReward: 75, Icon: "🎯"},
	}
	if n := s.balance.DailyQuestCount; n > 0 && n < len(s.dailies) {
		s.dailies = s.dailies[:n]
	}
	s.lastRefresh = today

	if s.notifier != nil {
		s.notifier.Add(ctx, notify.TypeDailyBonus, "New Daily Quests!", "Fresh challenges await you today!", "📋")
	}
	return true
}

// Apply routes a progress event to all daily quests. Quests whose kind (and
// category, for category-scoped quests) does not match are untouched.
// Crossing the target grants the reward exactly once and emits a
// notification.
func (s *Service) Apply(ctx context.Context, e Event) {
	s.mu.Lock()
	var completed []Quest
	for i := range s.dailies {
		if s.dailies[i].apply(e) {
			completed = append(completed, s.dailies[i])
		}
	}
	s.mu.Unlock()

	for _, q := range completed {
		if s.rewards != nil {
			s.rewards.Earn(ctx, economy.CurrencyGold, q.Reward, "quest reward: "+q.Title)
		}
		if s.notifier != nil {
			s.notifier.Add(ctx, notify.TypeQuestComplete, "Quest Complete!",
				fmt.Sprintf("%s - Earned %d gold!", q.Title, q.Reward), q.Icon)
		}
	}
}

// ApplyChain routes a progress event to all quest chains.
func (s *Service) ApplyChain(ctx context.Context, e ChainEvent) {
	s.mu.Lock()
	type chainOutcome struct {
		chain Chain
		steps []Step
		done  bool
	}
	var outcomes []chainOutcome
	for i := range s.chains {
		steps, done := s.chains[i].apply(e)
		if len(steps) > 0 || done {
			outcomes = append(outcomes, chainOutcome{chain: s.chains[i], steps: steps, done: done})
		}
	}
	s.mu.Unlock()

	for _, o := range outcomes {
		for _, step := range o.steps {
			if s.rewards != nil {
				s.rewards.Earn(ctx, economy.CurrencyGold, step.Reward.Gold, "quest step: "+step.Title)
			}
			if s.notifier != nil {
				s.notifier.Add(ctx, notify.TypeQuestComplete, "Quest Step Complete!",
					fmt.Sprintf("%s - %s", step.Title, o.chain.Name), "📜")
			}
		}
		if o.done {
			if s.rewards != nil {
				s.rewards.Earn(ctx, economy.CurrencyGold, o.chain.FinalReward.Gold, "quest chain: "+o.chain.Name)
			}
			if s.notifier != nil {
				s.notifier.Add(ctx, notify.TypeQuestComplete, "Quest Chain Complete!",
					fmt.Sprintf("%s - Earned %d gold!", o.chain.Name, o.chain.FinalReward.Gold), "🏆")
			}
		}
	}
}
