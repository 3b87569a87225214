package quest

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/task"
)

func newServiceForTest(t *testing.T) (*Service, *economy.Store, *notify.Center) {
	t.Helper()
	eco := economy.NewStore(config.Default())
	center := notify.NewCenter(50)
	svc := NewService(config.Default(), eco, center)
	svc.SetRand(rand.New(rand.NewSource(1)))
	svc.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	return svc, eco, center
}

func TestRefreshOncePerDay(t *testing.T) {
	ctx := context.Background()
	svc, _, center := newServiceForTest(t)

	assert.True(t, svc.Refresh(ctx))
	require.Len(t, svc.Dailies(ctx), 3)
	assert.Equal(t, 1, center.Unread(ctx))

	assert.False(t, svc.Refresh(ctx), "same-day refresh is a no-op")
	assert.Equal(t, 1, center.Unread(ctx))

	svc.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	})
	assert.True(t, svc.Refresh(ctx), "next calendar day rolls fresh quests")
}

func TestQuestLatch(t *testing.T) {
	ctx := context.Background()
	svc, eco, center := newServiceForTest(t)
	svc.Refresh(ctx)

	goldBefore := eco.GetBalance(ctx, economy.CurrencyGold)

	// dq-1 targets 3 completed tasks.
	svc.Apply(ctx, Event{Kind: EventTask, Amount: 3})

	dailies := svc.Dailies(ctx)
	var crusher Quest
	for _, q := range dailies {
		if q.ID == "dq-1" {
			crusher = q
		}
	}
	require.True(t, crusher.Completed)
	assert.Equal(t, 3, crusher.Progress)
	assert.Equal(t, goldBefore+crusher.Reward, eco.GetBalance(ctx, economy.CurrencyGold))

	unreadAfterComplete := center.Unread(ctx)

	// Further progress: no movement, no re-grant, no notification.
	svc.Apply(ctx, Event{Kind: EventTask, Amount: 5})
	for _, q := range svc.Dailies(ctx) {
		if q.ID == "dq-1" {
			assert.Equal(t, 3, q.Progress)
		}
	}
	assert.Equal(t, goldBefore+crusher.Reward, eco.GetBalance(ctx, economy.CurrencyGold))
	assert.Equal(t, unreadAfterComplete, center.Unread(ctx))
}

func TestProgressClampedToTarget(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newServiceForTest(t)
	svc.Refresh(ctx)

	// dq-2 targets 200 gold; a huge delta clamps.
	svc.Apply(ctx, Event{Kind: EventGold, Amount: 10000})
	for _, q := range svc.Dailies(ctx) {
		if q.ID == "dq-2" {
			assert.Equal(t, q.Target, q.Progress)
			assert.True(t, q.Completed)
		}
	}
}

func TestCategoryQuestIgnoresOtherCategories(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newServiceForTest(t)
	svc.Refresh(ctx)

	var specialist Quest
	for _, q := range svc.Dailies(ctx) {
		if q.Kind == KindCategoryFocus {
			specialist = q
		}
	}
	require.NotEmpty(t, specialist.ID)

	other := task.CategoryMining
	if specialist.Category == task.CategoryMining {
		other = task.CategoryCombat
	}

	svc.Apply(ctx, Event{Kind: EventCategory, Category: other, Amount: 2})
	for _, q := range svc.Dailies(ctx) {
		if q.ID == specialist.ID {
			assert.Equal(t, 0, q.Progress)
		}
	}

	svc.Apply(ctx, Event{Kind: EventCategory, Category: specialist.Category, Amount: 2})
	for _, q := range svc.Dailies(ctx) {
		if q.ID == specialist.ID {
			assert.True(t, q.Completed)
		}
	}
}

func TestChainStepsInOrder(t *testing.T) {
	ctx := context.Background()
	svc, eco, _ := newServiceForTest(t)
	svc.SeedChains(ctx, []Chain{
		{
			ID: "c1", Name: "Test Chain",
			Steps: []Step{
				{ID: "s1", Title: "one", Requirement: StepRequirement{Type: StepCompleteTask, Target: 1}, Reward: StepReward{Gold: 10}},
				{ID: "s2", Title: "two", Requirement: StepRequirement{Type: StepEarnGold, Target: 100}, Reward: StepReward{Gold: 20}},
			},
			FinalReward: StepReward{Gold: 500},
		},
	})

	// Gold progress before its step is current: ignored.
	svc.ApplyChain(ctx, ChainEvent{Type: StepEarnGold, Amount: 100})
	chain := svc.Chains(ctx)[0]
	assert.Equal(t, 0, chain.CurrentStep)
	assert.Equal(t, 0, chain.Steps[1].Progress)

	goldBefore := eco.GetBalance(ctx, economy.CurrencyGold)
	svc.ApplyChain(ctx, ChainEvent{Type: StepCompleteTask, Amount: 1})
	chain = svc.Chains(ctx)[0]
	assert.True(t, chain.Steps[0].Completed)
	assert.Equal(t, 1, chain.CurrentStep)
	assert.Equal(t, goldBefore+10, eco.GetBalance(ctx, economy.CurrencyGold))

	svc.ApplyChain(ctx, ChainEvent{Type: StepEarnGold, Amount: 100})
	chain = svc.Chains(ctx)[0]
	assert.True(t, chain.Completed, "finishing the last step latches the chain")
	// Step reward plus final bonus.
	assert.Equal(t, goldBefore+10+20+500, eco.GetBalance(ctx, economy.CurrencyGold))

	// Latched chain ignores further events.
	svc.ApplyChain(ctx, ChainEvent{Type: StepCompleteTask, Amount: 1})
	assert.Equal(t, goldBefore+10+20+500, eco.GetBalance(ctx, economy.CurrencyGold))
}

func TestChainReachLevelTracksHighest(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newServiceForTest(t)
	svc.SeedChains(ctx, []Chain{
		{
			ID: "c1", Name: "Level Chain",
			Steps: []Step{
				{ID: "s1", Requirement: StepRequirement{Type: StepReachLevel, Target: 5}},
			},
		},
	})

	// Successive level-ups report absolute levels; they must not add up.
	svc.ApplyChain(ctx, ChainEvent{Type: StepReachLevel, Amount: 2})
	svc.ApplyChain(ctx, ChainEvent{Type: StepReachLevel, Amount: 3})
	chain := svc.Chains(ctx)[0]
	assert.False(t, chain.Completed)
	assert.Equal(t, 3, chain.Steps[0].Progress)

	// A lower report never regresses the step.
	svc.ApplyChain(ctx, ChainEvent{Type: StepReachLevel, Amount: 2})
	assert.Equal(t, 3, svc.Chains(ctx)[0].Steps[0].Progress)

	svc.ApplyChain(ctx, ChainEvent{Type: StepReachLevel, Amount: 5})
	assert.True(t, svc.Chains(ctx)[0].Completed)
}

func TestChainCategoryStep(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newServiceForTest(t)
	svc.SeedChains(ctx, []Chain{
		{
			ID: "c1", Name: "Mining Chain",
			Steps: []Step{
				{ID: "s1", Requirement: StepRequirement{Type: StepCategoryTasks, Target: 2, Category: task.CategoryMining}},
			},
		},
	})

	svc.ApplyChain(ctx, ChainEvent{Type: StepCategoryTasks, Category: task.CategoryCombat, Amount: 2})
	assert.False(t, svc.Chains(ctx)[0].Completed)

	svc.ApplyChain(ctx, ChainEvent{Type: StepCategoryTasks, Category: task.CategoryMining, Amount: 2})
	assert.True(t, svc.Chains(ctx)[0].Completed)
}
