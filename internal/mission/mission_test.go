package mission

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/task"
)

func newServiceForTest(t *testing.T, members ...goblin.Goblin) (*Service, *goblin.MemoryRepo, *economy.Store) {
	t.Helper()
	repo := goblin.NewMemoryRepo()
	require.NoError(t, repo.Seed(context.Background(), members))
	eco := economy.NewStore(config.Default())
	svc := NewService(repo, eco, notify.NewCenter(50))
	svc.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	return svc, repo, eco
}

func testGoblin(name string, level int, class goblin.Class) goblin.Goblin {
	g := goblin.New(name, "👺", task.CategoryCombat, 10, 100)
	g.Level = level
	g.Class = class
	return g
}

func TestProbabilityBaseline(t *testing.T) {
	// Easy mission, exact min squad, level met, no recommendations matched:
	// 50 + 0 + 15 - 0 = 65.
	m := Mission{
		Difficulty:   DifficultyEasy,
		Requirements: Requirements{MinSquadSize: 2, MinTotalLevel: 20},
	}
	members := []goblin.Goblin{
		testGoblin("a", 10, goblin.ClassMage),
		testGoblin("b", 10, goblin.ClassMage),
	}
	assert.Equal(t, 65, probability(m, members))
}

func TestProbabilityBonuses(t *testing.T) {
	m := Mission{
		Difficulty: DifficultyMedium,
		Requirements: Requirements{
			MinSquadSize:       2,
			MinTotalLevel:      20,
			RecommendedClasses: []goblin.Class{goblin.ClassWarrior},
			MinStats:           &MinStats{Strength: 10},
		},
	}
	members := []goblin.Goblin{
		testGoblin("a", 10, goblin.ClassWarrior),
		testGoblin("b", 10, goblin.ClassWarrior),
		testGoblin("c", 10, goblin.ClassMage),
	}
	for i := range members {
		members[i].Stats.Strength = 12
	}

	// 50 + 5 (surplus 1) + 15 (level) + 6 (two warriors) + 5 (avg str) - 10
	assert.Equal(t, 71, probability(m, members))
}

func TestProbabilityClamps(t *testing.T) {
	weak := Mission{
		Difficulty:   DifficultyLegendary,
		Requirements: Requirements{MinSquadSize: 1, MinTotalLevel: 1000},
	}
	members := []goblin.Goblin{testGoblin("a", 1, goblin.ClassMage)}
	assert.Equal(t, 5, probability(weak, members), "floor clamp")

	strong := Mission{
		Difficulty:   DifficultyEasy,
		Requirements: Requirements{MinSquadSize: 1, MinTotalLevel: 1, RecommendedClasses: []goblin.Class{goblin.ClassWarrior}},
	}
	var big []goblin.Goblin
	for i := 0; i < 10; i++ {
		big = append(big, testGoblin("g", 50, goblin.ClassWarrior))
	}
	assert.Equal(t, 95, probability(strong, big), "ceiling clamp")
}

func TestProbabilityTooFewMembers(t *testing.T) {
	m := Mission{Requirements: Requirements{MinSquadSize: 3}}
	assert.Equal(t, 0, probability(m, []goblin.Goblin{testGoblin("a", 10, goblin.ClassMage)}))
}

func TestDeployGates(t *testing.T) {
	ctx := context.Background()
	a := testGoblin("a", 10, goblin.ClassWarrior)
	b := testGoblin("b", 10, goblin.ClassWarrior)
	svc, repo, _ := newServiceForTest(t, a, b)

	// Too small for m-cave-raid (min 2).
	_, ok, err := svc.Deploy(ctx, "m-cave-raid", []string{a.ID})
	require.NoError(t, err)
	assert.False(t, ok)

	am, ok, err := svc.Deploy(ctx, "m-cave-raid", []string{a.ID, b.ID})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, am.MemberIDs, 2)
	assert.False(t, am.Resolved)

	got, _, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, goblin.StatusOnMission, got.Status)

	// Mission is busy; a second deployment fails.
	_, ok, err = svc.Deploy(ctx, "m-cave-raid", []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveSuccess(t *testing.T) {
	ctx := context.Background()
	a := testGoblin("a", 10, goblin.ClassWarrior)
	b := testGoblin("b", 10, goblin.ClassWarrior)
	svc, repo, eco := newServiceForTest(t, a, b)

	am, ok, err := svc.Deploy(ctx, "m-cave-raid", []string{a.ID, b.ID})
	require.NoError(t, err)
	require.True(t, ok)

	// Find a seed whose first roll succeeds against the stored probability.
	for seed := int64(0); ; seed++ {
		if rand.New(rand.NewSource(seed)).Intn(100) < am.SuccessProbability {
			svc.SetRand(rand.New(rand.NewSource(seed)))
			break
		}
	}

	goldBefore := eco.GetBalance(ctx, economy.CurrencyGold)
	res, ok, err := svc.Resolve(ctx, am.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, res.Success)
	assert.Equal(t, 500, res.GoldEarned, "easy multiplier is 1.0")
	assert.Empty(t, res.Casualties)
	assert.Equal(t, goldBefore+500, eco.GetBalance(ctx, economy.CurrencyGold))

	got, _, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, goblin.StatusAvailable, got.Status)
	assert.Equal(t, 1, got.MissionsCompleted)

	missions := svc.Missions(ctx)
	for _, m := range missions {
		if m.ID == "m-cave-raid" {
			assert.Equal(t, StatusAvailable, m.Status)
		}
	}
}

func TestResolveFailureConsolation(t *testing.T) {
	ctx := context.Background()
	a := testGoblin("a", 10, goblin.ClassWarrior)
	b := testGoblin("b", 10, goblin.ClassWarrior)
	svc, repo, _ := newServiceForTest(t, a, b)

	am, ok, err := svc.Deploy(ctx, "m-cave-raid", []string{a.ID, b.ID})
	require.NoError(t, err)
	require.True(t, ok)

	for seed := int64(0); ; seed++ {
		if rand.New(rand.NewSource(seed)).Intn(100) >= am.SuccessProbability {
			svc.SetRand(rand.New(rand.NewSource(seed)))
			break
		}
	}

	res, ok, err := svc.Resolve(ctx, am.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, res.Success)
	assert.Equal(t, 50, res.GoldEarned, "10% consolation gold")
	assert.Equal(t, 20, res.ExperienceEarned, "20% consolation XP")

	// Members come home regardless of outcome, without a completion bump.
	got, _, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, goblin.StatusAvailable, got.Status)
	assert.Equal(t, 0, got.MissionsCompleted)
}

func TestResolveIdempotent(t *testing.T) {
	ctx := context.Background()
	a := testGoblin("a", 10, goblin.ClassWarrior)
	b := testGoblin("b", 10, goblin.ClassWarrior)
	svc, _, eco := newServiceForTest(t, a, b)

	am, ok, err := svc.Deploy(ctx, "m-cave-raid", []string{a.ID, b.ID})
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = svc.Resolve(ctx, am.ID)
	require.NoError(t, err)
	require.True(t, ok)

	goldAfterFirst := eco.GetBalance(ctx, economy.CurrencyGold)
	_, ok, err = svc.Resolve(ctx, am.ID)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate resolution hits the resolved guard")
	assert.Equal(t, goldAfterFirst, eco.GetBalance(ctx, economy.CurrencyGold))
	assert.Len(t, svc.Results(ctx), 1)
}
