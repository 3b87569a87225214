package mission

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/notify"
)

// GoldSink receives mission payouts. *economy.Store satisfies it.
type GoldSink interface {
	Earn(ctx context.Context, c economy.Currency, amount int, description string) bool
}

// Notifier emits mission notifications. *notify.Center satisfies it.
type Notifier interface {
	Add(ctx context.Context, typ notify.Type, title, message, icon string) notify.Notification
}

// Service owns the mission catalog, active deployments and results.
type Service struct {
	mu       sync.Mutex
	missions map[string]*Mission
	order    []string
	active   map[string]*ActiveMission
	results  []Result

	goblins  goblin.Repository
	rewards  GoldSink
	notifier Notifier
	rng      *rand.Rand
	now      func() time.Time
}

func NewService(goblins goblin.Repository, rewards GoldSink, notifier Notifier) *Service {
	s := &Service{
		missions: map[string]*Mission{},
		active:   map[string]*ActiveMission{},
		goblins:  goblins,
		rewards:  rewards,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, m := range DefaultMissions() {
		mm := m
		s.missions[m.ID] = &mm
		s.order = append(s.order, m.ID)
	}
	return s
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

// Missions returns the catalog in a stable order.
func (s *Service) Missions(ctx context.Context) []Mission {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Mission, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.missions[id])
	}
	return out
}

// Active returns active missions, unresolved first-come order.
func (s *Service) Active(ctx context.Context) []ActiveMission {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ActiveMission, 0, len(s.active))
	for _, am := range s.active {
		if !am.Resolved {
			out = append(out, *am)
		}
	}
	return out
}

// Results returns mission results, newest first.
func (s *Service) Results(ctx context.Context) []Result {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Probability computes the success chance for deploying the given members
// on a mission. Returns 0 when the squad is too small.
func (s *Service) Probability(ctx context.Context, missionID string, members []goblin.Goblin) int {
	s.mu.Lock()
	m, ok := s.missions[missionID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	return probability(*m, members)
}

func probability(m Mission, members []goblin.Goblin) int {
	if len(members) < m.Requirements.MinSquadSize {
		return 0
	}

	p := 50

	// Squad size surplus, capped
	sizeBonus := (len(members) - m.Requirements.MinSquadSize) * 5
	if sizeBonus > 20 {
		sizeBonus = 20
	}
	p += sizeBonus

	totalLevel := 0
	for _, g := range members {
		totalLevel += g.Level
	}
	if totalLevel >= m.Requirements.MinTotalLevel {
		p += 15
	} else {
		p -= 20
	}

	for _, g := range members {
		if slices.Contains(m.Requirements.RecommendedRaces, g.Race) {
			p += 3
		}
		if slices.Contains(m.Requirements.RecommendedClasses, g.Class) {
			p += 3
		}
	}

	if req := m.Requirements.MinStats; req != nil {
		avg := averageStats(members)
		if req.Strength > 0 && avg.Strength >= req.Strength {
			p += 5
		}
		if req.Agility > 0 && avg.Agility >= req.Agility {
			p += 5
		}
		if req.Magic > 0 && avg.Magic >= req.Magic {
			p += 5
		}
		if req.Defense > 0 && avg.Defense >= req.Defense {
			p += 5
		}
	}

	p -= DifficultyPenalty[m.Difficulty]

	if p < 5 {
		p = 5
	}
	if p > 95 {
		p = 95
	}
	return p
}

func averageStats(members []goblin.Goblin) goblin.Stats {
	if len(members) == 0 {
		return goblin.Stats{}
	}
	var t goblin.Stats
	for _, g := range members {
		t.Strength += g.Stats.Strength
		t.Agility += g.Stats.Agility
		t.Magic += g.Stats.Magic
		t.Defense += g.Stats.Defense
	}
	n := len(members)
	return goblin.Stats{
		Strength: int(math.Round(float64(t.Strength) / float64(n))),
		Agility:  int(math.Round(float64(t.Agility) / float64(n))),
		Magic:    int(math.Round(float64(t.Magic) / float64(n))),
		Defense:  int(math.Round(float64(t.Defense) / float64(n))),
	}
}

// Deploy starts a mission with the given member IDs. The squad size gate is
// hard: too few members fails the deployment. Members are snapshotted by ID
// and flipped to on-mission status.
func (s *Service) Deploy(ctx context.Context, missionID string, memberIDs []string) (ActiveMission, bool, error) {
	members := make([]goblin.Goblin, 0, len(memberIDs))
	for _, id := range memberIDs {
		g, ok, err := s.goblins.Get(ctx, id)
		if err != nil {
			return ActiveMission{}, false, err
		}
		if ok {
			members = append(members, g)
		}
	}

	s.mu.Lock()
	m, ok := s.missions[missionID]
	if !ok || m.Status != StatusAvailable {
		s.mu.Unlock()
		return ActiveMission{}, false, nil
	}
	if len(members) < m.Requirements.MinSquadSize {
		s.mu.Unlock()
		return ActiveMission{}, false, nil
	}

	now := s.now()
	am := &ActiveMission{
		ID:                 uuid.NewString(),
		MissionID:          missionID,
		StartedAt:          now,
		EndsAt:             now.Add(m.Duration),
		SuccessProbability: probability(*m, members),
	}
	for _, g := range members {
		am.MemberIDs = append(am.MemberIDs, g.ID)
	}
	s.active[am.ID] = am
	m.Status = StatusInProgress
	s.mu.Unlock()

	for i := range members {
		members[i].Status = goblin.StatusOnMission
	}
	if err := s.goblins.UpdateMany(ctx, members); err != nil {
		return ActiveMission{}, false, err
	}
	return *am, true, nil
}

// Resolve rolls the stored probability and settles the mission. It re-reads
// all state at fire time and is idempotent: a second resolution of the same
// active mission finds the resolved guard set and no-ops. Participants are
// released back to available regardless of outcome.
func (s *Service) Resolve(ctx context.Context, activeID string) (Result, bool, error) {
	s.mu.Lock()
	am, ok := s.active[activeID]
	if !ok || am.Resolved {
		s.mu.Unlock()
		return Result{}, false, nil
	}
	am.Resolved = true

	m, ok := s.missions[am.MissionID]
	if !ok {
		s.mu.Unlock()
		return Result{}, false, nil
	}

	success := s.rng.Intn(100) < am.SuccessProbability
	multiplier := DifficultyMultiplier[m.Difficulty]

	res := Result{
		MissionID:  am.MissionID,
		Success:    success,
		ResolvedAt: s.now(),
	}
	if success {
		res.GoldEarned = int(math.Round(float64(m.Rewards.Gold) * multiplier))
		res.ExperienceEarned = m.Rewards.Experience
		res.BonusItems = m.Rewards.BonusItems
	} else {
		// Consolation: 10% gold, 20% XP, and each participant rolls
		// independently for a casualty flag.
		res.GoldEarned = int(math.Round(float64(m.Rewards.Gold) * 0.1))
		res.ExperienceEarned = int(math.Round(float64(m.Rewards.Experience) * 0.2))
		for _, id := range am.MemberIDs {
			if s.rng.Float64() < 0.2 {
				res.Casualties = append(res.Casualties, id)
			}
		}
	}
	s.results = append([]Result{res}, s.results...)
	m.Status = StatusAvailable
	memberIDs := append([]string(nil), am.MemberIDs...)
	missionName := m.Name
	s.mu.Unlock()

	if s.rewards != nil && res.GoldEarned > 0 {
		s.rewards.Earn(ctx, economy.CurrencyGold, res.GoldEarned, "mission: "+missionName)
	}

	// Release participants, bumping counters on success. State is
	// re-fetched here; a participant recruited away or mutated since
	// deployment keeps its latest fields.
	for _, id := range memberIDs {
		g, ok, err := s.goblins.Get(ctx, id)
		if err != nil {
			return Result{}, false, err
		}
		if !ok {
			continue
		}
		g.Status = goblin.StatusAvailable
		if success {
			g.MissionsCompleted++
		}
		if _, err := s.goblins.Update(ctx, g); err != nil {
			return Result{}, false, err
		}
	}

	if s.notifier != nil {
		if success {
			s.notifier.Add(ctx, notify.TypeMissionResult, "Mission Success!",
				fmt.Sprintf("%s - Earned %d gold!", missionName, res.GoldEarned), "⚔️")
		} else {
			s.notifier.Add(ctx, notify.TypeMissionResult, "Mission Failed",
				fmt.Sprintf("%s - Salvaged %d gold", missionName, res.GoldEarned), "💀")
		}
	}
	return res, true, nil
}

// DefaultMissions returns the built-in mission board.
func DefaultMissions() []Mission {
	return []Mission{
		{
			ID: "m-cave-raid", Name: "Goblin Cave Raid",
			Description: "Clear out a rival cave and claim their treasure.",
			Type:        TypeRaid, Difficulty: DifficultyEasy,
			Requirements: Requirements{MinSquadSize: 2, MinTotalLevel: 20, RecommendedClasses: []goblin.Class{goblin.ClassWarrior, goblin.ClassTank}},
			Rewards:      Rewards{Gold: 500, Experience: 100},
			Duration:     1 * time.Minute, Status: StatusAvailable,
		},
		{
			ID: "m-escort", Name: "Merchant Escort",
			Description: "Safely escort a merchant caravan through bandit territory.",
			Type:        TypeEscort, Difficulty: DifficultyEasy,
			Requirements: Requirements{MinSquadSize: 3, MinTotalLevel: 30},
			Rewards:      Rewards{Gold: 750, Experience: 150},
			Duration:     2 * time.Minute, Status: StatusAvailable,
		},
		{
			ID: "m-warlord", Name: "Assassinate the Warlord",
			Description: "Infiltrate the enemy camp and eliminate their leader.",
			Type:        TypeAssassination, Difficulty: DifficultyMedium,
			Requirements: Requirements{MinSquadSize: 2, MinTotalLevel: 80, RecommendedClasses: []goblin.Class{goblin.ClassAssassin, goblin.ClassMage}},
			Rewards:      Rewards{Gold: 2000, Experience: 400, BonusItems: []string{"Shadow Dagger"}},
			Duration:     3 * time.Minute, Status: StatusAvailable,
		},
		{
			ID: "m-outpost", Name: "Defend the Outpost",
			Description: "Hold the northern outpost against waves of undead.",
			Type:        TypeDefense, Difficulty: DifficultyMedium,
			Requirements: Requirements{MinSquadSize: 4, MinTotalLevel: 120, RecommendedRaces: []goblin.Race{goblin.RaceOrc, goblin.RaceTroll}, MinStats: &MinStats{Defense: 50}},
			Rewards:      Rewards{Gold: 3000, Experience: 600},
			Duration:     5 * time.Minute, Status: StatusAvailable,
		},
		{
			ID: "m-lair", Name: "Dragon's Lair",
			Description: "Venture into the dragon's lair and steal from its hoard.",
			Type:        TypeRaid, Difficulty: DifficultyHard,
			Requirements: Requirements{MinSquadSize: 5, MinTotalLevel: 200, MinStats: &MinStats{Strength: 60, Defense: 60}},
			Rewards:      Rewards{Gold: 8000, Experience: 1500, BonusItems: []string{"Dragon Scale Armor", "Fire Ruby"}},
			Duration:     10 * time.Minute, Status: StatusAvailable,
		},
		{
			ID: "m-gate", Name: "The Demon Gate",
			Description: "Close the demon portal before the invasion begins.",
			Type:        TypeDefense, Difficulty: DifficultyLegendary,
			Requirements: Requirements{MinSquadSize: 6, MinTotalLevel: 350, RecommendedClasses: []goblin.Class{goblin.ClassMage, goblin.ClassHealer, goblin.ClassNecromancer}, MinStats: &MinStats{Magic: 70}},
			Rewards:      Rewards{Gold: 20000, Experience: 5000, BonusItems: []string{"Demon Lord's Crown", "Void Crystal"}},
			Duration:     15 * time.Minute, Status: StatusAvailable,
		},
	}
}
