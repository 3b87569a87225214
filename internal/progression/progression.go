package progression

import (
	"context"
	"math"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/task"
)

// Service owns XP accumulation, leveling and reward math for goblins.
type Service struct {
	goblins goblin.Repository
	balance config.Balance
}

func NewService(goblins goblin.Repository, balance config.Balance) *Service {
	return &Service{goblins: goblins, balance: balance}
}

// MoodBonus maps a mood to its reward multiplier.
func (s *Service) MoodBonus(m goblin.Mood) float64 {
	switch m {
	case goblin.MoodTired:
		return s.balance.TiredBonus
	case goblin.MoodHappy:
		return s.balance.HappyBonus
	case goblin.MoodExcited:
		return s.balance.ExcitedBonus
	}
	return s.balance.NeutralBonus
}

// GrantExperience adds XP to a goblin, leveling up as many times as the
// amount allows, and routes the same delta into the matching category skill.
// A missing goblin ID is a no-op, not an error.
func (s *Service) GrantExperience(ctx context.Context, goblinID string, category task.Category, amount int) (goblin.Goblin, bool, error) {
	g, ok, err := s.goblins.Get(ctx, goblinID)
	if err != nil || !ok {
		return goblin.Goblin{}, false, err
	}
	if amount <= 0 {
		return g, true, nil
	}

	leveled := s.applyXP(&g, category, amount)
	if leveled {
		g.Mood = goblin.MoodExcited
	}

	g, err = s.goblins.Update(ctx, g)
	if err != nil {
		return goblin.Goblin{}, false, err
	}
	return g, true, nil
}

func (s *Service) applyXP(g *goblin.Goblin, category task.Category, amount int) (leveled bool) {
	g.XP += amount
	for g.XP >= g.XPToNextLevel {
		g.XP -= g.XPToNextLevel
		g.Level++
		g.XPToNextLevel = int(math.Floor(float64(g.XPToNextLevel) * s.balance.LevelCurve))
		leveled = true
	}

	if g.Skills == nil {
		g.Skills = make(map[task.Category]goblin.Skill)
	}
	sk := g.Skills[category]
	sk.Category = category
	sk.XP += amount
	sk.Level = sk.XP/s.balance.SkillXPPerLevel + 1
	g.Skills[category] = sk

	return leveled
}

// Modifiers are the global multipliers layered on top of the mood,
// specialty and time product. Both default to 1.0.
type Modifiers struct {
	Gold float64
	XP   float64
}

// NoModifiers is the identity modifier set.
func NoModifiers() Modifiers { return Modifiers{Gold: 1.0, XP: 1.0} }

// Outcome is the final reward for a task completion.
type Outcome struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}

// ComputeReward applies the reward formula:
//
//	gold = floor(base × mood × specialty × time × goldModifier)
//	xp   = floor(baseXP × mood × specialty × xpModifier)
//
// Lateness halves gold but never touches XP.
func (s *Service) ComputeReward(t task.Task, g goblin.Goblin, onTime bool, mods Modifiers) Outcome {
	mood := s.MoodBonus(g.Mood)
	specialty := 1.0
	if g.Specialty == t.Category {
		specialty = s.balance.SpecialtyBonus
	}
	timeBonus := 1.0
	if !onTime {
		timeBonus = s.balance.LatePenalty
	}

	return Outcome{
		Gold: int(math.Floor(float64(t.Reward) * mood * specialty * timeBonus * mods.Gold)),
		XP:   int(math.Floor(float64(t.XPReward) * mood * specialty * mods.XP)),
	}
}

// ApplyCompletion settles a task completion against its assigned goblin:
// computes the reward, bumps lifetime counters, applies the completion-count
// mood cadence, and grants the XP. Returns ok=false when the goblin does not
// exist (the completion then grants nothing).
func (s *Service) ApplyCompletion(ctx context.Context, t task.Task, onTime bool, mods Modifiers) (goblin.Goblin, Outcome, bool, error) {
	g, ok, err := s.goblins.Get(ctx, t.AssignedGoblin)
	if err != nil || !ok {
		return goblin.Goblin{}, Outcome{}, false, err
	}

	out := s.ComputeReward(t, g, onTime, mods)

	g.TasksCompleted++
	g.TotalRewards += out.Gold
	if s.balance.HappyCadence > 0 && g.TasksCompleted%s.balance.HappyCadence == 0 {
		g.Mood = goblin.MoodHappy
	}

	if leveled := s.applyXP(&g, t.Category, out.XP); leveled {
		g.Mood = goblin.MoodExcited
	}
	g.Status = goblin.StatusAvailable

	g, err = s.goblins.Update(ctx, g)
	if err != nil {
		return goblin.Goblin{}, Outcome{}, false, err
	}
	return g, out, true, nil
}
