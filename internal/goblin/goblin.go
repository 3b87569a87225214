package goblin

import (
	"github.com/google/uuid"

	"github.com/Kytol/skeleton-crew/internal/task"
)

type Mood string

const (
	MoodTired   Mood = "tired"
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusWorking   Status = "working"
	StatusOnMission Status = "on_mission"
)

type Race string

const (
	RaceOrc     Race = "orc"
	RaceGoblin  Race = "goblin"
	RaceWarlock Race = "warlock"
	RaceTroll   Race = "troll"
	RaceUndead  Race = "undead"
	RaceDemon   Race = "demon"
	RaceDarkElf Race = "dark_elf"
)

type Class string

const (
	ClassWarrior     Class = "warrior"
	ClassAssassin    Class = "assassin"
	ClassMage        Class = "mage"
	ClassTank        Class = "tank"
	ClassHealer      Class = "healer"
	ClassBerserker   Class = "berserker"
	ClassNecromancer Class = "necromancer"
)

type Stats struct {
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Magic    int `json:"magic"`
	Defense  int `json:"defense"`
	Health   int `json:"health"`
}

// Skill tracks accumulated per-category experience. Level is derived from
// XP, never incremented directly, so it self-corrects.
type Skill struct {
	Category task.Category `json:"category"`
	XP       int           `json:"xp"`
	Level    int           `json:"level"`
}

type Goblin struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Specialty task.Category `json:"specialty"`
	Race      Race          `json:"race"`
	Class     Class         `json:"class"`

	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xp_to_next_level"`

	Energy    int  `json:"energy"`
	MaxEnergy int  `json:"max_energy"`
	Mood      Mood `json:"mood"`

	Skills map[task.Category]Skill `json:"skills"`
	Stats  Stats                   `json:"stats"`

	TasksCompleted    int `json:"tasks_completed"`
	TotalRewards      int `json:"total_rewards"`
	MissionsCompleted int `json:"missions_completed"`

	HireCost    int `json:"hire_cost,omitempty"`
	DailyUpkeep int `json:"daily_upkeep,omitempty"`

	Status Status `json:"status"`
}

// New creates a level-1 goblin ready for work. xpThreshold seeds the
// level curve; later thresholds derive from it.
func New(name, avatar string, specialty task.Category, maxEnergy, xpThreshold int) Goblin {
	return Goblin{
		ID:            uuid.NewString(),
		Name:          name,
		Avatar:        avatar,
		Specialty:     specialty,
		Race:          RaceGoblin,
		Level:         1,
		XP:            0,
		XPToNextLevel: xpThreshold,
		Energy:        maxEnergy,
		MaxEnergy:     maxEnergy,
		Mood:          MoodNeutral,
		Skills:        make(map[task.Category]Skill),
		Status:        StatusAvailable,
	}
}

// SpendEnergy deducts cost if the goblin has it, reporting success.
func (g *Goblin) SpendEnergy(cost int) bool {
	if g.Energy < cost {
		return false
	}
	g.Energy -= cost
	return true
}

// Regen restores up to amount energy, clamped to max.
func (g *Goblin) Regen(amount int) {
	g.Energy += amount
	if g.Energy > g.MaxEnergy {
		g.Energy = g.MaxEnergy
	}
}

// Rest fully restores energy and settles mood back to neutral. This is the
// only path out of a lingering mood; moods do not decay on their own.
func (g *Goblin) Rest() {
	g.Energy = g.MaxEnergy
	g.Mood = MoodNeutral
}

// TotalSkillXP sums experience across all category skills.
func (g *Goblin) TotalSkillXP() int {
	sum := 0
	for _, s := range g.Skills {
		sum += s.XP
	}
	return sum
}
