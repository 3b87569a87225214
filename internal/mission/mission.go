package mission

import (
	"time"

	"github.com/Kytol/skeleton-crew/internal/goblin"
)

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// DifficultyPenalty is subtracted from the success probability.
var DifficultyPenalty = map[Difficulty]int{
	DifficultyEasy:      0,
	DifficultyMedium:    10,
	DifficultyHard:      25,
	DifficultyLegendary: 40,
}

// DifficultyMultiplier scales the gold reward on success.
var DifficultyMultiplier = map[Difficulty]float64{
	DifficultyEasy:      1.0,
	DifficultyMedium:    1.5,
	DifficultyHard:      2.0,
	DifficultyLegendary: 3.0,
}

type Type string

const (
	TypeRaid          Type = "raid"
	TypeEscort        Type = "escort"
	TypeAssassination Type = "assassination"
	TypeDefense       Type = "defense"
	TypeExploration   Type = "exploration"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
)

type MinStats struct {
	Strength int `json:"strength,omitempty"`
	Agility  int `json:"agility,omitempty"`
	Magic    int `json:"magic,omitempty"`
	Defense  int `json:"defense,omitempty"`
}

type Requirements struct {
	MinSquadSize       int            `json:"min_squad_size"`
	MinTotalLevel      int            `json:"min_total_level"`
	RecommendedRaces   []goblin.Race  `json:"recommended_races,omitempty"`
	RecommendedClasses []goblin.Class `json:"recommended_classes,omitempty"`
	MinStats           *MinStats      `json:"min_stats,omitempty"`
}

type Rewards struct {
	Gold       int      `json:"gold"`
	Experience int      `json:"experience"`
	BonusItems []string `json:"bonus_items,omitempty"`
}

type Mission struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         Type          `json:"type"`
	Difficulty   Difficulty    `json:"difficulty"`
	Requirements Requirements  `json:"requirements"`
	Rewards      Rewards       `json:"rewards"`
	Duration     time.Duration `json:"duration"`
	Status       Status        `json:"status"`
}

// ActiveMission is a deployed mission awaiting resolution. The resolved
// flag is the status guard that makes resolution exactly-once; a timer
// handle is never used to decide whether resolution already happened.
type ActiveMission struct {
	ID                 string    `json:"id"`
	MissionID          string    `json:"mission_id"`
	MemberIDs          []string  `json:"member_ids"`
	StartedAt          time.Time `json:"started_at"`
	EndsAt             time.Time `json:"ends_at"`
	SuccessProbability int       `json:"success_probability"`
	Resolved           bool      `json:"resolved"`
}

type Result struct {
	MissionID        string    `json:"mission_id"`
	Success          bool      `json:"success"`
	GoldEarned       int       `json:"gold_earned"`
	ExperienceEarned int       `json:"experience_earned"`
	Casualties       []string  `json:"casualties"`
	BonusItems       []string  `json:"bonus_items"`
	ResolvedAt       time.Time `json:"resolved_at"`
}
