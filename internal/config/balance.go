package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Goblin leveling
	BaseXPThreshold int     `yaml:"base_xp_threshold" json:"base_xp_threshold"`
	LevelCurve      float64 `yaml:"level_curve" json:"level_curve"`
	SkillXPPerLevel int     `yaml:"skill_xp_per_level" json:"skill_xp_per_level"`

	// Mood multipliers
	TiredBonus   float64 `yaml:"tired_bonus" json:"tired_bonus"`
	NeutralBonus float64 `yaml:"neutral_bonus" json:"neutral_bonus"`
	HappyBonus   float64 `yaml:"happy_bonus" json:"happy_bonus"`
	ExcitedBonus float64 `yaml:"excited_bonus" json:"excited_bonus"`

	// Reward modifiers
	SpecialtyBonus float64 `yaml:"specialty_bonus" json:"specialty_bonus"`
	LatePenalty    float64 `yaml:"late_penalty" json:"late_penalty"`

	// Every Nth completion in a session flips mood to happy
	HappyCadence int `yaml:"happy_cadence" json:"happy_cadence"`

	// Energy
	DefaultMaxEnergy int `yaml:"default_max_energy" json:"default_max_energy"`
	AssignEnergyCost int `yaml:"assign_energy_cost" json:"assign_energy_cost"`
	EnergyRegen      int `yaml:"energy_regen" json:"energy_regen"`

	// Currency caps
	GoldCap  int `yaml:"gold_cap" json:"gold_cap"`
	GemsCap  int `yaml:"gems_cap" json:"gems_cap"`
	SoulsCap int `yaml:"souls_cap" json:"souls_cap"`

	// Starting balances
	StartingGold  int `yaml:"starting_gold" json:"starting_gold"`
	StartingGems  int `yaml:"starting_gems" json:"starting_gems"`
	StartingSouls int `yaml:"starting_souls" json:"starting_souls"`

	// Daily quests
	DailyQuestCount int `yaml:"daily_quest_count" json:"daily_quest_count"`

	// Weather
	WeatherIntervalMinutes int `yaml:"weather_interval_minutes" json:"weather_interval_minutes"`

	// Notifications
	MaxNotifications int `yaml:"max_notifications" json:"max_notifications"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		BaseXPThreshold:        100,
		LevelCurve:             1.5,
		SkillXPPerLevel:        100,
		TiredBonus:             0.8,
		NeutralBonus:           1.0,
		HappyBonus:             1.2,
		ExcitedBonus:           1.5,
		SpecialtyBonus:         1.25,
		LatePenalty:            0.5,
		HappyCadence:           5,
		DefaultMaxEnergy:       10,
		AssignEnergyCost:       2,
		EnergyRegen:            1,
		GoldCap:                100000,
		GemsCap:                1000,
		SoulsCap:               500,
		StartingGold:           5000,
		StartingGems:           50,
		StartingSouls:          10,
		DailyQuestCount:        3,
		WeatherIntervalMinutes: 5,
		MaxNotifications:       50,
	}
}

// Casual returns easier balance for casual play
func Casual() Balance {
	cfg := Default()
	cfg.LatePenalty = 0.75
	cfg.AssignEnergyCost = 1
	cfg.EnergyRegen = 2
	cfg.DefaultMaxEnergy = 12
	cfg.StartingGold = 10000
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.LatePenalty = 0.25
	cfg.AssignEnergyCost = 3
	cfg.DefaultMaxEnergy = 8
	cfg.StartingGold = 2000
	cfg.StartingGems = 20
	cfg.StartingSouls = 0
	return cfg
}
