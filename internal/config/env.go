package config

import (
	"os"
	"strconv"
)

// FromEnv layers balance overrides from environment variables on top of
// the given base. Unset variables leave the base value untouched.
func FromEnv(cfg Balance) Balance {
	if val := getEnvInt("BASE_XP_THRESHOLD"); val > 0 {
		cfg.BaseXPThreshold = val
	}
	if val := getEnvInt("SKILL_XP_PER_LEVEL"); val > 0 {
		cfg.SkillXPPerLevel = val
	}
	if val := getEnvInt("HAPPY_CADENCE"); val > 0 {
		cfg.HappyCadence = val
	}
	if val := getEnvInt("DEFAULT_MAX_ENERGY"); val > 0 {
		cfg.DefaultMaxEnergy = val
	}
	if val := getEnvInt("ASSIGN_ENERGY_COST"); val > 0 {
		cfg.AssignEnergyCost = val
	}
	if val := getEnvInt("ENERGY_REGEN"); val > 0 {
		cfg.EnergyRegen = val
	}
	if val := getEnvInt("GOLD_CAP"); val > 0 {
		cfg.GoldCap = val
	}
	if val := getEnvInt("GEMS_CAP"); val > 0 {
		cfg.GemsCap = val
	}
	if val := getEnvInt("SOULS_CAP"); val > 0 {
		cfg.SoulsCap = val
	}
	if val := getEnvInt("STARTING_GOLD"); val > 0 {
		cfg.StartingGold = val
	}
	if val := getEnvInt("DAILY_QUEST_COUNT"); val > 0 {
		cfg.DailyQuestCount = val
	}
	if val := getEnvInt("WEATHER_INTERVAL_MINUTES"); val > 0 {
		cfg.WeatherIntervalMinutes = val
	}
	if val := getEnvInt("MAX_NOTIFICATIONS"); val > 0 {
		cfg.MaxNotifications = val
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
