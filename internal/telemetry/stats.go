package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	TaskCompletions int               `json:"task_completions"`
	MissionsRun     int               `json:"missions_run"`
	MissionWins     int               `json:"mission_wins"`
	MissionWinRate  float64           `json:"mission_win_rate"`
	QuestsCompleted int               `json:"quests_completed"`
	GoldEarned      int               `json:"gold_earned"`
	GoldByCategory  map[string]int    `json:"gold_by_category"`
	WeatherChanges  int               `json:"weather_changes"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:         since.Format("2006-01-02"),
		EventCounts:    make(map[EventType]int),
		GoldByCategory: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTaskCompleted:
			stats.TaskCompletions++
			if gold, ok := metadata["gold"].(float64); ok {
				stats.GoldEarned += int(gold)
				if category, ok := metadata["category"].(string); ok {
					stats.GoldByCategory[category] += int(gold)
				}
			}
		case EventMissionResolved:
			stats.MissionsRun++
			if success, ok := metadata["success"].(bool); ok && success {
				stats.MissionWins++
			}
			if gold, ok := metadata["gold"].(float64); ok {
				stats.GoldEarned += int(gold)
			}
		case EventQuestCompleted:
			stats.QuestsCompleted++
			if gold, ok := metadata["gold"].(float64); ok {
				stats.GoldEarned += int(gold)
			}
		case EventWeatherChanged:
			stats.WeatherChanges++
		}
	}

	if stats.MissionsRun > 0 {
		stats.MissionWinRate = float64(stats.MissionWins) / float64(stats.MissionsRun)
	}

	return stats, nil
}
