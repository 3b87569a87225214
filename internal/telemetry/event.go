package telemetry

import "time"

type EventType string

const (
	EventTaskCreated     EventType = "task_created"
	EventTaskAssigned    EventType = "task_assigned"
	EventTaskCompleted   EventType = "task_completed"
	EventGoblinRecruited EventType = "goblin_recruited"
	EventGoblinLevelUp   EventType = "goblin_level_up"
	EventGoblinRested    EventType = "goblin_rested"
	EventQuestCompleted  EventType = "quest_completed"
	EventChainStepDone   EventType = "chain_step_done"
	EventMissionDeployed EventType = "mission_deployed"
	EventMissionResolved EventType = "mission_resolved"
	EventTradeCreated    EventType = "trade_created"
	EventTradeAccepted   EventType = "trade_accepted"
	EventWeatherChanged  EventType = "weather_changed"
	EventItemPurchased   EventType = "item_purchased"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
