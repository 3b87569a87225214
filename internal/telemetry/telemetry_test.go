package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndFilterEvents(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	repo.SetNowFunc(func() time.Time { return current })

	require.NoError(t, repo.RecordEvent(EventTaskCreated, EventMetadata{"task_id": "t1"}))
	current = base.Add(time.Hour)
	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"task_id": "t1", "gold": 100}))
	current = base.Add(2 * time.Hour)
	require.NoError(t, repo.RecordEvent(EventWeatherChanged, EventMetadata{"weather": "stormy"}))

	all, err := repo.GetEvents(base, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	// Time filter drops events before the cutoff.
	recent, err := repo.GetEvents(base.Add(30*time.Minute), nil)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	// Type filter.
	weather, err := repo.GetEvents(base, []EventType{EventWeatherChanged})
	require.NoError(t, err)
	require.Len(t, weather, 1)
	assert.Equal(t, EventWeatherChanged, weather[0].Type)

	require.NoError(t, repo.Clear())
	cleared, err := repo.GetEvents(base, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.SetNowFunc(func() time.Time { return base })

	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"gold": 100, "category": "mining"}))
	require.NoError(t, repo.RecordEvent(EventTaskCompleted, EventMetadata{"gold": 50, "category": "combat"}))
	require.NoError(t, repo.RecordEvent(EventMissionResolved, EventMetadata{"success": true, "gold": 500}))
	require.NoError(t, repo.RecordEvent(EventMissionResolved, EventMetadata{"success": false, "gold": 50}))
	require.NoError(t, repo.RecordEvent(EventQuestCompleted, EventMetadata{"gold": 100}))
	require.NoError(t, repo.RecordEvent(EventWeatherChanged, EventMetadata{"weather": "foggy"}))

	events, err := repo.GetEvents(base, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, base)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TaskCompletions)
	assert.Equal(t, 2, stats.MissionsRun)
	assert.Equal(t, 1, stats.MissionWins)
	assert.InDelta(t, 0.5, stats.MissionWinRate, 1e-9)
	assert.Equal(t, 1, stats.QuestsCompleted)
	assert.Equal(t, 100+50+500+50+100, stats.GoldEarned)
	assert.Equal(t, 100, stats.GoldByCategory["mining"])
	assert.Equal(t, 50, stats.GoldByCategory["combat"])
	assert.Equal(t, 1, stats.WeatherChanges)
	assert.Equal(t, 2, stats.EventCounts[EventTaskCompleted])
}

func TestCalculateStatsSkipsBadMetadata(t *testing.T) {
	events := []Event{
		{ID: 1, Type: EventTaskCompleted, Metadata: "not json"},
		{ID: 2, Type: EventTaskCompleted, Metadata: `{"gold": 75}`},
	}

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TaskCompletions, "unparseable metadata is skipped")
	assert.Equal(t, 75, stats.GoldEarned)
	assert.Equal(t, 2, stats.EventCounts[EventTaskCompleted])
}
