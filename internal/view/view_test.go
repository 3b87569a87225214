package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/task"
)

func sampleTasks() []task.Task {
	soon := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := soon.Add(48 * time.Hour)
	return []task.Task{
		{ID: "t1", Title: "Dig the shaft", Category: task.CategoryMining, Reward: 100, Priority: task.PriorityLow, Status: task.StatusPending, CreatedAt: soon.Add(-3 * time.Hour)},
		{ID: "t2", Title: "Forge daggers", Category: task.CategoryCrafting, Reward: 300, Priority: task.PriorityUrgent, Deadline: &later, Status: task.StatusPending, CreatedAt: soon.Add(-2 * time.Hour)},
		{ID: "t3", Title: "Raid the cellar", Category: task.CategoryCombat, Reward: 200, Priority: task.PriorityUrgent, Deadline: &soon, Status: task.StatusPending, CreatedAt: soon.Add(-1 * time.Hour)},
		{ID: "t4", Title: "Scout the marsh", Category: task.CategoryExploration, Reward: 50, Priority: task.PriorityHigh, Status: task.StatusCompleted, CreatedAt: soon},
	}
}

func idsOf(tasks []task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTasksSearch(t *testing.T) {
	got := Tasks(sampleTasks(), TaskQuery{Search: "raid"})
	assert.Equal(t, []string{"t3"}, idsOf(got))

	// Category text is searchable too.
	got = Tasks(sampleTasks(), TaskQuery{Search: "mining"})
	assert.Equal(t, []string{"t1"}, idsOf(got))
}

func TestTasksFiltersCombine(t *testing.T) {
	got := Tasks(sampleTasks(), TaskQuery{
		Priorities: []task.Priority{task.PriorityUrgent},
		Reward:     IntRange{Min: 250},
		Status:     task.StatusPending,
	})
	assert.Equal(t, []string{"t2"}, idsOf(got))

	got = Tasks(sampleTasks(), TaskQuery{
		Categories: []task.Category{task.CategoryMining, task.CategoryCombat},
	})
	assert.ElementsMatch(t, []string{"t1", "t3"}, idsOf(got))
}

func TestTasksDefaultSort(t *testing.T) {
	// Urgent with the earliest deadline first, then urgent with a later
	// deadline, then the rest by priority.
	got := Tasks(sampleTasks(), TaskQuery{})
	require.Len(t, got, 4)
	assert.Equal(t, []string{"t3", "t2", "t4", "t1"}, idsOf(got))
}

func TestTasksSortModes(t *testing.T) {
	got := Tasks(sampleTasks(), TaskQuery{Sort: TaskSortRewardDesc})
	assert.Equal(t, []string{"t2", "t3", "t1", "t4"}, idsOf(got))

	got = Tasks(sampleTasks(), TaskQuery{Sort: TaskSortNewest})
	assert.Equal(t, []string{"t4", "t3", "t2", "t1"}, idsOf(got))

	// Deadline sort puts deadline-less tasks last.
	got = Tasks(sampleTasks(), TaskQuery{Sort: TaskSortDeadlineSoon})
	assert.Equal(t, "t3", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
}

func TestIntRangeZeroValueIsUnbounded(t *testing.T) {
	var r IntRange
	assert.True(t, r.contains(0))
	assert.True(t, r.contains(1000000))

	r = IntRange{Min: 10}
	assert.False(t, r.contains(9))
	assert.True(t, r.contains(10000), "min-only range has no upper bound")

	r = IntRange{Min: 10, Max: 20}
	assert.True(t, r.contains(20))
	assert.False(t, r.contains(21))
}

func sampleGoblins() []goblin.Goblin {
	return []goblin.Goblin{
		{ID: "g1", Name: "Gruk", Race: goblin.RaceOrc, Class: goblin.ClassWarrior, Level: 3, HireCost: 1000, TasksCompleted: 5, MissionsCompleted: 2, Status: goblin.StatusAvailable},
		{ID: "g2", Name: "Snix", Race: goblin.RaceGoblin, Class: goblin.ClassAssassin, Level: 7, HireCost: 2500, TasksCompleted: 30, Status: goblin.StatusWorking},
		{ID: "g3", Name: "Blix", Race: goblin.RaceTroll, Class: goblin.ClassHealer, Level: 5, HireCost: 500, TasksCompleted: 1, MissionsCompleted: 5, Status: goblin.StatusAvailable},
	}
}

func goblinIDs(gs []goblin.Goblin) []string {
	out := make([]string, 0, len(gs))
	for _, g := range gs {
		out = append(out, g.ID)
	}
	return out
}

func TestGoblinsFilters(t *testing.T) {
	got := Goblins(sampleGoblins(), GoblinQuery{Races: []goblin.Race{goblin.RaceOrc, goblin.RaceTroll}})
	assert.ElementsMatch(t, []string{"g1", "g3"}, goblinIDs(got))

	got = Goblins(sampleGoblins(), GoblinQuery{Status: goblin.StatusAvailable, Level: IntRange{Min: 4}})
	assert.Equal(t, []string{"g3"}, goblinIDs(got))

	got = Goblins(sampleGoblins(), GoblinQuery{Search: "assassin"})
	assert.Equal(t, []string{"g2"}, goblinIDs(got))
}

func TestGoblinsSortModes(t *testing.T) {
	got := Goblins(sampleGoblins(), GoblinQuery{Sort: GoblinSortLevelDesc})
	assert.Equal(t, []string{"g2", "g3", "g1"}, goblinIDs(got))

	got = Goblins(sampleGoblins(), GoblinQuery{Sort: GoblinSortCostAsc})
	assert.Equal(t, []string{"g3", "g1", "g2"}, goblinIDs(got))

	// Rating weighs missions at 10x tasks: g3=51, g2=30, g1=25.
	got = Goblins(sampleGoblins(), GoblinQuery{Sort: GoblinSortRatingDesc})
	assert.Equal(t, []string{"g3", "g2", "g1"}, goblinIDs(got))

	got = Goblins(sampleGoblins(), GoblinQuery{Sort: GoblinSortNameAsc})
	assert.Equal(t, []string{"g3", "g1", "g2"}, goblinIDs(got))
}
