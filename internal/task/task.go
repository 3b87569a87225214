package task

import (
	"time"

	"github.com/google/uuid"
)

// Category buckets tasks by the kind of work involved. Goblins with a
// matching specialty earn bonus rewards.
type Category string

const (
	CategoryMining      Category = "mining"
	CategoryCrafting    Category = "crafting"
	CategoryGathering   Category = "gathering"
	CategoryCombat      Category = "combat"
	CategoryExploration Category = "exploration"
)

// Categories lists all task categories in a stable order.
var Categories = []Category{
	CategoryMining,
	CategoryCrafting,
	CategoryGathering,
	CategoryCombat,
	CategoryExploration,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank gives the sort order for a priority: urgent first, low last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Reward      int        `json:"reward"`
	XPReward    int        `json:"xp_reward"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	AssignedGoblin string `json:"assigned_goblin,omitempty"`
	Status         Status `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask builds a pending task. The XP reward derives from the gold
// reward, at half.
func NewTask(title, description string, category Category, reward int, priority Priority, deadline *time.Time) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		Reward:      reward,
		XPReward:    reward / 2,
		Priority:    priority,
		Deadline:    deadline,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
}

// Overdue reports whether the task has blown past its deadline.
// Completed tasks are never overdue.
func (t *Task) Overdue(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusCompleted {
		return false
	}
	return now.After(*t.Deadline)
}

// OnTime reports whether completing now would count as on time.
func (t *Task) OnTime(now time.Time) bool {
	return t.Deadline == nil || !now.After(*t.Deadline)
}

// Assign pairs the task with a goblin and moves it to in-progress.
// Only pending tasks accept assignment.
func (t *Task) Assign(goblinID string, now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}
	t.AssignedGoblin = goblinID
	t.Status = StatusInProgress
	t.StartedAt = &now
	return true
}

// Complete marks the task completed. Completion is terminal; a completed
// task never changes again.
func (t *Task) Complete(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	return true
}

// Less orders tasks by priority rank, then earliest deadline. Tasks with a
// deadline always sort before tasks without one.
func Less(a, b Task) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	switch {
	case a.Deadline != nil && b.Deadline != nil:
		return a.Deadline.Before(*b.Deadline)
	case a.Deadline != nil:
		return true
	case b.Deadline != nil:
		return false
	}
	return false
}
