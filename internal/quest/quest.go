package quest

import (
	"github.com/Kytol/skeleton-crew/internal/task"
)

// Kind categorizes daily quests by the event they track.
type Kind string

const (
	KindCompleteTasks Kind = "complete_tasks"
	KindEarnGold      Kind = "earn_gold"
	KindCategoryFocus Kind = "category_focus"
)

// Quest is a daily objective with a target count. Progress only ever grows
// and is clamped to the target; the completed flag is a one-way latch and
// the reward is granted exactly once when it flips.
type Quest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Kind        Kind          `json:"kind"`
	Category    task.Category `json:"category,omitempty"`
	Target      int           `json:"target"`
	Progress    int           `json:"progress"`
	Reward      int           `json:"reward"`
	XPReward    int           `json:"xp_reward"`
	Completed   bool          `json:"completed"`
	Icon        string        `json:"icon"`
}

// EventKind is the kind of progress event being routed to quests.
type EventKind string

const (
	EventTask     EventKind = "task"
	EventGold     EventKind = "gold"
	EventCategory EventKind = "category"
)

// Event is a single progress delta.
type Event struct {
	Kind     EventKind
	Amount   int
	Category task.Category
}

// accepts reports whether the quest tracks this event.
func (q *Quest) accepts(e Event) bool {
	switch e.Kind {
	case EventTask:
		return q.Kind == KindCompleteTasks
	case EventGold:
		return q.Kind == KindEarnGold
	case EventCategory:
		return q.Kind == KindCategoryFocus && q.Category == e.Category
	}
	return false
}

// apply adds progress and reports whether the quest just completed.
// Completed quests ignore further progress.
func (q *Quest) apply(e Event) (justCompleted bool) {
	if q.Completed || !q.accepts(e) {
		return false
	}
	q.Progress += e.Amount
	if q.Progress >= q.Target {
		q.Progress = q.Target
		q.Completed = true
		return true
	}
	return false
}
