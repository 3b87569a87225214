// Package view derives filtered, sorted snapshots from the stores. The
// pipeline order is fixed: search, categorical filters, numeric ranges,
// status filter, sort.
package view

import (
	"sort"
	"strings"

	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/task"
)

// IntRange is an inclusive numeric bound. The zero value (Max 0) means
// unbounded.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r IntRange) contains(v int) bool {
	if r.Max == 0 && r.Min == 0 {
		return true
	}
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v <= r.Max
}

type TaskSort string

const (
	TaskSortDefault      TaskSort = "default"
	TaskSortRewardDesc   TaskSort = "reward_desc"
	TaskSortNewest       TaskSort = "newest"
	TaskSortDeadlineSoon TaskSort = "deadline"
)

// TaskQuery selects and orders tasks. Empty slices mean no filter.
type TaskQuery struct {
	Search     string
	Categories []task.Category
	Priorities []task.Priority
	Reward     IntRange
	Status     task.Status
	Sort       TaskSort
}

// Tasks runs the pipeline over a snapshot.
func Tasks(items []task.Task, q TaskQuery) []task.Task {
	out := append([]task.Task(nil), items...)

	if query := strings.ToLower(strings.TrimSpace(q.Search)); query != "" {
		out = filterTasks(out, func(t task.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), query) ||
				strings.Contains(strings.ToLower(t.Description), query) ||
				strings.Contains(strings.ToLower(string(t.Category)), query)
		})
	}
	if len(q.Categories) > 0 {
		out = filterTasks(out, func(t task.Task) bool {
			return containsCategory(q.Categories, t.Category)
		})
	}
	if len(q.Priorities) > 0 {
		out = filterTasks(out, func(t task.Task) bool {
			for _, p := range q.Priorities {
				if t.Priority == p {
					return true
				}
			}
			return false
		})
	}
	out = filterTasks(out, func(t task.Task) bool { return q.Reward.contains(t.Reward) })
	if q.Status != "" {
		out = filterTasks(out, func(t task.Task) bool { return t.Status == q.Status })
	}

	switch q.Sort {
	case TaskSortRewardDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reward > out[j].Reward })
	case TaskSortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case TaskSortDeadlineSoon:
		sort.SliceStable(out, func(i, j int) bool { return deadlineBefore(out[i], out[j]) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return task.Less(out[i], out[j]) })
	}
	return out
}

func deadlineBefore(a, b task.Task) bool {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return false
	case a.Deadline == nil:
		return false
	case b.Deadline == nil:
		return true
	default:
		return a.Deadline.Before(*b.Deadline)
	}
}

func filterTasks(items []task.Task, keep func(task.Task) bool) []task.Task {
	out := items[:0]
	for _, t := range items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func containsCategory(cats []task.Category, c task.Category) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}

type GoblinSort string

const (
	GoblinSortLevelAsc   GoblinSort = "level_asc"
	GoblinSortLevelDesc  GoblinSort = "level_desc"
	GoblinSortCostAsc    GoblinSort = "cost_asc"
	GoblinSortCostDesc   GoblinSort = "cost_desc"
	GoblinSortRatingDesc GoblinSort = "rating_desc"
	GoblinSortNameAsc    GoblinSort = "name_asc"
)

// GoblinQuery selects and orders roster members. Empty slices mean no
// filter.
type GoblinQuery struct {
	Search  string
	Races   []goblin.Race
	Classes []goblin.Class
	Level   IntRange
	Cost    IntRange
	Status  goblin.Status
	Sort    GoblinSort
}

// Goblins runs the pipeline over a roster snapshot.
func Goblins(items []goblin.Goblin, q GoblinQuery) []goblin.Goblin {
	out := append([]goblin.Goblin(nil), items...)

	if query := strings.ToLower(strings.TrimSpace(q.Search)); query != "" {
		out = filterGoblins(out, func(g goblin.Goblin) bool {
			return strings.Contains(strings.ToLower(g.Name), query) ||
				strings.Contains(strings.ToLower(string(g.Race)), query) ||
				strings.Contains(strings.ToLower(string(g.Class)), query) ||
				strings.Contains(strings.ToLower(string(g.Specialty)), query)
		})
	}
	if len(q.Races) > 0 {
		out = filterGoblins(out, func(g goblin.Goblin) bool {
			for _, r := range q.Races {
				if g.Race == r {
					return true
				}
			}
			return false
		})
	}
	if len(q.Classes) > 0 {
		out = filterGoblins(out, func(g goblin.Goblin) bool {
			for _, c := range q.Classes {
				if g.Class == c {
					return true
				}
			}
			return false
		})
	}
	out = filterGoblins(out, func(g goblin.Goblin) bool { return q.Level.contains(g.Level) })
	out = filterGoblins(out, func(g goblin.Goblin) bool { return q.Cost.contains(g.HireCost) })
	if q.Status != "" {
		out = filterGoblins(out, func(g goblin.Goblin) bool { return g.Status == q.Status })
	}

	switch q.Sort {
	case GoblinSortLevelAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	case GoblinSortLevelDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Level > out[j].Level })
	case GoblinSortCostAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].HireCost < out[j].HireCost })
	case GoblinSortCostDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].HireCost > out[j].HireCost })
	case GoblinSortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return rating(out[i]) > rating(out[j]) })
	case GoblinSortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

// rating is a derived track record: missions weigh heavier than tasks.
func rating(g goblin.Goblin) int {
	return g.TasksCompleted + 10*g.MissionsCompleted
}

func filterGoblins(items []goblin.Goblin, keep func(goblin.Goblin) bool) []goblin.Goblin {
	out := items[:0]
	for _, g := range items {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}
