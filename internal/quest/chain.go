package quest

import (
	"github.com/Kytol/skeleton-crew/internal/task"
)

// StepRequirementType is the event a chain step tracks.
type StepRequirementType string

const (
	StepCompleteTask  StepRequirementType = "complete_task"
	StepEarnGold      StepRequirementType = "earn_gold"
	StepReachLevel    StepRequirementType = "reach_level"
	StepCategoryTasks StepRequirementType = "category_tasks"
)

type StepRequirement struct {
	Type     StepRequirementType `json:"type"`
	Target   int                 `json:"target"`
	Category task.Category       `json:"category,omitempty"`
}

type StepReward struct {
	Gold int `json:"gold"`
}

type Step struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Requirement StepRequirement `json:"requirement"`
	Reward      StepReward      `json:"reward"`
	Progress    int             `json:"progress"`
	Completed   bool            `json:"completed"`
}

// Chain is an ordered quest sequence. Only the step at CurrentStep accepts
// progress; finishing every step latches the chain and grants the final
// bonus on top of the per-step rewards.
type Chain struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Steps       []Step     `json:"steps"`
	CurrentStep int        `json:"current_step"`
	Completed   bool       `json:"completed"`
	FinalReward StepReward `json:"final_reward"`
}

// ChainEvent is a progress delta routed to quest chains.
type ChainEvent struct {
	Type     StepRequirementType
	Amount   int
	Category task.Category
}

// apply routes the event to the current step. It returns the steps that
// just completed and whether the whole chain just completed. After a step
// completes, the chain scans forward for the first incomplete step; a
// later step may already be satisfiable, so the scan starts from the top.
func (c *Chain) apply(e ChainEvent) (completedSteps []Step, chainCompleted bool) {
	if c.Completed || c.CurrentStep >= len(c.Steps) {
		return nil, false
	}

	step := &c.Steps[c.CurrentStep]
	if step.Completed || step.Requirement.Type != e.Type {
		return nil, false
	}
	if e.Type == StepCategoryTasks && step.Requirement.Category != e.Category {
		return nil, false
	}

	if e.Type == StepReachLevel {
		// Levels are absolute, not deltas; keep the highest reported.
		if e.Amount > step.Progress {
			step.Progress = e.Amount
		}
	} else {
		step.Progress += e.Amount
	}
	if step.Progress >= step.Requirement.Target {
		step.Progress = step.Requirement.Target
		step.Completed = true
		completedSteps = append(completedSteps, *step)
	}

	next := -1
	for i := range c.Steps {
		if !c.Steps[i].Completed {
			next = i
			break
		}
	}
	if next == -1 {
		c.CurrentStep = len(c.Steps)
		c.Completed = true
		return completedSteps, true
	}
	c.CurrentStep = next
	return completedSteps, false
}
