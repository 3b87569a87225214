package quest

import (
	"github.com/Kytol/skeleton-crew/internal/task"
)

// DefaultChains returns the built-in quest chains.
func DefaultChains() []Chain {
	return []Chain{
		{
			ID:          "chain-apprentice",
			Name:        "Apprentice Overseer",
			Description: "Learn the ropes of goblin management.",
			Steps: []Step{
				{
					ID:          "ap-1",
					Title:       "First Blood",
					Description: "Complete your first task",
					Requirement: StepRequirement{Type: StepCompleteTask, Target: 1},
					Reward:      StepReward{Gold: 50},
				},
				{
					ID:          "ap-2",
					Title:       "Pocket Money",
					Description: "Earn 500 gold",
					Requirement: StepRequirement{Type: StepEarnGold, Target: 500},
					Reward:      StepReward{Gold: 100},
				},
				{
					ID:          "ap-3",
					Title:       "Digging In",
					Description: "Complete 3 mining tasks",
					Requirement: StepRequirement{Type: StepCategoryTasks, Target: 3, Category: task.CategoryMining},
					Reward:      StepReward{Gold: 150},
				},
			},
			FinalReward: StepReward{Gold: 500},
		},
		{
			ID:          "chain-warlord",
			Name:        "Path of the Warlord",
			Description: "Forge your crew into a fighting force.",
			Steps: []Step{
				{
					ID:          "wl-1",
					Title:       "Blooded",
					Description: "Complete 5 combat tasks",
					Requirement: StepRequirement{Type: StepCategoryTasks, Target: 5, Category: task.CategoryCombat},
					Reward:      StepReward{Gold: 200},
				},
				{
					ID:          "wl-2",
					Title:       "War Chest",
					Description: "Earn 2000 gold",
					Requirement: StepRequirement{Type: StepEarnGold, Target: 2000},
					Reward:      StepReward{Gold: 300},
				},
				{
					ID:          "wl-3",
					Title:       "Veteran",
					Description: "Raise a goblin to level 5",
					Requirement: StepRequirement{Type: StepReachLevel, Target: 5},
					Reward:      StepReward{Gold: 400},
				},
			},
			FinalReward: StepReward{Gold: 1000},
		},
	}
}
