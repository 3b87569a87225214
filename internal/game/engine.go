package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/mission"
	"github.com/Kytol/skeleton-crew/internal/notify"
	"github.com/Kytol/skeleton-crew/internal/progression"
	"github.com/Kytol/skeleton-crew/internal/quest"
	"github.com/Kytol/skeleton-crew/internal/recruit"
	"github.com/Kytol/skeleton-crew/internal/shop"
	"github.com/Kytol/skeleton-crew/internal/social"
	"github.com/Kytol/skeleton-crew/internal/squad"
	"github.com/Kytol/skeleton-crew/internal/task"
	"github.com/Kytol/skeleton-crew/internal/telemetry"
	"github.com/Kytol/skeleton-crew/internal/weather"
)

// Engine composes the stores and services and orchestrates the game loop.
// All mutation entry points fail soft: expected conditions (insufficient
// funds, missing entity, bad transition) come back as ok=false, never as
// errors.
type Engine struct {
	Balance config.Balance

	Tasks         task.Repository
	Goblins       goblin.Repository
	Progression   *progression.Service
	Economy       *economy.Store
	Quests        *quest.Service
	Missions      *mission.Service
	Squad         *squad.Store
	Weather       *weather.Store
	Recruits      *recruit.Service
	Board         *recruit.Board
	Social        *social.Store
	Shop          *shop.Store
	Notifications *notify.Center
	Telemetry     telemetry.Repository
	Clock         Clock
	Logger        *log.Logger
}

// NewEngine wires a fully seeded engine from balance config.
func NewEngine(balance config.Balance, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}

	goblins := goblin.NewMemoryRepo()
	tasks := task.NewMemoryRepo()
	notifications := notify.NewCenter(balance.MaxNotifications)
	eco := economy.NewStore(balance)
	quests := quest.NewService(balance, eco, notifications)
	missions := mission.NewService(goblins, eco, notifications)

	e := &Engine{
		Balance:       balance,
		Tasks:         tasks,
		Goblins:       goblins,
		Progression:   progression.NewService(goblins, balance),
		Economy:       eco,
		Quests:        quests,
		Missions:      missions,
		Squad:         squad.NewStore(goblins),
		Weather:       weather.NewStore(),
		Recruits:      recruit.NewService(goblins, eco, notifications, balance.DefaultMaxEnergy, balance.BaseXPThreshold),
		Board:         recruit.NewBoard(),
		Social:        social.NewStore(),
		Shop:          shop.NewStore(eco, notifications),
		Notifications: notifications,
		Telemetry:     telemetry.NewMemoryRepository(),
		Clock:         RealClock{},
		Logger:        logger,
	}

	ctx := context.Background()
	quests.SeedChains(ctx, quest.DefaultChains())
	if err := goblins.Seed(ctx, e.startingRoster()); err != nil {
		logger.Printf("seed roster: %v", err)
	}
	return e
}

func (e *Engine) startingRoster() []goblin.Goblin {
	max := e.Balance.DefaultMaxEnergy
	xp := e.Balance.BaseXPThreshold
	return []goblin.Goblin{
		goblin.New("Gruk", "👺", task.CategoryMining, max, xp),
		goblin.New("Snix", "👹", task.CategoryCrafting, max, xp),
		goblin.New("Blix", "🧌", task.CategoryGathering, max, xp),
	}
}

// CreateTask adds a pending task to the board.
func (e *Engine) CreateTask(ctx context.Context, title, description string, category task.Category, reward int, priority task.Priority, deadline *time.Time) (task.Task, error) {
	t, err := e.Tasks.Create(ctx, task.NewTask(title, description, category, reward, priority, deadline))
	if err != nil {
		return task.Task{}, err
	}
	e.record(telemetry.EventTaskCreated, telemetry.EventMetadata{
		"task_id": t.ID, "category": string(t.Category), "reward": t.Reward,
	})
	return t, nil
}

// AssignTask pairs a pending task with an available goblin, spending the
// assignment energy cost. Fails soft when the goblin lacks energy, is busy
// or either entity is missing.
func (e *Engine) AssignTask(ctx context.Context, taskID, goblinID string) (bool, error) {
	t, ok, err := e.Tasks.Get(ctx, taskID)
	if err != nil || !ok {
		return false, err
	}
	g, ok, err := e.Goblins.Get(ctx, goblinID)
	if err != nil || !ok {
		return false, err
	}
	if g.Status != goblin.StatusAvailable {
		return false, nil
	}
	if !g.SpendEnergy(e.Balance.AssignEnergyCost) {
		return false, nil
	}
	if !t.Assign(goblinID, e.Clock.Now()) {
		return false, nil
	}

	g.Status = goblin.StatusWorking
	if _, err := e.Goblins.Update(ctx, g); err != nil {
		return false, err
	}
	if _, err := e.Tasks.Update(ctx, t); err != nil {
		return false, err
	}
	e.record(telemetry.EventTaskAssigned, telemetry.EventMetadata{
		"task_id": t.ID, "goblin_id": g.ID,
	})
	return true, nil
}

// CompleteTask settles a task: reward math under the current weather and the
// goblin's equipment, gold credited to the economy, quest and chain progress,
// notifications and telemetry. Completing an unassigned or already-completed
// task is a silent no-op.
func (e *Engine) CompleteTask(ctx context.Context, taskID string) (progression.Outcome, bool, error) {
	t, ok, err := e.Tasks.Get(ctx, taskID)
	if err != nil || !ok {
		return progression.Outcome{}, false, err
	}
	if t.AssignedGoblin == "" {
		return progression.Outcome{}, false, nil
	}

	now := e.Clock.Now()
	onTime := t.OnTime(now)
	if !t.Complete(now) {
		return progression.Outcome{}, false, nil
	}

	before, _, err := e.Goblins.Get(ctx, t.AssignedGoblin)
	if err != nil {
		return progression.Outcome{}, false, err
	}

	equip := e.Shop.EquipmentBonuses(ctx, t.AssignedGoblin, t.Category)
	goldMult, xpMult := e.Weather.Multipliers(ctx, t.Category, equip.Gold, equip.XP)
	mods := progression.Modifiers{Gold: goldMult, XP: xpMult}

	g, out, ok, err := e.Progression.ApplyCompletion(ctx, t, onTime, mods)
	if err != nil {
		return progression.Outcome{}, false, err
	}
	if !ok {
		// Assigned goblin vanished; the completion grants nothing but the
		// task still closes.
		if _, err := e.Tasks.Update(ctx, t); err != nil {
			return progression.Outcome{}, false, err
		}
		return progression.Outcome{}, false, nil
	}

	if _, err := e.Tasks.Update(ctx, t); err != nil {
		return progression.Outcome{}, false, err
	}

	e.Economy.Earn(ctx, economy.CurrencyGold, out.Gold, "task: "+t.Title)

	e.Quests.Apply(ctx, quest.Event{Kind: quest.EventTask, Amount: 1})
	e.Quests.Apply(ctx, quest.Event{Kind: quest.EventCategory, Category: t.Category, Amount: 1})
	e.Quests.Apply(ctx, quest.Event{Kind: quest.EventGold, Amount: out.Gold})
	e.Quests.ApplyChain(ctx, quest.ChainEvent{Type: quest.StepCompleteTask, Amount: 1})
	e.Quests.ApplyChain(ctx, quest.ChainEvent{Type: quest.StepCategoryTasks, Category: t.Category, Amount: 1})
	e.Quests.ApplyChain(ctx, quest.ChainEvent{Type: quest.StepEarnGold, Amount: out.Gold})
	if g.Level > before.Level {
		e.Quests.ApplyChain(ctx, quest.ChainEvent{Type: quest.StepReachLevel, Amount: g.Level})
		e.Notifications.Add(ctx, notify.TypeLevelUp, "Level Up!",
			fmt.Sprintf("%s reached level %d!", g.Name, g.Level), "🎉")
		e.record(telemetry.EventGoblinLevelUp, telemetry.EventMetadata{
			"goblin_id": g.ID, "level": g.Level,
		})
	}

	e.record(telemetry.EventTaskCompleted, telemetry.EventMetadata{
		"task_id": t.ID, "goblin_id": g.ID, "category": string(t.Category),
		"gold": out.Gold, "xp": out.XP, "on_time": onTime,
	})
	e.syncSquadPower(ctx)
	return out, true, nil
}

// RestGoblin fully restores a goblin's energy and settles its mood.
func (e *Engine) RestGoblin(ctx context.Context, goblinID string) bool {
	g, ok, err := e.Goblins.Get(ctx, goblinID)
	if err != nil || !ok {
		return false
	}
	if g.Status != goblin.StatusAvailable {
		return false
	}
	g.Rest()
	if _, err := e.Goblins.Update(ctx, g); err != nil {
		return false
	}
	e.record(telemetry.EventGoblinRested, telemetry.EventMetadata{"goblin_id": g.ID})
	return true
}

// RecruitGoblin purchases a recruitable template into the roster.
func (e *Engine) RecruitGoblin(ctx context.Context, templateID string) (goblin.Goblin, bool) {
	g, ok := e.Recruits.Recruit(ctx, templateID)
	if !ok {
		return goblin.Goblin{}, false
	}
	e.record(telemetry.EventGoblinRecruited, telemetry.EventMetadata{
		"goblin_id": g.ID, "name": g.Name, "cost": g.HireCost,
	})
	e.syncSquadPower(ctx)
	return g, true
}

// DeployMission sends the current squad on a mission and schedules its
// resolution at the mission's end time.
func (e *Engine) DeployMission(ctx context.Context, missionID string) (mission.ActiveMission, bool, error) {
	memberIDs := e.Squad.MemberIDs(ctx)
	am, ok, err := e.Missions.Deploy(ctx, missionID, memberIDs)
	if err != nil || !ok {
		return mission.ActiveMission{}, false, err
	}

	e.record(telemetry.EventMissionDeployed, telemetry.EventMetadata{
		"mission_id": am.MissionID, "active_id": am.ID,
		"squad_size": len(am.MemberIDs), "probability": am.SuccessProbability,
	})

	delay := am.EndsAt.Sub(e.Clock.Now())
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, func() {
		if _, _, err := e.ResolveMission(context.Background(), am.ID); err != nil {
			e.Logger.Printf("resolve mission %s: %v", am.ID, err)
		}
	})
	return am, true, nil
}

// ResolveMission settles an active mission. Safe to call more than once;
// duplicates no-op on the resolved guard.
func (e *Engine) ResolveMission(ctx context.Context, activeID string) (mission.Result, bool, error) {
	res, ok, err := e.Missions.Resolve(ctx, activeID)
	if err != nil || !ok {
		return mission.Result{}, ok, err
	}
	e.record(telemetry.EventMissionResolved, telemetry.EventMetadata{
		"mission_id": res.MissionID, "success": res.Success,
		"gold": res.GoldEarned, "casualties": len(res.Casualties),
	})
	e.syncSquadPower(ctx)
	return res, true, nil
}

// UseConsumable spends one charge of an owned consumable on a goblin.
func (e *Engine) UseConsumable(ctx context.Context, itemID, goblinID string) bool {
	return e.Shop.UseConsumable(ctx, itemID, goblinID, e)
}

// BuyItem purchases a shop item.
func (e *Engine) BuyItem(ctx context.Context, itemID string) bool {
	if !e.Shop.Buy(ctx, itemID) {
		return false
	}
	e.record(telemetry.EventItemPurchased, telemetry.EventMetadata{"item_id": itemID})
	return true
}

// RefreshDailyQuests rolls new dailies if the calendar day changed.
func (e *Engine) RefreshDailyQuests(ctx context.Context) bool {
	return e.Quests.Refresh(ctx)
}

// RollWeather re-draws the weather, notifying on change. An equal draw is
// silent.
func (e *Engine) RollWeather(ctx context.Context) (weather.Weather, bool) {
	w, changed := e.Weather.Roll(ctx)
	if changed {
		e.Notifications.Add(ctx, notify.TypeWeatherChange, "Weather Changed!",
			w.Name+": "+w.Description, w.Icon)
		e.record(telemetry.EventWeatherChanged, telemetry.EventMetadata{"kind": string(w.Kind)})
	}
	return w, changed
}

// RegenEnergy ticks passive energy recovery for every idle goblin.
func (e *Engine) RegenEnergy(ctx context.Context) error {
	gs, err := e.Goblins.List(ctx)
	if err != nil {
		return err
	}
	changed := gs[:0]
	for _, g := range gs {
		if g.Energy >= g.MaxEnergy {
			continue
		}
		g.Regen(e.Balance.EnergyRegen)
		changed = append(changed, g)
	}
	if len(changed) == 0 {
		return nil
	}
	return e.Goblins.UpdateMany(ctx, changed)
}

// syncSquadPower recomputes the local player's squad power for the social
// leaderboard.
func (e *Engine) syncSquadPower(ctx context.Context) {
	members, err := e.Squad.Members(ctx)
	if err != nil {
		return
	}
	power := 0
	maxLevel := 1
	for _, m := range members {
		power += m.Goblin.Level*100 + m.Goblin.TotalSkillXP()/10
		if m.Goblin.Level > maxLevel {
			maxLevel = m.Goblin.Level
		}
	}
	e.Social.UpdateCurrentPower(ctx, power, maxLevel)
}

func (e *Engine) record(typ telemetry.EventType, md telemetry.EventMetadata) {
	if e.Telemetry == nil {
		return
	}
	if err := e.Telemetry.RecordEvent(typ, md); err != nil {
		e.Logger.Printf("telemetry %s: %v", typ, err)
	}
}

// Run starts the background loops: weather rotation, daily quest refresh
// and energy regen. It blocks until the context is cancelled.
func (e *Engine) Run(ctx context.Context) {
	weatherTick := time.Duration(e.Balance.WeatherIntervalMinutes) * time.Minute
	if weatherTick <= 0 {
		weatherTick = 5 * time.Minute
	}

	weatherTicker := time.NewTicker(weatherTick)
	defer weatherTicker.Stop()
	questTicker := time.NewTicker(time.Minute)
	defer questTicker.Stop()
	energyTicker := time.NewTicker(time.Minute)
	defer energyTicker.Stop()

	e.RefreshDailyQuests(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-weatherTicker.C:
			e.RollWeather(ctx)
		case <-questTicker.C:
			e.RefreshDailyQuests(ctx)
		case <-energyTicker.C:
			if err := e.RegenEnergy(ctx); err != nil {
				e.Logger.Printf("energy regen: %v", err)
			}
		}
	}
}
