package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/economy"
	"github.com/Kytol/skeleton-crew/internal/game"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/recruit"
	"github.com/Kytol/skeleton-crew/internal/social"
	"github.com/Kytol/skeleton-crew/internal/task"
	"github.com/Kytol/skeleton-crew/internal/telemetry"
	"github.com/Kytol/skeleton-crew/internal/theme"
	"github.com/Kytol/skeleton-crew/internal/view"
)

type Options struct {
	Config  *config.Config
	DataDir string
	Logger  *log.Logger
}

// NewHandler builds the engine and the JSON API around it. The returned
// engine is exposed so the caller can run the background loops.
func NewHandler(opts Options) (http.Handler, *game.Engine, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Server.DataDir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	engine := game.NewEngine(opts.Config.Balance, opts.Logger)

	themes, err := theme.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "skeleton-crew",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			items, err := engine.Tasks.List(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, view.Tasks(items, taskQueryFromRequest(r)))
		case http.MethodPost:
			var req struct {
				Title       string        `json:"title"`
				Description string        `json:"description"`
				Category    task.Category `json:"category"`
				Reward      int           `json:"reward"`
				Priority    task.Priority `json:"priority"`
				Deadline    *time.Time    `json:"deadline"`
			}
			if !decode(w, r, &req) {
				return
			}
			t, err := engine.CreateTask(r.Context(), req.Title, req.Description, req.Category, req.Reward, req.Priority, req.Deadline)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusCreated, t)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/tasks/assign", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TaskID   string `json:"task_id"`
			GoblinID string `json:"goblin_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		ok, err := engine.AssignTask(r.Context(), req.TaskID, req.GoblinID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": ok})
	})

	mux.HandleFunc("/api/tasks/complete", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TaskID string `json:"task_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		out, ok, err := engine.CompleteTask(r.Context(), req.TaskID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "reward": out})
	})

	mux.HandleFunc("/api/goblins", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		items, err := engine.Goblins.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, view.Goblins(items, goblinQueryFromRequest(r)))
	})

	mux.HandleFunc("/api/goblins/rest", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GoblinID string `json:"goblin_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.RestGoblin(r.Context(), req.GoblinID)})
	})

	mux.HandleFunc("/api/economy", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		earned, spent := engine.Economy.Totals(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"balances":     engine.Economy.Balances(r.Context()),
			"transactions": engine.Economy.Transactions(r.Context(), 50),
			"total_earned": earned,
			"total_spent":  spent,
		})
	})

	mux.HandleFunc("/api/trades", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, engine.Economy.TradeOffers(r.Context()))
		case http.MethodPost:
			var req struct {
				OfferCurrency  economy.Currency `json:"offer_currency"`
				OfferAmount    int              `json:"offer_amount"`
				AskingCurrency economy.Currency `json:"asking_currency"`
				AskingAmount   int              `json:"asking_amount"`
			}
			if !decode(w, r, &req) {
				return
			}
			offer, ok := engine.Economy.CreateTradeOffer(r.Context(), req.OfferCurrency, req.OfferAmount, req.AskingCurrency, req.AskingAmount)
			writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "offer": offer})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/trades/accept", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TradeID string `json:"trade_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Economy.AcceptTrade(r.Context(), req.TradeID)})
	})

	mux.HandleFunc("/api/trades/cancel", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TradeID string `json:"trade_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Economy.CancelTrade(r.Context(), req.TradeID)})
	})

	mux.HandleFunc("/api/quests", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"dailies": engine.Quests.Dailies(r.Context()),
			"chains":  engine.Quests.Chains(r.Context()),
		})
	})

	mux.HandleFunc("/api/missions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"missions": engine.Missions.Missions(r.Context()),
			"active":   engine.Missions.Active(r.Context()),
			"results":  engine.Missions.Results(r.Context()),
		})
	})

	mux.HandleFunc("/api/missions/deploy", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MissionID string `json:"mission_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		am, ok, err := engine.DeployMission(r.Context(), req.MissionID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "active": am})
	})

	mux.HandleFunc("/api/squad", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		members, err := engine.Squad.Members(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"squad":   engine.Squad.Squad(r.Context()),
			"members": members,
		})
	})

	mux.HandleFunc("/api/squad/add", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GoblinID string `json:"goblin_id"`
			Position *int   `json:"position"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Squad.Add(r.Context(), req.GoblinID, req.Position)})
	})

	mux.HandleFunc("/api/squad/remove", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GoblinID string `json:"goblin_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		engine.Squad.Remove(r.Context(), req.GoblinID)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/api/squad/move", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GoblinID string `json:"goblin_id"`
			Position int    `json:"position"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Squad.Move(r.Context(), req.GoblinID, req.Position)})
	})

	mux.HandleFunc("/api/squad/rename", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		engine.Squad.Rename(r.Context(), req.Name)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/api/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, engine.Weather.Current(r.Context()))
	})

	mux.HandleFunc("/api/recruits", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, engine.Recruits.Templates(r.Context()))
	})

	mux.HandleFunc("/api/recruits/hire", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TemplateID string `json:"template_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		g, ok := engine.RecruitGoblin(r.Context(), req.TemplateID)
		writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "goblin": g})
	})

	mux.HandleFunc("/api/board", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, engine.Board.Requests(r.Context()))
		case http.MethodPost:
			var req struct {
				Type         string `json:"type"`
				DesiredRace  string `json:"desired_race"`
				DesiredClass string `json:"desired_class"`
				MinLevel     int    `json:"min_level"`
				MaxLevel     int    `json:"max_level"`
				Compensation int    `json:"compensation"`
				DurationDays int    `json:"duration_days"`
				Description  string `json:"description"`
			}
			if !decode(w, r, &req) {
				return
			}
			posted := engine.Board.Post(r.Context(), boardRequest(req.Type, req.DesiredRace, req.DesiredClass, req.MinLevel, req.MaxLevel, req.Compensation, req.DurationDays, req.Description))
			writeJSON(w, http.StatusCreated, posted)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/board/respond", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RequestID    string `json:"request_id"`
			Message      string `json:"message"`
			CounterOffer int    `json:"counter_offer"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		resp, ok := engine.Board.Respond(r.Context(), req.RequestID, social.CurrentPlayerID, "Overseer", req.Message, req.CounterOffer)
		writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "response": resp})
	})

	mux.HandleFunc("/api/board/accept", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RequestID  string `json:"request_id"`
			ResponseID string `json:"response_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Board.AcceptResponse(r.Context(), req.RequestID, req.ResponseID)})
	})

	mux.HandleFunc("/api/social/players", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if q := r.URL.Query().Get("q"); q != "" {
			writeJSON(w, http.StatusOK, engine.Social.SearchPlayers(r.Context(), q))
			return
		}
		writeJSON(w, http.StatusOK, engine.Social.Players(r.Context()))
	})

	mux.HandleFunc("/api/social/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, engine.Social.Leaderboard(r.Context()))
	})

	mux.HandleFunc("/api/social/friends", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]any{
				"friends": engine.Social.FriendsList(r.Context()),
				"pending": engine.Social.PendingRequests(r.Context()),
			})
		case http.MethodPost:
			var req struct {
				PlayerID string `json:"player_id"`
			}
			if !decode(w, r, &req) {
				return
			}
			f, ok := engine.Social.SendFriendRequest(r.Context(), req.PlayerID)
			writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "friend": f})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/social/friends/accept", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FriendID string `json:"friend_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Social.AcceptFriendRequest(r.Context(), req.FriendID)})
	})

	mux.HandleFunc("/api/social/alliances", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, engine.Social.Alliances(r.Context()))
		case http.MethodPost:
			var req struct {
				Name        string `json:"name"`
				Tag         string `json:"tag"`
				Description string `json:"description"`
			}
			if !decode(w, r, &req) {
				return
			}
			a, ok := engine.Social.CreateAlliance(r.Context(), req.Name, req.Tag, req.Description)
			writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "alliance": a})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/social/alliances/join", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AllianceID string `json:"alliance_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Social.JoinAlliance(r.Context(), req.AllianceID)})
	})

	mux.HandleFunc("/api/social/alliances/leave", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		engine.Social.LeaveAlliance(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/api/social/chat", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			channel := social.Channel(r.URL.Query().Get("channel"))
			if channel == "" {
				channel = social.ChannelGlobal
			}
			writeJSON(w, http.StatusOK, engine.Social.ChannelMessages(r.Context(), channel, r.URL.Query().Get("recipient")))
		case http.MethodPost:
			var req struct {
				Content     string         `json:"content"`
				Channel     social.Channel `json:"channel"`
				RecipientID string         `json:"recipient_id"`
			}
			if !decode(w, r, &req) {
				return
			}
			m, ok := engine.Social.SendMessage(r.Context(), req.Content, req.Channel, req.RecipientID)
			writeJSON(w, http.StatusOK, map[string]any{"ok": ok, "message": m})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/shop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"catalog":   engine.Shop.CatalogItems(r.Context()),
			"inventory": engine.Shop.Inventory(r.Context()),
		})
	})

	mux.HandleFunc("/api/shop/buy", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ItemID string `json:"item_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.BuyItem(r.Context(), req.ItemID)})
	})

	mux.HandleFunc("/api/shop/equip", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GoblinID string `json:"goblin_id"`
			ItemID   string `json:"item_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Shop.Equip(r.Context(), req.GoblinID, req.ItemID)})
	})

	mux.HandleFunc("/api/shop/use", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ItemID   string `json:"item_id"`
			GoblinID string `json:"goblin_id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.UseConsumable(r.Context(), req.ItemID, req.GoblinID)})
	})

	mux.HandleFunc("/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"notifications": engine.Notifications.List(r.Context()),
			"unread":        engine.Notifications.Unread(r.Context()),
		})
	})

	mux.HandleFunc("/api/notifications/read", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if !requirePost(w, r) || !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": engine.Notifications.MarkRead(r.Context(), req.ID)})
	})

	mux.HandleFunc("/api/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		engine.Notifications.MarkAllRead(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/api/theme", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]any{"theme": themes.Get()})
		case http.MethodPost:
			var req struct {
				Theme theme.Mode `json:"theme"`
			}
			if !decode(w, r, &req) {
				return
			}
			if err := themes.Set(req.Theme); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"theme": themes.Get()})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		since := time.Now().Add(-24 * time.Hour)
		events, err := engine.Telemetry.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, opts.Config)
	})

	return mux, engine, nil
}

func boardRequest(typ, race, class string, minLevel, maxLevel, compensation, durationDays int, description string) recruit.Request {
	return recruit.Request{
		RequesterID:   social.CurrentPlayerID,
		RequesterName: "Overseer",
		Type:          recruit.RequestType(typ),
		DesiredRace:   goblin.Race(race),
		DesiredClass:  goblin.Class(class),
		MinLevel:      minLevel,
		MaxLevel:      maxLevel,
		Compensation:  compensation,
		DurationDays:  durationDays,
		Description:   description,
	}
}

func taskQueryFromRequest(r *http.Request) view.TaskQuery {
	q := view.TaskQuery{
		Search: r.URL.Query().Get("q"),
		Status: task.Status(r.URL.Query().Get("status")),
		Sort:   view.TaskSort(r.URL.Query().Get("sort")),
	}
	for _, c := range r.URL.Query()["category"] {
		q.Categories = append(q.Categories, task.Category(c))
	}
	for _, p := range r.URL.Query()["priority"] {
		q.Priorities = append(q.Priorities, task.Priority(p))
	}
	q.Reward.Min = intParam(r, "reward_min")
	q.Reward.Max = intParam(r, "reward_max")
	return q
}

func goblinQueryFromRequest(r *http.Request) view.GoblinQuery {
	q := view.GoblinQuery{
		Search: r.URL.Query().Get("q"),
		Status: goblin.Status(r.URL.Query().Get("status")),
		Sort:   view.GoblinSort(r.URL.Query().Get("sort")),
	}
	for _, race := range r.URL.Query()["race"] {
		q.Races = append(q.Races, goblin.Race(race))
	}
	for _, class := range r.URL.Query()["class"] {
		q.Classes = append(q.Classes, goblin.Class(class))
	}
	q.Level.Min = intParam(r, "level_min")
	q.Level.Max = intParam(r, "level_max")
	q.Cost.Min = intParam(r, "cost_min")
	q.Cost.Max = intParam(r, "cost_max")
	return q
}

func intParam(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
