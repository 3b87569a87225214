package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeQuestComplete Type = "quest_complete"
	TypeWeatherChange Type = "weather_change"
	TypeDailyBonus    Type = "daily_bonus"
	TypeAchievement   Type = "achievement"
	TypeItemFound     Type = "item_found"
	TypeMissionResult Type = "mission_result"
	TypeLevelUp       Type = "level_up"
)

// Notification is immutable once created, except for the read flag.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Center is a bounded, newest-first notification log with unread tracking.
// When the cap is exceeded the oldest entries are evicted.
type Center struct {
	mu     sync.RWMutex
	items  []Notification
	unread int
	max    int
	now    func() time.Time
}

func NewCenter(max int) *Center {
	if max <= 0 {
		max = 50
	}
	return &Center{max: max, now: time.Now}
}

// SetNowFunc overrides the clock for tests.
func (c *Center) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *Center) Add(ctx context.Context, typ Type, title, message, icon string) Notification {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Icon:      icon,
		Timestamp: c.now(),
	}
	c.items = append([]Notification{n}, c.items...)
	if len(c.items) > c.max {
		// Evicted entries may still be unread; the unread count tracks
		// retained entries only.
		for _, old := range c.items[c.max:] {
			if !old.Read && c.unread > 0 {
				c.unread--
			}
		}
		c.items = c.items[:c.max]
	}
	c.unread++
	return n
}

func (c *Center) List(ctx context.Context) []Notification {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) Unread(ctx context.Context) int {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unread
}

// MarkRead flips one notification to read. Idempotent.
func (c *Center) MarkRead(ctx context.Context, id string) bool {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			if !c.items[i].Read {
				c.items[i].Read = true
				if c.unread > 0 {
					c.unread--
				}
			}
			return true
		}
	}
	return false
}

func (c *Center) MarkAllRead(ctx context.Context) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		c.items[i].Read = true
	}
	c.unread = 0
}

func (c *Center) Clear(ctx context.Context) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.unread = 0
}
