package social

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the simulated social graph: player roster, friendships,
// alliances and chat. All other players are NPC stand-ins.
type Store struct {
	mu        sync.RWMutex
	current   Player
	players   map[string]Player
	order     []string
	friends   []Friend
	alliances map[string]Alliance
	allOrder  []string
	messages  []Message
	now       func() time.Time
}

func NewStore() *Store {
	s := &Store{
		players:   make(map[string]Player),
		alliances: make(map[string]Alliance),
		now:       time.Now,
	}
	s.current = Player{
		ID: CurrentPlayerID, Name: "Overseer", Avatar: "👑",
		Level: 1, Status: PlayerOnline, JoinedAt: s.now(), LastSeen: s.now(),
	}
	for _, p := range samplePlayers(s.now()) {
		s.players[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	for _, a := range sampleAlliances(s.now()) {
		s.alliances[a.ID] = a
		s.allOrder = append(s.allOrder, a.ID)
	}
	s.messages = sampleMessages(s.now())
	return s
}

// SetNowFunc overrides the clock for tests.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) CurrentPlayer(ctx context.Context) Player {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// UpdateCurrentPower refreshes the local player's squad power and level,
// keeping any joined alliance's aggregate in step.
func (s *Store) UpdateCurrentPower(ctx context.Context, power, level int) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := power - s.current.SquadPower
	s.current.SquadPower = power
	s.current.Level = level
	if s.current.AllianceID != "" {
		a := s.alliances[s.current.AllianceID]
		a.TotalPower += delta
		s.alliances[s.current.AllianceID] = a
	}
}

func (s *Store) Players(ctx context.Context) []Player {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Player, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.players[id])
	}
	return out
}

func (s *Store) Player(ctx context.Context, id string) (Player, bool) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == s.current.ID {
		return s.current, true
	}
	p, ok := s.players[id]
	return p, ok
}

// SearchPlayers matches name or ID, case-insensitive. Empty query returns
// nothing.
func (s *Store) SearchPlayers(ctx context.Context, query string) []Player {
	_ = ctx
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Player, 0)
	for _, id := range s.order {
		p := s.players[id]
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(p.ID, q) {
			out = append(out, p)
		}
	}
	return out
}

// Leaderboard ranks all players including the local one by squad power,
// top 20.
func (s *Store) Leaderboard(ctx context.Context) []Player {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Player, 0, len(s.order)+1)
	for _, id := range s.order {
		out = append(out, s.players[id])
	}
	out = append(out, s.current)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SquadPower > out[j].SquadPower
	})
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

// SendFriendRequest creates a pending friendship. Duplicate requests for
// the same player are no-ops.
func (s *Store) SendFriendRequest(ctx context.Context, playerID string) (Friend, bool) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; !ok {
		return Friend{}, false
	}
	for _, f := range s.friends {
		if f.PlayerID == playerID {
			return Friend{}, false
		}
	}
	f := Friend{ID: uuid.NewString(), PlayerID: playerID, Status: FriendPending, AddedAt: s.now()}
	s.friends = append(s.friends, f)
	return f, true
}

func (s *Store) AcceptFriendRequest(ctx context.Context, friendID string) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.friends {
		if s.friends[i].ID == friendID && s.friends[i].Status == FriendPending {
			s.friends[i].Status = FriendAccepted
			return true
		}
	}
	return false
}

func (s *Store) RemoveFriend(ctx context.Context, playerID string) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.friends[:0]
	for _, f := range s.friends {
		if f.PlayerID != playerID {
			out = append(out, f)
		}
	}
	s.friends = out
}

// FriendsList resolves accepted friendships to players.
func (s *Store) FriendsList(ctx context.Context) []Player {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Player, 0)
	for _, f := range s.friends {
		if f.Status != FriendAccepted {
			continue
		}
		if p, ok := s.players[f.PlayerID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) PendingRequests(ctx context.Context) []Friend {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Friend, 0)
	for _, f := range s.friends {
		if f.Status == FriendPending {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) Alliances(ctx context.Context) []Alliance {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alliance, 0, len(s.allOrder))
	for _, id := range s.allOrder {
		out = append(out, s.alliances[id])
	}
	return out
}

func (s *Store) MyAlliance(ctx context.Context) (Alliance, bool) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.AllianceID == "" {
		return Alliance{}, false
	}
	a, ok := s.alliances[s.current.AllianceID]
	return a, ok
}

// CreateAlliance founds a new alliance with the local player as leader.
// Fails if already in one.
func (s *Store) CreateAlliance(ctx context.Context, name, tag, description string) (Alliance, bool) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.AllianceID != "" {
		return Alliance{}, false
	}
	a := Alliance{
		ID: uuid.NewString(), Name: name, Tag: tag, Description: description,
		LeaderID:   s.current.ID,
		MemberIDs:  []string{s.current.ID},
		MaxMembers: 20, Level: 1,
		TotalPower: s.current.SquadPower,
		Recruiting: true,
		CreatedAt:  s.now(),
	}
	s.alliances[a.ID] = a
	s.allOrder = append(s.allOrder, a.ID)
	s.current.AllianceID = a.ID
	return a, true
}

// JoinAlliance adds the local player to a recruiting alliance with room.
func (s *Store) JoinAlliance(ctx context.Context, allianceID string) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.AllianceID != "" {
		return false
	}
	a, ok := s.alliances[allianceID]
	if !ok || !a.Recruiting || len(a.MemberIDs) >= a.MaxMembers {
		return false
	}
	a.MemberIDs = append(a.MemberIDs, s.current.ID)
	a.TotalPower += s.current.SquadPower
	s.alliances[allianceID] = a
	s.current.AllianceID = allianceID
	return true
}

// LeaveAlliance removes the local player. An alliance left empty is
// dissolved.
func (s *Store) LeaveAlliance(ctx context.Context) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.current.AllianceID
	if id == "" {
		return
	}
	a, ok := s.alliances[id]
	if ok {
		members := a.MemberIDs[:0]
		for _, m := range a.MemberIDs {
			if m != s.current.ID {
				members = append(members, m)
			}
		}
		a.MemberIDs = members
		a.TotalPower -= s.current.SquadPower
		if len(a.MemberIDs) == 0 {
			delete(s.alliances, id)
			order := s.allOrder[:0]
			for _, aid := range s.allOrder {
				if aid != id {
					order = append(order, aid)
				}
			}
			s.allOrder = order
		} else {
			s.alliances[id] = a
		}
	}
	s.current.AllianceID = ""
}

// SendMessage posts as the local player. Private messages require a
// recipient; alliance messages require membership.
func (s *Store) SendMessage(ctx context.Context, content string, channel Channel, recipientID string) (Message, bool) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if channel == ChannelPrivate && recipientID == "" {
		return Message{}, false
	}
	if channel == ChannelAlliance && s.current.AllianceID == "" {
		return Message{}, false
	}
	m := Message{
		ID:           uuid.NewString(),
		SenderID:     s.current.ID,
		SenderName:   s.current.Name,
		SenderAvatar: s.current.Avatar,
		Content:      content,
		Channel:      channel,
		RecipientID:  recipientID,
		Timestamp:    s.now(),
	}
	s.messages = append(s.messages, m)
	return m, true
}

// ChannelMessages filters by channel; private threads are pairwise with
// the local player.
func (s *Store) ChannelMessages(ctx context.Context, channel Channel, recipientID string) []Message {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range s.messages {
		if m.Channel != channel {
			continue
		}
		if channel == ChannelPrivate {
			mine := m.SenderID == s.current.ID && m.RecipientID == recipientID
			theirs := m.SenderID == recipientID && m.RecipientID == s.current.ID
			if !mine && !theirs {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
