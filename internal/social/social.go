package social

import (
	"time"
)

// CurrentPlayerID identifies the local player in the single-profile model.
const CurrentPlayerID = "player-1"

type PlayerStatus string

const (
	PlayerOnline    PlayerStatus = "online"
	PlayerOffline   PlayerStatus = "offline"
	PlayerInMission PlayerStatus = "in_mission"
	PlayerAway      PlayerStatus = "away"
)

type Player struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Avatar            string       `json:"avatar"`
	Level             int          `json:"level"`
	Status            PlayerStatus `json:"status"`
	SquadPower        int          `json:"squad_power"`
	MissionsCompleted int          `json:"missions_completed"`
	AllianceID        string       `json:"alliance_id,omitempty"`
	JoinedAt          time.Time    `json:"joined_at"`
	LastSeen          time.Time    `json:"last_seen"`
}

type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
)

type Friend struct {
	ID       string       `json:"id"`
	PlayerID string       `json:"player_id"`
	Status   FriendStatus `json:"status"`
	AddedAt  time.Time    `json:"added_at"`
}

type Alliance struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	LeaderID    string    `json:"leader_id"`
	MemberIDs   []string  `json:"member_ids"`
	MaxMembers  int       `json:"max_members"`
	Level       int       `json:"level"`
	TotalPower  int       `json:"total_power"`
	Recruiting  bool      `json:"recruiting"`
	CreatedAt   time.Time `json:"created_at"`
}

type Channel string

const (
	ChannelGlobal   Channel = "global"
	ChannelAlliance Channel = "alliance"
	ChannelPrivate  Channel = "private"
)

type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar"`
	Content      string    `json:"content"`
	Channel      Channel   `json:"channel"`
	RecipientID  string    `json:"recipient_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
