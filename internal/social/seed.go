package social

import (
	"fmt"
	"time"
)

func samplePlayers(now time.Time) []Player {
	seed := []struct {
		name       string
		avatar     string
		level      int
		status     PlayerStatus
		power      int
		missions   int
		allianceID string
	}{
		{"WarChief Grom", "👹", 42, PlayerOnline, 3200, 87, "alliance-1"},
		{"Shadow Master", "🧙", 38, PlayerInMission, 2900, 64, "alliance-1"},
		{"Necro Lord", "💀", 45, PlayerOnline, 3400, 92, "alliance-1"},
		{"Blood Queen", "👸", 31, PlayerAway, 2100, 41, "alliance-2"},
		{"Iron Fist", "💪", 27, PlayerOffline, 1800, 33, "alliance-2"},
		{"Dark Blade", "🗡️", 35, PlayerOnline, 2500, 55, "alliance-2"},
		{"Storm Caller", "⚡", 22, PlayerOnline, 1400, 21, ""},
		{"Bone Crusher", "🦴", 19, PlayerOffline, 1100, 18, ""},
		{"Fire Mage", "🔥", 29, PlayerInMission, 1900, 37, ""},
		{"Ice Queen", "❄️", 33, PlayerAway, 2300, 48, "alliance-3"},
		{"Thunder God", "⛈️", 40, PlayerOnline, 3000, 71, ""},
		{"Demon Hunter", "😈", 25, PlayerOffline, 1600, 28, ""},
	}

	out := make([]Player, 0, len(seed))
	for i, p := range seed {
		out = append(out, Player{
			ID:                playerID(i + 2),
			Name:              p.name,
			Avatar:            p.avatar,
			Level:             p.level,
			Status:            p.status,
			SquadPower:        p.power,
			MissionsCompleted: p.missions,
			AllianceID:        p.allianceID,
			JoinedAt:          now.Add(-time.Duration(i+1) * 24 * time.Hour),
			LastSeen:          now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func playerID(n int) string {
	return fmt.Sprintf("player-%d", n)
}

func sampleAlliances(now time.Time) []Alliance {
	return []Alliance{
		{
			ID: "alliance-1", Name: "Dark Legion", Tag: "DRK",
			Description: "Elite raiders seeking glory.",
			LeaderID:    playerID(2),
			MemberIDs:   []string{playerID(2), playerID(3), playerID(4)},
			MaxMembers:  20, Level: 5, TotalPower: 9500,
			Recruiting: true, CreatedAt: now.Add(-60 * 24 * time.Hour),
		},
		{
			ID: "alliance-2", Name: "Shadow Clan", Tag: "SHD",
			Description: "Masters of stealth and assassination.",
			LeaderID:    playerID(5),
			MemberIDs:   []string{playerID(5), playerID(6), playerID(7)},
			MaxMembers:  15, Level: 3, TotalPower: 6400,
			Recruiting: true, CreatedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "alliance-3", Name: "Blood Pact", Tag: "BLD",
			Description: "United by blood, bound by honor.",
			LeaderID:    playerID(11),
			MemberIDs:   []string{playerID(11)},
			MaxMembers:  10, Level: 1, TotalPower: 2300,
			Recruiting: false, CreatedAt: now.Add(-7 * 24 * time.Hour),
		},
	}
}

func sampleMessages(now time.Time) []Message {
	contents := []string{
		"Anyone up for a raid?",
		"Just cleared the Dragon's Lair!",
		"Looking for healers",
		"Need help with the demon gate",
		"Trading gems for gold",
	}
	players := samplePlayers(now)
	out := make([]Message, 0, len(contents))
	for i, c := range contents {
		p := players[i]
		out = append(out, Message{
			ID:           "msg-seed-" + p.ID,
			SenderID:     p.ID,
			SenderName:   p.Name,
			SenderAvatar: p.Avatar,
			Content:      c,
			Channel:      ChannelGlobal,
			Timestamp:    now.Add(-time.Duration(len(contents)-i) * 5 * time.Minute),
		})
	}
	return out
}
