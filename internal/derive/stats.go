package derive

import (
	"slices"

	"go-gin-attendance-log/internal/model"

	"github.com/google/uuid"
)

const (
	unknownEmail  = "Unknown"
	anonymousUser = "This user"
)

// Stats summarises one user's collection.
func Stats(userID uuid.UUID, events []*model.EventRecord) model.UserStats {
	stats := model.UserStats{
		UserID: userID,
		Email:  anonymousUser,
		ByType: CountByType(events),
	}
	for _, e := range events {
		if e == nil {
			continue
		}
		stats.Total++
	}
	if len(events) > 0 && events[0] != nil && events[0].UserEmail != "" {
		stats.Email = events[0].UserEmail
	}
	return stats
}

// Leaderboard counts events per user, most events first. Users with equal
// counts keep the order in which they first appear.
func Leaderboard(events []*model.EventRecord) []model.LeaderboardEntry {
	index := make(map[uuid.UUID]int)
	entries := make([]model.LeaderboardEntry, 0)
	for _, e := range events {
		if e == nil {
			continue
		}
		i, ok := index[e.UserID]
		if !ok {
			email := e.UserEmail
			if email == "" {
				email = unknownEmail
			}
			i = len(entries)
			index[e.UserID] = i
			entries = append(entries, model.LeaderboardEntry{UserID: e.UserID, Email: email})
		}
		entries[i].Count++
	}

	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int {
		return b.Count - a.Count
	})
	return entries
}
