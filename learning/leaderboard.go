package learning

import (
	"context"
	"sort"

	"LearningHubBackend/models"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Weights are the points awarded per unit of engagement.
type Weights struct {
	VideoCompletion int
	QuizPoint       int
	Post            int
	Comment         int
}

var DefaultWeights = Weights{VideoCompletion: 10, QuizPoint: 1, Post: 5, Comment: 2}

// ExcludedRoles never appear on the leaderboard.
var ExcludedRoles = []models.Role{models.RoleAdmin, models.RoleCompany, models.RoleInstructor}

func (w Weights) Points(c models.EngagementCounts) int {
	return c.CompletedVideos*w.VideoCompletion +
		c.QuizScoreSum*w.QuizPoint +
		c.Posts*w.Post +
		c.Comments*w.Comment
}

type LeaderboardStore interface {
	EngagementCounts(ctx context.Context, excluded []models.Role) ([]models.EngagementCounts, error)
}

type Leaderboard struct {
	store   LeaderboardStore
	weights Weights
}

func NewLeaderboard(store LeaderboardStore, weights Weights) *Leaderboard {
	return &Leaderboard{store: store, weights: weights}
}

func (l *Leaderboard) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	counts, err := l.store.EngagementCounts(ctx, ExcludedRoles)
	if err != nil {
		return nil, err
	}
	return Rank(counts, l.weights, limit), nil
}

// Rank scores, orders (points desc, user id asc) and truncates to limit.
func Rank(counts []models.EngagementCounts, w Weights, limit int) []models.LeaderboardEntry {
	limit = ClampLimit(limit)
	entries := make([]models.LeaderboardEntry, 0, len(counts))
	for _, c := range counts {
		if excluded(c.Role) {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{Points: w.Points(c), EngagementCounts: c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

func excluded(r models.Role) bool {
	for _, x := range ExcludedRoles {
		if r == x {
			return true
		}
	}
	return false
}
