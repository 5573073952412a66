package models

// EngagementCounts are the raw per-learner activity totals the leaderboard
// is computed from.
type EngagementCounts struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	ProfilePic      string `json:"profile_pic"`
	Role            Role   `json:"-"`
	CompletedVideos int    `json:"completed_videos"`
	QuizScoreSum    int    `json:"quiz_score_sum"`
	Posts           int    `json:"posts"`
	Comments        int    `json:"comments"`
}

type LeaderboardEntry struct {
	Rank   int `json:"rank"`
	Points int `json:"points"`
	EngagementCounts
}
