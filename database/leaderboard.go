package database

import (
	"context"
	"fmt"

	"LearningHubBackend/models"

	"github.com/lib/pq"
)

// EngagementCounts aggregates the raw leaderboard inputs for every user whose
// role is not excluded. Ranking happens in the learning package.
func (s *Store) EngagementCounts(ctx context.Context, excluded []models.Role) ([]models.EngagementCounts, error) {
	roles := make([]string, len(excluded))
	for i, r := range excluded {
		roles[i] = string(r)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT u.user_id, u.name, COALESCE(u.profile_pic, ''), u.role,
		       (SELECT COUNT(DISTINCT vp.video_id) FROM video_progress vp
		         JOIN course_videos v ON v.id = vp.video_id
		         WHERE vp.user_email = LOWER(u.email) AND vp.completed = true),
		       (SELECT COALESCE(SUM(qa.score), 0) FROM quiz_attempts qa WHERE qa.user_email = LOWER(u.email)),
		       (SELECT COUNT(*) FROM posts p WHERE p.user_id = u.user_id),
		       (SELECT COUNT(*) FROM comments c WHERE c.user_id = u.user_id)
		FROM users u
		WHERE NOT (u.role = ANY($1))
		ORDER BY u.user_id`, pq.Array(roles))
	if err != nil {
		return nil, fmt.Errorf("EngagementCounts query failed: %w", err)
	}
	defer rows.Close()

	out := []models.EngagementCounts{}
	for rows.Next() {
		var c models.EngagementCounts
		if err := rows.Scan(&c.UserID, &c.Name, &c.ProfilePic, &c.Role,
			&c.CompletedVideos, &c.QuizScoreSum, &c.Posts, &c.Comments); err != nil {
			return nil, fmt.Errorf("EngagementCounts scan failed: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
