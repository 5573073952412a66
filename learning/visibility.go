package learning

import (
	"time"

	"LearningHubBackend/models"
)

// VisibleVideos drops unreleased videos unless role is staff.
func VisibleVideos(videos []models.Video, role models.Role, now time.Time) []models.Video {
	if role.Staff() {
		return videos
	}
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.Released(now) {
			out = append(out, v)
		}
	}
	return out
}
