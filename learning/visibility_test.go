package learning_test

import (
	"testing"
	"time"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
)

func TestVisibleVideos(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	videos := []models.Video{
		{ID: 1, Title: "Intro", ReleaseDate: &yesterday},
		{ID: 2, Title: "Advanced", ReleaseDate: &tomorrow},
		{ID: 3, Title: "Bonus"},
	}

	titles := func(vs []models.Video) []string {
		var out []string
		for _, v := range vs {
			out = append(out, v.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Intro", "Bonus"}, titles(learning.VisibleVideos(videos, models.RoleStudent, now)))
	assert.Equal(t, []string{"Intro", "Bonus"}, titles(learning.VisibleVideos(videos, models.RoleCompany, now)))
	assert.Equal(t, []string{"Intro", "Advanced", "Bonus"}, titles(learning.VisibleVideos(videos, models.RoleAdmin, now)))
	assert.Equal(t, []string{"Intro", "Advanced", "Bonus"}, titles(learning.VisibleVideos(videos, models.RoleInstructor, now)))
}

func TestReleasedAtExactInstant(t *testing.T) {
	now := time.Now()
	assert.True(t, models.Video{ReleaseDate: &now}.Released(now))
}
