package export

import (
	"testing"

	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardWorkbook(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{Rank: 1, Points: 35, EngagementCounts: models.EngagementCounts{UserID: "STU-1", Name: "Amy", CompletedVideos: 2, QuizScoreSum: 4, Posts: 1, Comments: 3}},
		{Rank: 2, Points: 2, EngagementCounts: models.EngagementCounts{UserID: "STU-2", Name: "Bob", Comments: 1}},
	}

	f, err := LeaderboardWorkbook(entries)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(LeaderboardSheet, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Points", header)

	name, err := f.GetCellValue(LeaderboardSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Amy", name)

	points, err := f.GetCellValue(LeaderboardSheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "2", points)
}

func TestLeaderboardWorkbookEmpty(t *testing.T) {
	f, err := LeaderboardWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LeaderboardSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
