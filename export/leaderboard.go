package export

import (
	"fmt"

	"LearningHubBackend/models"

	"github.com/xuri/excelize/v2"
)

const LeaderboardSheet = "Leaderboard"

var leaderboardHeader = []string{"Rank", "Name", "User ID", "Points", "Videos", "Quiz points", "Posts", "Comments"}

// LeaderboardWorkbook renders ranked entries as a single-sheet workbook.
func LeaderboardWorkbook(entries []models.LeaderboardEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", LeaderboardSheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, h := range leaderboardHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(LeaderboardSheet, cell, h); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(leaderboardHeader))
	if err := f.SetCellStyle(LeaderboardSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}

	for r, e := range entries {
		row := []interface{}{e.Rank, e.Name, e.UserID, e.Points, e.CompletedVideos, e.QuizScoreSum, e.Posts, e.Comments}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(LeaderboardSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(LeaderboardSheet, "B", "C", 28)
	if len(entries) > 0 {
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(entries)+1)
		if err := f.AutoFilter(LeaderboardSheet, ref, nil); err != nil {
			return nil, err
		}
	}
	return f, nil
}
