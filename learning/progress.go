package learning

import (
	"context"
	"math"
)

type ProgressStore interface {
	CountCourseVideos(ctx context.Context, courseID int64) (int, error)
	// CountWatchedVideos counts distinct videos of the course the learner finished.
	CountWatchedVideos(ctx context.Context, courseID int64, email string) (int, error)
	// MarkVideoWatched returns ErrUnknownVideo when no such video exists.
	MarkVideoWatched(ctx context.Context, email string, videoID int64) error
}

type ProgressTracker struct {
	store ProgressStore
}

func NewProgressTracker(store ProgressStore) *ProgressTracker {
	return &ProgressTracker{store: store}
}

// Calculate returns the learner's completion of a course as 0..100.
func (p *ProgressTracker) Calculate(ctx context.Context, courseID int64, email string) (int, error) {
	total, err := p.store.CountCourseVideos(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	watched, err := p.store.CountWatchedVideos(ctx, courseID, email)
	if err != nil {
		return 0, err
	}
	return Percent(watched, total), nil
}

// MarkWatched is idempotent per (learner, video).
func (p *ProgressTracker) MarkWatched(ctx context.Context, email string, videoID int64) error {
	return p.store.MarkVideoWatched(ctx, email, videoID)
}

// Percent rounds half away from zero and clamps to 0..100.
func Percent(watched, total int) int {
	if total <= 0 || watched <= 0 {
		return 0
	}
	if watched > total {
		watched = total
	}
	return int(math.Round(100 * float64(watched) / float64(total)))
}
