// Package memstore keeps the learning stores in memory. It backs unit and
// handler tests and mirrors the uniqueness rules of the Postgres schema.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"
)

type watchKey struct {
	email   string
	videoID int64
}

type regKey struct {
	activityID int64
	userID     string
}

type Store struct {
	mu sync.Mutex

	nextID        int64
	users         map[string]models.User
	videos        map[int64]models.Video
	watched       map[watchKey]time.Time
	questions     map[int64]models.QuizQuestion
	attempts      []models.QuizAttempt
	posts         map[int64]models.Post
	comments      []models.Comment
	registrations map[regKey]models.Registration
	notifications []models.Notification

	// Err, when set, is returned by every read and write.
	Err error
}

func New() *Store {
	return &Store{
		users:         map[string]models.User{},
		videos:        map[int64]models.Video{},
		watched:       map[watchKey]time.Time{},
		questions:     map[int64]models.QuizQuestion{},
		posts:         map[int64]models.Post{},
		registrations: map[regKey]models.Registration{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.users[u.UserID] = u
	return u
}

func (s *Store) AddVideo(v models.Video) models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == 0 {
		v.ID = s.id()
	}
	s.videos[v.ID] = v
	return v
}

func (s *Store) AddQuestion(q models.QuizQuestion) models.QuizQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == 0 {
		q.ID = s.id()
	}
	s.questions[q.ID] = q
	return q
}

func (s *Store) AddPost(p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.posts[p.ID] = p
	return p
}

func (s *Store) AddComment(c models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.id()
	}
	s.comments = append(s.comments, c)
	return c
}

func (s *Store) CourseVideos(_ context.Context, courseID int64) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Video
	for _, v := range s.videos {
		if v.CourseID == courseID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CountCourseVideos(_ context.Context, courseID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := 0
	for _, v := range s.videos {
		if v.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountWatchedVideos(_ context.Context, courseID int64, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := 0
	for k := range s.watched {
		if k.email != email {
			continue
		}
		if v, ok := s.videos[k.videoID]; ok && v.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (s *Store) MarkVideoWatched(_ context.Context, email string, videoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.videos[videoID]; !ok {
		return learning.ErrUnknownVideo
	}
	k := watchKey{email: email, videoID: videoID}
	if _, ok := s.watched[k]; !ok {
		s.watched[k] = time.Now()
	}
	return nil
}

func (s *Store) WatchedVideoIDs(_ context.Context, courseID int64, email string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []int64{}
	for k := range s.watched {
		if v, ok := s.videos[k.videoID]; ok && k.email == email && v.CourseID == courseID {
			out = append(out, k.videoID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (s *Store) CourseQuestions(_ context.Context, courseID int64) ([]models.QuizQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.QuizQuestion
	for _, q := range s.questions {
		if q.CourseID == courseID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) InsertAttempt(_ context.Context, email string, courseID int64, score, maxAttempts int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := 0
	for _, a := range s.attempts {
		if a.UserEmail == email && a.CourseID == courseID {
			n++
		}
	}
	if n >= maxAttempts {
		return 0, learning.ErrAttemptLimit
	}
	s.attempts = append(s.attempts, models.QuizAttempt{
		ID: s.id(), UserEmail: email, CourseID: courseID, Score: score, AttemptNo: n + 1, CreatedAt: time.Now(),
	})
	return n + 1, nil
}

func (s *Store) AttemptStats(_ context.Context, email string, courseID int64) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, 0, s.Err
	}
	count, best := 0, 0
	for _, a := range s.attempts {
		if a.UserEmail == email && a.CourseID == courseID {
			count++
			if a.Score > best {
				best = a.Score
			}
		}
	}
	return count, best, nil
}

func (s *Store) InsertRegistration(_ context.Context, reg models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	k := regKey{activityID: reg.ActivityID, userID: reg.UserID}
	if _, ok := s.registrations[k]; ok {
		return nil
	}
	reg.ID = s.id()
	reg.CreatedAt = time.Now()
	s.registrations[k] = reg
	return nil
}

func (s *Store) RegistrationExists(_ context.Context, activityID int64, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.registrations[regKey{activityID: activityID, userID: userID}]
	return ok, nil
}

func (s *Store) RegistrationCount(activityID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.registrations {
		if k.activityID == activityID {
			n++
		}
	}
	return n
}

func (s *Store) InsertNotification(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	n.ID = s.id()
	n.CreatedAt = time.Now()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *Store) Notifications(recipientID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) EngagementCounts(_ context.Context, excluded []models.Role) ([]models.EngagementCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	skip := map[models.Role]bool{}
	for _, r := range excluded {
		skip[r] = true
	}
	var out []models.EngagementCounts
	for _, u := range s.users {
		if skip[u.Role] {
			continue
		}
		c := models.EngagementCounts{UserID: u.UserID, Name: u.Name, ProfilePic: u.ProfilePic, Role: u.Role}
		for k := range s.watched {
			if _, ok := s.videos[k.videoID]; ok && k.email == u.Email {
				c.CompletedVideos++
			}
		}
		for _, a := range s.attempts {
			if a.UserEmail == u.Email {
				c.QuizScoreSum += a.Score
			}
		}
		for _, p := range s.posts {
			if p.UserID == u.UserID {
				c.Posts++
			}
		}
		for _, cm := range s.comments {
			if cm.UserID == u.UserID {
				c.Comments++
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

var ErrBroken = errors.New("memstore: storage unavailable")
