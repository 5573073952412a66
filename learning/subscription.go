package learning

import (
	"context"

	"LearningHubBackend/models"
)

type RegistrationStore interface {
	// InsertRegistration is a no-op when the learner is already registered.
	InsertRegistration(ctx context.Context, reg models.Registration) error
	RegistrationExists(ctx context.Context, activityID int64, userID string) (bool, error)
}

type SubscriptionGate struct {
	store RegistrationStore
}

func NewSubscriptionGate(store RegistrationStore) *SubscriptionGate {
	return &SubscriptionGate{store: store}
}

func (g *SubscriptionGate) Subscribe(ctx context.Context, activityID int64, learner models.User) error {
	return g.store.InsertRegistration(ctx, models.Registration{
		ActivityID:   activityID,
		UserID:       learner.UserID,
		StudentName:  learner.Name,
		StudentEmail: learner.Email,
	})
}

func (g *SubscriptionGate) IsSubscribed(ctx context.Context, activityID int64, userID string) (bool, error) {
	return g.store.RegistrationExists(ctx, activityID, userID)
}
