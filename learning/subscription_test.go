package learning_test

import (
	"context"
	"testing"

	"LearningHubBackend/database/memstore"
	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeTwiceStaysSubscribed(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	gate := learning.NewSubscriptionGate(store)
	amy := models.User{UserID: "STU-amy", Name: "Amy", Email: "amy@hub.test"}

	ok, err := gate.IsSubscribed(ctx, 3, amy.UserID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, gate.Subscribe(ctx, 3, amy))
	ok, err = gate.IsSubscribed(ctx, 3, amy.UserID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, gate.Subscribe(ctx, 3, amy))
	ok, err = gate.IsSubscribed(ctx, 3, amy.UserID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, store.RegistrationCount(3))
}

func TestSubscriptionIsKeyedByLearnerID(t *testing.T) {
	ctx := context.Background()
	gate := learning.NewSubscriptionGate(memstore.New())

	require.NoError(t, gate.Subscribe(ctx, 1, models.User{UserID: "STU-1", Name: "Sam"}))

	ok, err := gate.IsSubscribed(ctx, 1, "STU-2")
	require.NoError(t, err)
	assert.False(t, ok, "same display name, different learner")

	ok, err = gate.IsSubscribed(ctx, 2, "STU-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
