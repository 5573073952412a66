package learning

import (
	"context"
	"sync"
	"time"

	"LearningHubBackend/metrics"
	"LearningHubBackend/models"

	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

type NotificationStore interface {
	InsertNotification(ctx context.Context, n models.Notification) error
}

// Notifier writes notifications in the background. The action that caused a
// notification never waits on it and never fails because of it.
type Notifier struct {
	store NotificationStore
	log   *zap.Logger
	wg    sync.WaitGroup
}

func NewNotifier(store NotificationStore, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{store: store, log: log}
}

func (n *Notifier) Emit(note models.Notification) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.store.InsertNotification(ctx, note); err != nil {
			metrics.NotificationFailures.Inc()
			n.log.Warn("notification dropped",
				zap.String("recipient", note.RecipientID),
				zap.String("type", string(note.Type)),
				zap.Error(err))
		}
	}()
}

// NotifyOwner emits to ownerID unless the actor is the owner.
func (n *Notifier) NotifyOwner(ownerID string, actor models.User, kind models.NotificationKind, message string) bool {
	if ownerID == "" || ownerID == actor.UserID {
		return false
	}
	n.Emit(models.Notification{
		RecipientID: ownerID,
		SenderName:  actor.Name,
		SenderPic:   actor.ProfilePic,
		Message:     message,
		Type:        kind,
	})
	return true
}

// Wait blocks until all emitted notifications have been handled.
func (n *Notifier) Wait() { n.wg.Wait() }
