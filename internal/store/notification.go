package store

import (
	"github.com/google/uuid"

	"github.com/flicky/eatsy-store/internal/model"
)

// Notify appends a notification and schedules its removal after the
// configured TTL. It returns the new notification id. After Close the
// notification is removed again at once.
func (s *Store) Notify(message string, typ model.NotificationType) string {
	if typ == "" {
		typ = model.NotificationInfo
	}
	n := model.Notification{ID: uuid.NewString(), Message: message, Type: typ}
	s.Dispatch(AddNotification{Notification: n})
	if !s.expirer.Schedule(n.ID) {
		// expirer stopped by Close
		s.removeNotification(n.ID)
		s.log.Debug("notification dropped after close", "notification_id", n.ID)
		return n.ID
	}
	s.metrics.ObserveNotification(string(typ))
	s.log.Debug("notification added", "notification_id", n.ID, "type", typ)
	return n.ID
}

// DismissNotification removes a notification before it expires. Unknown or
// already expired ids are ignored.
func (s *Store) DismissNotification(id string) {
	s.expirer.Cancel(id)
	s.removeNotification(id)
}

func (s *Store) Notifications() []model.Notification {
	return s.Snapshot().Notifications
}

func (s *Store) expireNotification(id string) {
	s.removeNotification(id)
}

func (s *Store) removeNotification(id string) {
	s.update(func(st State) (State, bool) {
		for _, n := range st.Notifications {
			if n.ID == id {
				return Reduce(st, RemoveNotification{ID: id}), true
			}
		}
		return st, false
	})
}
