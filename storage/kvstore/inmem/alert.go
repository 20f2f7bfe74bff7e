package inmemdb

import (
	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
)

type alertRepository struct {
	db *DB
}

var _ alert.Repository = (*alertRepository)(nil) // interface compliance check

func NewAlertRepository(db *DB) alert.Repository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) CreateNotification(n alert.Notification) (alert.Notification, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.notifications = core.BoundedPrepend(repo.db.notifications, n, alert.MaxNotifications)
	return n, nil
}

func (repo *alertRepository) QueryAllNotifications() ([]alert.Notification, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	notifs := make([]alert.Notification, len(repo.db.notifications))
	copy(notifs, repo.db.notifications)
	return notifs, nil
}

func (repo *alertRepository) MarkNotificationRead(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.notifications {
		if repo.db.notifications[i].ID == id {
			repo.db.notifications[i].Read = true
			break
		}
	}
	return nil // unknown id is a no-op
}

func (repo *alertRepository) MarkAllNotificationsRead() error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.notifications {
		repo.db.notifications[i].Read = true
	}
	return nil
}
