package kvstore

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

	var notifs []alert.Notification
	if err := repo.db.load(notificationsKey, &notifs); err != nil {
		return alert.Notification{}, err
	}
	notifs = core.BoundedPrepend(notifs, n, alert.MaxNotifications)
	if err := repo.db.store(notificationsKey, notifs); err != nil {
		return alert.Notification{}, err
	}
	return n, nil
}

func (repo *alertRepository) QueryAllNotifications() ([]alert.Notification, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var notifs []alert.Notification
	if err := repo.db.load(notificationsKey, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

func (repo *alertRepository) MarkNotificationRead(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var notifs []alert.Notification
	if err := repo.db.load(notificationsKey, &notifs); err != nil {
		return err
	}
	for i := range notifs {
		if notifs[i].ID == id {
			notifs[i].Read = true
			return repo.db.store(notificationsKey, notifs)
		}
	}
	return nil // unknown id is a no-op
}

func (repo *alertRepository) MarkAllNotificationsRead() error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var notifs []alert.Notification
	if err := repo.db.load(notificationsKey, &notifs); err != nil {
		return err
	}
	for i := range notifs {
		notifs[i].Read = true
	}
	return repo.db.store(notificationsKey, notifs)
}
