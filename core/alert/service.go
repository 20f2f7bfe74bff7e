package alert

import (
	"time"

	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
)

type (
	Repository interface {
		// CreateNotification prepends the notification and evicts entries past
		// MaxNotifications.
		CreateNotification(n Notification) (Notification, error)
		// QueryAllNotifications returns notifications newest first.
		QueryAllNotifications() ([]Notification, error)
		// MarkNotificationRead is a no-op on an unknown id.
		MarkNotificationRead(id string) error
		MarkAllNotificationsRead() error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Add(nn NewNotification) (Notification, error) {
	n := Notification{
		ID:        core.NewID(),
		Title:     nn.Title,
		Message:   nn.Message,
		Type:      nn.Type,
		Timestamp: time.Now().UTC(),
		LinkTab:   nn.LinkTab,
		StudentID: nn.StudentID,
	}
	n, err := svc.repo.CreateNotification(n)
	if err != nil {
		return Notification{}, errors.Wrap(err, "creating notification")
	}
	return n, nil
}

func (svc *Service) QueryAll() ([]Notification, error) {
	return svc.repo.QueryAllNotifications()
}

func (svc *Service) MarkRead(id string) error {
	return svc.repo.MarkNotificationRead(id)
}

func (svc *Service) MarkAllRead() error {
	return svc.repo.MarkAllNotificationsRead()
}
