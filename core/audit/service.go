package audit

import (
	"time"

	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/user"
)

type (
	Repository interface {
		// CreateEntry prepends the entry and evicts entries past MaxEntries.
		CreateEntry(e Entry) (Entry, error)
		// QueryAllEntries returns entries newest first.
		QueryAllEntries() ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LogAction appends an audit entry for an action `actor` performed on a target.
func (svc *Service) LogAction(actor user.User, action, targetID, targetName string) (Entry, error) {
	e := Entry{
		ID:         core.NewID(),
		AdminID:    actor.ID,
		AdminName:  actor.Name,
		Action:     action,
		TargetID:   targetID,
		TargetName: targetName,
		Timestamp:  time.Now().UTC(),
	}
	e, err := svc.repo.CreateEntry(e)
	if err != nil {
		return Entry{}, errors.Wrap(err, "creating audit entry")
	}
	return e, nil
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}
