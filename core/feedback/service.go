package feedback

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/user"
)

var errEmptyMessage = errors.New("feedback message cannot be empty")

type (
	Repository interface {
		// CreateFeedback prepends the feedback; the collection is unbounded.
		CreateFeedback(f Feedback) (Feedback, error)
		// QueryAllFeedback returns feedback newest first.
		QueryAllFeedback() ([]Feedback, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Add(student user.User, message string) (Feedback, error) {
	message = core.CleanString(message)
	if message == "" {
		return Feedback{}, core.NewValidationError(errEmptyMessage, core.FieldError{Field: "message", Error: errEmptyMessage.Error()})
	}
	f := Feedback{
		ID:          core.NewID(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Message:     message,
		Timestamp:   time.Now().UTC(),
	}
	f, err := svc.repo.CreateFeedback(f)
	if err != nil {
		return Feedback{}, pkgerrors.Wrap(err, "creating feedback")
	}
	return f, nil
}

func (svc *Service) QueryAll() ([]Feedback, error) {
	return svc.repo.QueryAllFeedback()
}
