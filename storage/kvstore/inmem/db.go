package inmemdb

import (
	"sync"

	"github.com/edusentry/backend/core/academic"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/audit"
	"github.com/edusentry/backend/core/feedback"
	"github.com/edusentry/backend/core/user"
)

// DB is a map/slice-backed store with the same collection semantics as the
// sqlite store, minus durability. Used by tests and demo runs.
type DB struct {
	mu sync.RWMutex

	users         []user.User
	academicData  []academic.AcademicData
	predictions   []academic.PredictionResult
	notifications []alert.Notification
	auditEntries  []audit.Entry
	feedback      []feedback.Feedback
}

func Open() *DB {
	return &DB{}
}
