package alert

import "time"

// Notification types
const (
	TypeRegistration = "REGISTRATION"
	TypeRiskAlert    = "RISK_ALERT"
	TypeSystem       = "SYSTEM"
)

// Dashboard tabs a notification may deep-link to.
const (
	TabOverview      = "OVERVIEW"
	TabRegistrations = "REGISTRATIONS"
)

// MaxNotifications caps the collection; the oldest entries are evicted first,
// regardless of read status.
const MaxNotifications = 50

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"` // UTC
	Read      bool      `json:"read"`
	LinkTab   string    `json:"link_tab,omitempty"`
	StudentID string    `json:"student_id,omitempty"`
}

// NewNotification contains information needed to raise a Notification.
type NewNotification struct {
	Title     string
	Message   string
	Type      string
	LinkTab   string
	StudentID string
}
