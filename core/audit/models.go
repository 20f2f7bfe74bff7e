package audit

import "time"

// MaxEntries caps the log; the oldest entries are evicted first.
const MaxEntries = 100

// Entry records one administrative action.
type Entry struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"admin_id"`
	AdminName  string    `json:"admin_name"`
	Action     string    `json:"action"`
	TargetID   string    `json:"target_id"`
	TargetName string    `json:"target_name"`
	Timestamp  time.Time `json:"timestamp"` // UTC
}
