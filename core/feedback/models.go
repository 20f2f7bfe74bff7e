package feedback

import "time"

// Feedback is one message a student left for the faculty. Append-only, unbounded.
type Feedback struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"` // UTC
}
