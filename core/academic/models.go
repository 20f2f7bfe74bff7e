package academic

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edusentry/backend/core"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// AcademicData is one metrics submission. Immutable once written; a student
// accumulates many over time.
type AcademicData struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"student_id"`
	StudentName     string    `json:"student_name"` // denormalized at submission time
	Attendance      float64   `json:"attendance"`
	InternalMarks   float64   `json:"internal_marks"`
	AssignmentScore float64   `json:"assignment_score"`
	Timestamp       time.Time `json:"timestamp"` // UTC
}

// PredictionResult is one classification event, linked 1:1 to the
// AcademicData it was computed from. Immutable once written.
type PredictionResult struct {
	ID               string    `json:"id"`
	DataID           string    `json:"data_id"`
	RiskLevel        RiskLevel `json:"risk_level"`
	RiskScore        int       `json:"risk_score"`
	PerformanceScore int       `json:"performance_score"`
	Summary          string    `json:"summary"`
	Recommendations  []string  `json:"recommendations"`
}

// FullProfile is a derived view: a student's most recent submission plus its
// prediction, when classification has run for that record.
type FullProfile struct {
	AcademicData
	Prediction *PredictionResult `json:"prediction,omitempty"`
}

// NewSubmission contains information needed to submit academic metrics.
type NewSubmission struct {
	StudentID       string  `json:"student_id" validate:"required"`
	StudentName     string  `json:"student_name" validate:"required"`
	Attendance      float64 `json:"attendance" validate:"metric"`
	InternalMarks   float64 `json:"internal_marks" validate:"metric"`
	AssignmentScore float64 `json:"assignment_score" validate:"metric"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.StudentName = core.CleanString(ns.StudentName)
	return validate.Struct(ns)
}
