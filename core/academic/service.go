package academic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
)

type (
	Repository interface {
		CreateAcademicData(d AcademicData) (AcademicData, error)
		QueryAllAcademicData() ([]AcademicData, error)
		CreatePrediction(p PredictionResult) (PredictionResult, error)
		QueryAllPredictions() ([]PredictionResult, error)
	}

	Service struct {
		repo         Repository
		alertSvc     *alert.Service
		narrativeSvc core.NarrativeService
		logger       core.Logger
	}
)

func NewService(repo Repository, alertSvc *alert.Service, narrativeSvc core.NarrativeService, logger core.Logger) *Service {
	return &Service{
		repo:         repo,
		alertSvc:     alertSvc,
		narrativeSvc: narrativeSvc,
		logger:       logger,
	}
}

// SubmitAndPredict persists the submission, classifies it, enriches the
// verdict with a generated narrative (deterministic fallback on any failure)
// and persists the resulting prediction. A HIGH verdict raises a risk alert.
//
// Writes are append-only and non-transactional: the AcademicData write always
// precedes its PredictionResult write, and readers must tolerate data without
// a prediction yet.
func (svc *Service) SubmitAndPredict(ctx context.Context, ns NewSubmission) (PredictionResult, error) {
	data := AcademicData{
		ID:              core.NewID(),
		StudentID:       ns.StudentID,
		StudentName:     ns.StudentName,
		Attendance:      ns.Attendance,
		InternalMarks:   ns.InternalMarks,
		AssignmentScore: ns.AssignmentScore,
		Timestamp:       time.Now().UTC(),
	}
	data, err := svc.repo.CreateAcademicData(data)
	if err != nil {
		return PredictionResult{}, errors.Wrap(err, "saving academic data")
	}

	if _, err = svc.alertSvc.Add(alert.NewNotification{
		Title:     "Registry Sync",
		Message:   fmt.Sprintf("%s updated academic metrics.", data.StudentName),
		Type:      alert.TypeSystem,
		StudentID: data.StudentID,
	}); err != nil {
		return PredictionResult{}, errors.Wrap(err, "raising sync notification")
	}

	clf := Classify(data.Attendance, data.InternalMarks, data.AssignmentScore)

	narrative := svc.generateNarrative(ctx, data, clf)

	pred := PredictionResult{
		ID:               core.NewID(),
		DataID:           data.ID,
		RiskLevel:        clf.RiskLevel,
		RiskScore:        clf.RiskScore,
		PerformanceScore: clf.PerformanceScore,
		Summary:          narrative.Summary,
		Recommendations:  narrative.Recommendations,
	}
	pred, err = svc.repo.CreatePrediction(pred)
	if err != nil {
		return PredictionResult{}, errors.Wrap(err, "saving prediction")
	}

	if pred.RiskLevel == RiskHigh {
		if _, err = svc.alertSvc.Add(alert.NewNotification{
			Title: "CRITICAL: HIGH RISK DETECTED",
			Message: fmt.Sprintf(
				"URGENT: %s has been flagged as HIGH RISK (Score: %d). Faculty intervention required.",
				data.StudentName, pred.PerformanceScore,
			),
			Type:      alert.TypeRiskAlert,
			StudentID: data.StudentID, // the student, not the data record
		}); err != nil {
			return PredictionResult{}, errors.Wrap(err, "raising risk alert")
		}
	}
	return pred, nil
}

// generateNarrative asks the narrative service for the report text. Any
// failure resolves to the deterministic fallback; a single attempt, no
// retries. A malformed narrative counts as a failed call.
func (svc *Service) generateNarrative(ctx context.Context, data AcademicData, clf Classification) core.Narrative {
	narrative, err := svc.narrativeSvc.Generate(ctx, core.NarrativeRequest{
		PerformanceScore: clf.PerformanceScore,
		RiskLevel:        string(clf.RiskLevel),
		Attendance:       data.Attendance,
		InternalMarks:    data.InternalMarks,
		AssignmentScore:  data.AssignmentScore,
	})
	if err == nil && (narrative.Summary == "" || len(narrative.Recommendations) != core.RecommendationCount) {
		err = errors.New("malformed narrative")
	}
	if err != nil {
		// diagnostics only; the caller always gets a usable result
		svc.logger.Warn(fmt.Sprintf("narrative generation failed for data %s, using fallback: %v", data.ID, err), err)
		return FallbackNarrative(clf)
	}
	return narrative
}

// FallbackNarrative is the fixed report text used whenever narrative
// generation is unavailable or fails.
func FallbackNarrative(clf Classification) core.Narrative {
	return core.Narrative{
		Summary: fmt.Sprintf("Automated assessment: Performance Score %d%%. Risk Level: %s.", clf.PerformanceScore, clf.RiskLevel),
		Recommendations: []string{
			"Immediate academic counseling",
			"Weekly attendance monitoring",
			"Targeted subject improvement",
		},
	}
}

// StudentProfiles derives one profile per student: the submission with the
// latest timestamp, with its prediction attached when one exists. Recomputed
// from the authoritative collections on every call.
func (svc *Service) StudentProfiles() ([]FullProfile, error) {
	data, err := svc.repo.QueryAllAcademicData()
	if err != nil {
		return nil, errors.Wrap(err, "querying academic data")
	}
	preds, err := svc.repo.QueryAllPredictions()
	if err != nil {
		return nil, errors.Wrap(err, "querying predictions")
	}

	latest := make(map[string]AcademicData, len(data))
	for _, d := range data {
		if cur, ok := latest[d.StudentID]; !ok || d.Timestamp.After(cur.Timestamp) {
			latest[d.StudentID] = d
		}
	}

	profiles := make([]FullProfile, 0, len(latest))
	for _, d := range latest {
		profile := FullProfile{AcademicData: d}
		for i := range preds {
			if preds[i].DataID == d.ID {
				pred := preds[i]
				profile.Prediction = &pred
				break
			}
		}
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if !profiles[i].Timestamp.Equal(profiles[j].Timestamp) {
			return profiles[i].Timestamp.After(profiles[j].Timestamp)
		}
		return profiles[i].StudentID < profiles[j].StudentID
	})
	return profiles, nil
}

// StudentHistory returns all of a student's submissions, newest first.
func (svc *Service) StudentHistory(studentID string) ([]AcademicData, error) {
	data, err := svc.repo.QueryAllAcademicData()
	if err != nil {
		return nil, errors.Wrap(err, "querying academic data")
	}
	history := make([]AcademicData, 0)
	for _, d := range data {
		if d.StudentID == studentID {
			history = append(history, d)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Timestamp.After(history[j].Timestamp) })
	return history, nil
}

// PredictionForData finds the prediction linked to a data record. Absence is
// a normal state, not an error.
func (svc *Service) PredictionForData(dataID string) (PredictionResult, bool, error) {
	preds, err := svc.repo.QueryAllPredictions()
	if err != nil {
		return PredictionResult{}, false, errors.Wrap(err, "querying predictions")
	}
	for _, p := range preds {
		if p.DataID == dataID {
			return p, true, nil
		}
	}
	return PredictionResult{}, false, nil
}
