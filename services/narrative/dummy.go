package narrativesvc

import (
	"context"

	"github.com/edusentry/backend/core"
)

// DummyService returns a canned narrative (or a fixed error); used in tests.
// Requests are recorded for assertions.
type DummyService struct {
	Narrative core.Narrative
	Err       error
	Requests  []core.NarrativeRequest
}

var _ core.NarrativeService = (*DummyService)(nil)

func NewDummyService(narrative core.Narrative) *DummyService {
	return &DummyService{Narrative: narrative}
}

// NewFailingService simulates an unavailable remote: every call errors.
func NewFailingService(err error) *DummyService {
	return &DummyService{Err: err}
}

func (svc *DummyService) Generate(_ context.Context, req core.NarrativeRequest) (core.Narrative, error) {
	svc.Requests = append(svc.Requests, req)
	if svc.Err != nil {
		return core.Narrative{}, svc.Err
	}
	return svc.Narrative, nil
}
