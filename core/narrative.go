package core

import "context"

type (
	// NarrativeRequest carries the classifier's verdict to the text-generation
	// service. The remote only ever produces prose; its numeric judgment is
	// never read back.
	NarrativeRequest struct {
		PerformanceScore int
		RiskLevel        string
		Attendance       float64
		InternalMarks    float64
		AssignmentScore  float64
	}

	// Narrative is the generated report text: a summary and exactly 3
	// recommendations. Implementations must return an error instead of a
	// partial Narrative.
	Narrative struct {
		Summary         string   `json:"summary"`
		Recommendations []string `json:"recommendations"`
	}

	// NarrativeService is any service that can produce a Narrative for a
	// classified submission. Callers treat every error as "use the fallback".
	NarrativeService interface {
		Generate(ctx context.Context, req NarrativeRequest) (Narrative, error)
	}
)

// RecommendationCount is the number of recommendations a well-formed
// Narrative carries.
const RecommendationCount = 3
