package narrativesvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
)

// overridden in tests
var baseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	ErrNotConfigured = errors.New("narrative service not configured")

	errEmptyResponse = errors.New("empty generation response")
	errIncomplete    = errors.New("incomplete narrative")
)

type geminiService struct {
	client *resty.Client
	model  string
	key    string
}

var _ core.NarrativeService = (*geminiService)(nil)

// NewGeminiService builds the Gemini-backed narrative generator. With no API
// key configured the service runs in fallback-only mode: every Generate call
// errors and callers substitute the deterministic narrative.
func NewGeminiService(conf *core.Config) core.NarrativeService {
	return &geminiService{
		client: resty.New().SetBaseURL(baseURL),
		model:  conf.Gemini.Model,
		key:    conf.Gemini.APIKey,
	}
}

type (
	generatePayload struct {
		SystemInstruction *content         `json:"system_instruction,omitempty"`
		Contents          []content        `json:"contents"`
		GenerationConfig  generationConfig `json:"generationConfig"`
	}
	content struct {
		Parts []part `json:"parts"`
	}
	part struct {
		Text string `json:"text"`
	}
	generationConfig struct {
		ResponseMimeType string          `json:"responseMimeType"`
		ResponseSchema   json.RawMessage `json:"responseSchema"`
	}
	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

var responseSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"summary": {"type": "STRING"},
		"recommendations": {"type": "ARRAY", "items": {"type": "STRING"}}
	},
	"required": ["summary", "recommendations"]
}`)

func (svc *geminiService) Generate(ctx context.Context, req core.NarrativeRequest) (core.Narrative, error) {
	if svc.key == "" {
		return core.Narrative{}, ErrNotConfigured
	}

	payload := generatePayload{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction(req)}}},
		Contents:          []content{{Parts: []part{{Text: "Generate an academic audit report for this student."}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	var res generateResponse
	resp, err := svc.client.R().
		SetContext(ctx).
		SetQueryParam("key", svc.key).
		SetBody(payload).
		SetResult(&res).
		Post(fmt.Sprintf("/models/%s:generateContent", svc.model))
	if err != nil {
		return core.Narrative{}, errors.Wrap(err, "calling generation api")
	}
	if resp.IsError() {
		return core.Narrative{}, errors.Errorf("generation api returned %s", resp.Status())
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return core.Narrative{}, errEmptyResponse
	}

	// only the prose is accepted; the request's numbers are authoritative
	var narrative core.Narrative
	if err = json.Unmarshal([]byte(res.Candidates[0].Content.Parts[0].Text), &narrative); err != nil {
		return core.Narrative{}, errors.Wrap(err, "decoding narrative")
	}
	if narrative.Summary == "" || len(narrative.Recommendations) != core.RecommendationCount {
		return core.Narrative{}, errIncomplete
	}
	return narrative, nil
}

func systemInstruction(req core.NarrativeRequest) string {
	return fmt.Sprintf(`You are a precision academic auditor.

Calculated Performance Score: %d/100
Attendance: %.0f%%
Internal Marks: %.0f/100
Assignment Score: %.0f/100

Risk Level: %s

Return:
- Professional summary
- Exactly 3 actionable recommendations`,
		req.PerformanceScore, req.Attendance, req.InternalMarks, req.AssignmentScore, req.RiskLevel)
}
