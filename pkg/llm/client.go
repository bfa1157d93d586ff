// Package llm is the gateway to the Gemini generateContent API. It is the
// only component that performs LLM I/O: callers use typed per-task methods
// and get back decoded structs or a classified *CallError, never raw HTTP
// details or provider response envelopes.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/models"
)

const providerName = "gemini"

// Temperature defaults per task family. Generation wants variety, analysis
// wants repeatability. Interview calls carry their own temperature.
const (
	generationTemperature = 0.7
	analysisTemperature   = 0.3
)

// Client talks to one Gemini model. Safe for concurrent use.
type Client struct {
	httpClient      *http.Client
	logger          *slog.Logger
	apiKey          string
	model           string
	baseURL         string
	maxOutputTokens int
	timeout         time.Duration
}

// NewClient builds a gateway client from resolved configuration.
func NewClient(cfg *config.LLMConfig) *Client {
	return &Client{
		httpClient:      &http.Client{},
		logger:          slog.With("component", "llm"),
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		maxOutputTokens: cfg.MaxOutputTokens,
		timeout:         cfg.Timeout,
	}
}

// Provider returns the provider label recorded on analysis rows.
func (c *Client) Provider() string { return providerName }

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// GenerateQuestionnaire asks the model to design the stakeholder interview
// guide for a business brief. The returned doc keeps the per-phase question
// groups; flattening is the questionnaire builder's job.
func (c *Client) GenerateQuestionnaire(ctx context.Context, brief models.BusinessBrief) (*QuestionnaireDoc, error) {
	if field := brief.Validate(); field != "" {
		return nil, newCallError(TaskQuestionnaireBuild, KindInvalidInput, fmt.Errorf("missing %s", field))
	}
	system, user := questionnairePrompt(brief)
	doc, err := c.run(ctx, callSpec{
		task:        TaskQuestionnaireBuild,
		system:      system,
		user:        user,
		temperature: generationTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out QuestionnaireDoc
	if err := c.decode(TaskQuestionnaireBuild, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePersonas fabricates req.Count personas for one stakeholder role.
// Returned personas carry no ID and no stakeholder type; the caller stamps
// identity.
func (c *Client) GeneratePersonas(ctx context.Context, req PersonaBatchRequest) ([]models.Persona, error) {
	if req.Count < 1 {
		return nil, newCallError(TaskPersonaBatch, KindInvalidInput, fmt.Errorf("count %d out of range", req.Count))
	}
	if req.Stakeholder.Name == "" {
		return nil, newCallError(TaskPersonaBatch, KindInvalidInput, errors.New("stakeholder name required"))
	}
	system, user := personaBatchPrompt(req)
	doc, err := c.run(ctx, callSpec{
		task:        TaskPersonaBatch,
		system:      system,
		user:        user,
		temperature: generationTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		Personas []models.Persona `json:"personas"`
	}
	if err := c.decode(TaskPersonaBatch, doc, &out); err != nil {
		return nil, err
	}
	return out.Personas, nil
}

// ConductInterview runs one persona through its stakeholder's questions.
// Exactly one attempt per call: the interview fanout owns the retry loop so
// it can adjust temperature and back off between attempts.
func (c *Client) ConductInterview(ctx context.Context, req InterviewRequest) (*InterviewDoc, error) {
	if len(req.Stakeholder.Questions) == 0 {
		return nil, newCallError(TaskInterview, KindInvalidInput, errors.New("no questions for stakeholder"))
	}
	system, user := interviewPrompt(req)
	doc, err := c.run(ctx, callSpec{
		task:        TaskInterview,
		system:      system,
		user:        user,
		temperature: req.Temperature,
		maxAttempts: 1,
	})
	if err != nil {
		return nil, err
	}
	var out InterviewDoc
	if err := c.decode(TaskInterview, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractThemes runs one theme-extraction call over a corpus or window.
func (c *Client) ExtractThemes(ctx context.Context, req ThemeRequest) (*ThemeResult, error) {
	if strings.TrimSpace(req.Corpus) == "" {
		return nil, newCallError(TaskThemeExtraction, KindInvalidInput, errors.New("empty corpus"))
	}
	system, user := themePrompt(req)
	doc, err := c.run(ctx, callSpec{
		task:        TaskThemeExtraction,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out ThemeResult
	if err := c.decode(TaskThemeExtraction, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetectPatterns surfaces cross-stakeholder patterns in the corpus.
func (c *Client) DetectPatterns(ctx context.Context, corpus string) (*PatternResult, error) {
	if strings.TrimSpace(corpus) == "" {
		return nil, newCallError(TaskPatternDetection, KindInvalidInput, errors.New("empty corpus"))
	}
	system, user := patternPrompt(corpus)
	doc, err := c.run(ctx, callSpec{
		task:        TaskPatternDetection,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out PatternResult
	if err := c.decode(TaskPatternDetection, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeStakeholders maps the stakeholder landscape found in the corpus.
func (c *Client) AnalyzeStakeholders(ctx context.Context, corpus string) (*models.StakeholderIntelligence, error) {
	if strings.TrimSpace(corpus) == "" {
		return nil, newCallError(TaskStakeholderAnalysis, KindInvalidInput, errors.New("empty corpus"))
	}
	system, user := stakeholderPrompt(corpus)
	doc, err := c.run(ctx, callSpec{
		task:        TaskStakeholderAnalysis,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out models.StakeholderIntelligence
	if err := c.decode(TaskStakeholderAnalysis, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeSentiment scores corpus-wide sentiment. The caller normalises the
// returned distribution.
func (c *Client) AnalyzeSentiment(ctx context.Context, corpus string) (*SentimentResult, error) {
	if strings.TrimSpace(corpus) == "" {
		return nil, newCallError(TaskSentimentAnalysis, KindInvalidInput, errors.New("empty corpus"))
	}
	system, user := sentimentPrompt(corpus)
	doc, err := c.run(ctx, callSpec{
		task:        TaskSentimentAnalysis,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out SentimentResult
	if err := c.decode(TaskSentimentAnalysis, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SynthesizePersonas asks for representative personas as raw dictionaries.
// Normalisation and validation happen in the analysis stage.
func (c *Client) SynthesizePersonas(ctx context.Context, corpus string) (*PersonaSynthesisResult, error) {
	if strings.TrimSpace(corpus) == "" {
		return nil, newCallError(TaskPersonaSynthesis, KindInvalidInput, errors.New("empty corpus"))
	}
	system, user := personaSynthesisPrompt(corpus)
	doc, err := c.run(ctx, callSpec{
		task:        TaskPersonaSynthesis,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out PersonaSynthesisResult
	if err := c.decode(TaskPersonaSynthesis, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SynthesizeInsights turns accumulated analysis artefacts into insights.
func (c *Client) SynthesizeInsights(ctx context.Context, req InsightRequest) (*InsightResult, error) {
	system, user := insightPrompt(req)
	doc, err := c.run(ctx, callSpec{
		task:        TaskInsightSynthesis,
		system:      system,
		user:        user,
		temperature: analysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	var out InsightResult
	if err := c.decode(TaskInsightSynthesis, doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateResponse produces one standalone in-character answer.
func (c *Client) GenerateResponse(ctx context.Context, req SingleResponseRequest) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", newCallError(TaskSingleResponse, KindInvalidInput, errors.New("question required"))
	}
	system, user := singleResponsePrompt(req)
	doc, err := c.run(ctx, callSpec{
		task:        TaskSingleResponse,
		system:      system,
		user:        user,
		temperature: generationTemperature,
	})
	if err != nil {
		return "", err
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := c.decode(TaskSingleResponse, doc, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

// run executes the retry loop and records call metrics.
func (c *Client) run(ctx context.Context, spec callSpec) (string, error) {
	start := time.Now()
	doc, err := c.call(ctx, spec)
	metrics.ObserveLLMCall(string(spec.task), llmOutcome(err), time.Since(start))
	return doc, err
}

// decode unmarshals a schema-validated doc into the task's typed result.
// A decode failure past schema validation still counts as malformed output.
func (c *Client) decode(task TaskKind, doc string, out any) error {
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return newCallError(task, KindMalformedOutput, fmt.Errorf("decode %s output: %w", task, err))
	}
	return nil
}

func llmOutcome(err error) string {
	if err == nil {
		return "success"
	}
	if kind := ErrorKindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}
