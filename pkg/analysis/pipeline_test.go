package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// fakeAnalysisGateway scripts each sub-stage per test and records the order
// the sub-stages were invoked in. Nil script functions fall back to small
// canned results.
type fakeAnalysisGateway struct {
	mu sync.Mutex

	themeFn       func(req llm.ThemeRequest) (*llm.ThemeResult, error)
	patternFn     func(corpus string) (*llm.PatternResult, error)
	stakeholderFn func(corpus string) (*models.StakeholderIntelligence, error)
	sentimentFn   func(corpus string) (*llm.SentimentResult, error)
	personaFn     func(corpus string) (*llm.PersonaSynthesisResult, error)
	insightFn     func(req llm.InsightRequest) (*llm.InsightResult, error)

	themeCalls   []llm.ThemeRequest
	insightCalls []llm.InsightRequest
	callOrder    []string
}

func (f *fakeAnalysisGateway) record(stage string) {
	f.mu.Lock()
	f.callOrder = append(f.callOrder, stage)
	f.mu.Unlock()
}

func (f *fakeAnalysisGateway) ExtractThemes(_ context.Context, req llm.ThemeRequest) (*llm.ThemeResult, error) {
	f.record(StageThemeExtraction)
	f.mu.Lock()
	f.themeCalls = append(f.themeCalls, req)
	f.mu.Unlock()
	if f.themeFn != nil {
		return f.themeFn(req)
	}
	return &llm.ThemeResult{
		Themes: []models.Theme{{Name: "Tooling friction", Frequency: 3, Statements: []string{"CI takes forever"}}},
		EnhancedThemes: []models.EnhancedTheme{{
			Theme:     models.Theme{Name: "Tooling friction", Frequency: 3, Statements: []string{"CI takes forever"}},
			Sentiment: "negative",
		}},
	}, nil
}

func (f *fakeAnalysisGateway) DetectPatterns(_ context.Context, corpus string) (*llm.PatternResult, error) {
	f.record(StagePatternDetection)
	if f.patternFn != nil {
		return f.patternFn(corpus)
	}
	return &llm.PatternResult{
		Patterns: []models.Pattern{{Name: "Budget pressure", Evidence: []string{"everyone mentions cost"}}},
	}, nil
}

func (f *fakeAnalysisGateway) AnalyzeStakeholders(_ context.Context, corpus string) (*models.StakeholderIntelligence, error) {
	f.record(StageStakeholderAnalysis)
	if f.stakeholderFn != nil {
		return f.stakeholderFn(corpus)
	}
	return &models.StakeholderIntelligence{
		DetectedStakeholders:    []models.DetectedStakeholder{{Name: "Platform engineers"}},
		MultiStakeholderSummary: "engineers and managers disagree on priorities",
	}, nil
}

func (f *fakeAnalysisGateway) AnalyzeSentiment(_ context.Context, corpus string) (*llm.SentimentResult, error) {
	f.record(StageSentimentAnalysis)
	if f.sentimentFn != nil {
		return f.sentimentFn(corpus)
	}
	return &llm.SentimentResult{
		Overview: models.SentimentOverview{Positive: 0.5, Neutral: 0.3, Negative: 0.2},
		Details:  []models.SentimentDetail{{Category: "pricing", Score: -0.4, Statements: []string{"too expensive"}}},
	}, nil
}

func (f *fakeAnalysisGateway) SynthesizePersonas(_ context.Context, corpus string) (*llm.PersonaSynthesisResult, error) {
	f.record(StagePersonaGeneration)
	if f.personaFn != nil {
		return f.personaFn(corpus)
	}
	return &llm.PersonaSynthesisResult{
		Personas: []map[string]any{validRawPersona("Priya the Platform Lead")},
	}, nil
}

func (f *fakeAnalysisGateway) SynthesizeInsights(_ context.Context, req llm.InsightRequest) (*llm.InsightResult, error) {
	f.record(StageInsightSynthesis)
	f.mu.Lock()
	f.insightCalls = append(f.insightCalls, req)
	f.mu.Unlock()
	if f.insightFn != nil {
		return f.insightFn(req)
	}
	return &llm.InsightResult{
		Insights: []models.Insight{{Title: "Automate CI triage", Description: "Teams lose hours to flaky builds."}},
	}, nil
}

// validRawPersona builds a raw persona dictionary that survives trait
// acceptance.
func validRawPersona(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "a composite of the platform engineers interviewed",
		"goals_and_motivations": map[string]any{
			"value":      "Wants to cut build times in half this quarter",
			"confidence": 0.9,
			"evidence":   []any{"I spend half my day waiting on CI pipelines to finish."},
		},
	}
}

func analysisInterviews() []models.Interview {
	return []models.Interview{
		corpusInterview("p1", "Developers", "How do you debug?", "Print statements, mostly."),
		corpusInterview("p2", "Managers", "How do you plan?", "Quarterly and badly."),
	}
}

func TestAnalyzeHappyPathFillsEnvelope(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	p := NewPipeline(gw)

	out, err := p.Analyze(context.Background(), analysisInterviews(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "completed", out.Status)
	assert.Len(t, out.Themes, 1)
	assert.Len(t, out.EnhancedThemes, 1)
	assert.Len(t, out.Patterns, 1)
	require.NotNil(t, out.StakeholderIntelligence)
	assert.Len(t, out.StakeholderIntelligence.DetectedStakeholders, 1)
	assert.Len(t, out.SentimentDetails, 1)
	assert.True(t, out.SentimentOverview.IsNormalized())
	assert.Len(t, out.Personas, 1)
	assert.Len(t, out.Insights, 1)

	assert.Equal(t, []string{
		StageThemeExtraction,
		StagePatternDetection,
		StageStakeholderAnalysis,
		StageSentimentAnalysis,
		StagePersonaGeneration,
		StageInsightSynthesis,
	}, gw.callOrder, "sub-stages run in fixed order")
}

func TestAnalyzeRequiresInterviews(t *testing.T) {
	p := NewPipeline(&fakeAnalysisGateway{})
	_, err := p.Analyze(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one interview")
}

func TestAnalyzeCorpusRequiresText(t *testing.T) {
	p := NewPipeline(&fakeAnalysisGateway{})
	_, err := p.AnalyzeCorpus(context.Background(), "", 0, Options{})
	require.Error(t, err)
}

func TestMalformedSubStageLeavesCollectionEmptyAndContinues(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.sentimentFn = func(string) (*llm.SentimentResult, error) {
		return nil, &llm.CallError{Kind: llm.KindMalformedOutput, Task: llm.TaskSentimentAnalysis, Err: errors.New("not json")}
	}
	p := NewPipeline(gw)

	out, err := p.Analyze(context.Background(), analysisInterviews(), Options{})
	require.NoError(t, err, "malformed output must not fail the analysis")

	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, models.DefaultSentimentOverview(), out.SentimentOverview)
	assert.NotNil(t, out.SentimentDetails)
	assert.Empty(t, out.SentimentDetails)
	// Later sub-stages still ran.
	assert.Contains(t, gw.callOrder, StagePersonaGeneration)
	assert.Contains(t, gw.callOrder, StageInsightSynthesis)
}

func TestUpstreamFailureAbortsAnalysis(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.patternFn = func(string) (*llm.PatternResult, error) {
		return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskPatternDetection, Err: errors.New("503")}
	}
	p := NewPipeline(gw)

	_, err := p.Analyze(context.Background(), analysisInterviews(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), StagePatternDetection)
	assert.NotContains(t, gw.callOrder, StageStakeholderAnalysis, "later sub-stages must not run")
}

func TestCancellationStopsBetweenSubStages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(llm.ThemeRequest) (*llm.ThemeResult, error) {
		cancel()
		return &llm.ThemeResult{Themes: []models.Theme{{Name: "T", Frequency: 1}}}, nil
	}
	p := NewPipeline(gw)

	_, err := p.Analyze(ctx, analysisInterviews(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.NotContains(t, gw.callOrder, StagePatternDetection)
}

func TestSentimentNormalizedAndScoresClamped(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.sentimentFn = func(string) (*llm.SentimentResult, error) {
		return &llm.SentimentResult{
			Overview: models.SentimentOverview{Positive: 2, Neutral: 1, Negative: 1},
			Details: []models.SentimentDetail{
				{Category: "pricing", Score: 1.7},
				{Category: "support", Score: -3},
			},
		}, nil
	}
	p := NewPipeline(gw)

	out, err := p.Analyze(context.Background(), analysisInterviews(), Options{})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, out.SentimentOverview.Positive, 1e-9)
	assert.InDelta(t, 0.25, out.SentimentOverview.Neutral, 1e-9)
	assert.InDelta(t, 0.25, out.SentimentOverview.Negative, 1e-9)
	require.Len(t, out.SentimentDetails, 2)
	assert.Equal(t, 1.0, out.SentimentDetails[0].Score)
	assert.Equal(t, -1.0, out.SentimentDetails[1].Score)
}

func TestInsightSynthesisConsumesAccumulatedArtifacts(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	p := NewPipeline(gw)

	_, err := p.Analyze(context.Background(), analysisInterviews(), Options{})
	require.NoError(t, err)

	require.Len(t, gw.insightCalls, 1)
	req := gw.insightCalls[0]
	require.Len(t, req.Themes, 1)
	assert.Equal(t, "Tooling friction", req.Themes[0].Name)
	require.Len(t, req.Patterns, 1)
	assert.Equal(t, "Budget pressure", req.Patterns[0].Name)
	require.NotNil(t, req.Intelligence)
}

func TestProgressTracksSubStages(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	p := NewPipeline(gw)
	progress := NewProgress()

	_, err := p.Analyze(context.Background(), analysisInterviews(), Options{Progress: progress})
	require.NoError(t, err)

	snap := progress.Snapshot()
	assert.Equal(t, []string{
		StageThemeExtraction,
		StagePatternDetection,
		StageStakeholderAnalysis,
		StageSentimentAnalysis,
		StagePersonaGeneration,
		StageInsightSynthesis,
	}, snap.CompletedStages)
	assert.Equal(t, 2, snap.ExchangeCount)
}

func TestMalformedStageStillCountsAsCompletedProgress(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(llm.ThemeRequest) (*llm.ThemeResult, error) {
		return nil, &llm.CallError{Kind: llm.KindMalformedOutput, Task: llm.TaskThemeExtraction, Err: errors.New("fence soup")}
	}
	p := NewPipeline(gw)
	progress := NewProgress()

	out, err := p.Analyze(context.Background(), analysisInterviews(), Options{Progress: progress})
	require.NoError(t, err)

	assert.NotNil(t, out.Themes)
	assert.Empty(t, out.Themes)
	assert.Contains(t, progress.Snapshot().CompletedStages, StageThemeExtraction)

	// Insight synthesis saw the empty theme list, not a nil one.
	require.Len(t, gw.insightCalls, 1)
	assert.Empty(t, gw.insightCalls[0].Themes)
}
