// Package analysis turns a completed interview corpus into the detailed
// analysis envelope: themes, patterns, stakeholder intelligence, sentiment,
// synthesised personas, and actionable insights. The six sub-stages run in a
// fixed order and transitions are unconditional; garbled model output empties
// the affected collection instead of failing the run.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// Sub-stage names in execution order. Progress snapshots and log lines carry
// these verbatim.
const (
	StageThemeExtraction     = "theme_extraction"
	StagePatternDetection    = "pattern_detection"
	StageStakeholderAnalysis = "stakeholder_analysis"
	StageSentimentAnalysis   = "sentiment_analysis"
	StagePersonaGeneration   = "persona_generation"
	StageInsightSynthesis    = "insight_synthesis"
)

// Gateway is the slice of the model client the analysis consumes.
type Gateway interface {
	ExtractThemes(ctx context.Context, req llm.ThemeRequest) (*llm.ThemeResult, error)
	DetectPatterns(ctx context.Context, corpus string) (*llm.PatternResult, error)
	AnalyzeStakeholders(ctx context.Context, corpus string) (*models.StakeholderIntelligence, error)
	AnalyzeSentiment(ctx context.Context, corpus string) (*llm.SentimentResult, error)
	SynthesizePersonas(ctx context.Context, corpus string) (*llm.PersonaSynthesisResult, error)
	SynthesizeInsights(ctx context.Context, req llm.InsightRequest) (*llm.InsightResult, error)
}

// Pipeline drives the analysis sub-stages over one corpus.
type Pipeline struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewPipeline creates an analysis pipeline over the given gateway.
func NewPipeline(gateway Gateway) *Pipeline {
	return &Pipeline{
		gateway: gateway,
		logger:  slog.With("component", "analysis"),
	}
}

// Options tunes a single analysis run.
type Options struct {
	// Progress, when non-nil, receives sub-stage transitions for live
	// introspection.
	Progress *Progress
}

// Analyze renders the interviews into the shared corpus format and analyses
// it. At least one interview is required.
func (p *Pipeline) Analyze(ctx context.Context, interviews []models.Interview, opts Options) (*models.DetailedAnalysis, error) {
	if len(interviews) == 0 {
		return nil, fmt.Errorf("analysis requires at least one interview")
	}
	corpus := BuildCorpus(interviews)
	return p.AnalyzeCorpus(ctx, corpus, CountExchanges(interviews), opts)
}

// AnalyzeCorpus analyses a pre-rendered transcript. Exchanges is the total
// question/answer pair count and feeds progress reporting only.
func (p *Pipeline) AnalyzeCorpus(ctx context.Context, corpus string, exchanges int, opts Options) (*models.DetailedAnalysis, error) {
	if corpus == "" {
		return nil, fmt.Errorf("analysis requires a non-empty corpus")
	}
	if opts.Progress != nil {
		opts.Progress.setExchanges(exchanges)
	}
	p.logger.Info("starting analysis",
		"corpus_chars", len(corpus),
		"exchanges", exchanges)

	out := models.NewDetailedAnalysis()

	stages := []struct {
		name string
		run  func(context.Context) error
	}{
		{StageThemeExtraction, func(ctx context.Context) error {
			themes, enhanced, err := p.extractThemes(ctx, corpus)
			if err != nil {
				return err
			}
			out.Themes = append(out.Themes, themes...)
			out.EnhancedThemes = append(out.EnhancedThemes, enhanced...)
			return nil
		}},
		{StagePatternDetection, func(ctx context.Context) error {
			res, err := p.gateway.DetectPatterns(ctx, corpus)
			if err != nil {
				return err
			}
			out.Patterns = append(out.Patterns, res.Patterns...)
			out.EnhancedPatterns = append(out.EnhancedPatterns, res.EnhancedPatterns...)
			return nil
		}},
		{StageStakeholderAnalysis, func(ctx context.Context) error {
			intel, err := p.gateway.AnalyzeStakeholders(ctx, corpus)
			if err != nil {
				return err
			}
			out.StakeholderIntelligence = intel
			return nil
		}},
		{StageSentimentAnalysis, func(ctx context.Context) error {
			res, err := p.gateway.AnalyzeSentiment(ctx, corpus)
			if err != nil {
				return err
			}
			overview := res.Overview
			overview.Normalize()
			out.SentimentOverview = overview
			for _, d := range res.Details {
				d.Score = clampScore(d.Score)
				out.SentimentDetails = append(out.SentimentDetails, d)
			}
			return nil
		}},
		{StagePersonaGeneration, func(ctx context.Context) error {
			res, err := p.gateway.SynthesizePersonas(ctx, corpus)
			if err != nil {
				return err
			}
			out.Personas = append(out.Personas, normalizePersonas(res.Personas)...)
			out.EnhancedPersonas = append(out.EnhancedPersonas, normalizePersonas(res.EnhancedPersonas)...)
			p.logger.Info("personas normalised",
				"raw", len(res.Personas)+len(res.EnhancedPersonas),
				"accepted", len(out.Personas)+len(out.EnhancedPersonas))
			return nil
		}},
		{StageInsightSynthesis, func(ctx context.Context) error {
			res, err := p.gateway.SynthesizeInsights(ctx, llm.InsightRequest{
				Themes:       out.Themes,
				Patterns:     out.Patterns,
				Intelligence: out.StakeholderIntelligence,
			})
			if err != nil {
				return err
			}
			out.Insights = append(out.Insights, res.Insights...)
			out.EnhancedInsights = append(out.EnhancedInsights, res.EnhancedInsights...)
			return nil
		}},
	}

	for _, s := range stages {
		if err := p.runStage(ctx, opts, s.name, s.run); err != nil {
			return nil, err
		}
	}

	out.Status = "completed"
	p.logger.Info("analysis completed",
		"themes", len(out.Themes),
		"patterns", len(out.Patterns),
		"personas", len(out.Personas),
		"insights", len(out.Insights))
	return out, nil
}

// runStage executes one sub-stage. Malformed model output downgrades to a
// warning and leaves the stage's collections empty; any other failure aborts
// the analysis.
func (p *Pipeline) runStage(ctx context.Context, opts Options, stage string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis cancelled before %s: %w", stage, err)
	}
	if opts.Progress != nil {
		opts.Progress.begin(stage)
	}
	start := time.Now()
	err := fn(ctx)
	switch {
	case err == nil:
		p.logger.Info("sub-stage completed",
			"stage", stage,
			"duration", time.Since(start).Round(time.Millisecond))
	case llm.IsMalformed(err):
		p.logger.Warn("sub-stage output malformed, continuing without it",
			"stage", stage,
			"error", err)
	default:
		return fmt.Errorf("%s: %w", stage, err)
	}
	if opts.Progress != nil {
		opts.Progress.complete(stage)
	}
	return nil
}

func clampScore(s float64) float64 {
	if s < -1 {
		return -1
	}
	if s > 1 {
		return 1
	}
	return s
}
