// Package interview runs stage 2: persona generation followed by a
// bounded-concurrency interview fanout with retries and memoisation.
package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/models"
)

// interviewAttempts bounds the per-interview retry loop.
const interviewAttempts = 3

const backoffBase = time.Second

// Gateway is the slice of the LLM client the engine needs.
type Gateway interface {
	GeneratePersonas(ctx context.Context, req llm.PersonaBatchRequest) ([]models.Persona, error)
	ConductInterview(ctx context.Context, req llm.InterviewRequest) (*llm.InterviewDoc, error)
}

// ProgressFunc receives an advisory notification after each interview
// reaches a terminal state. Implementations must be cheap; the fanout calls
// them inline.
type ProgressFunc func(message string, completed, total, failed int)

// Result is the stage-2 output. Interviews are ordered by completion, not by
// persona order; reconcile by person_id when persona order matters.
type Result struct {
	Personas   []models.Persona
	Interviews []models.Interview
	Failed     int
}

// Engine owns the fanout. One engine serves the whole process; per-run state
// lives on the stack of Run.
type Engine struct {
	gateway       Gateway
	cache         *Cache
	maxConcurrent int64
	logger        *slog.Logger
}

// NewEngine builds a fanout engine. maxConcurrent bounds how many interviews
// may be suspended on LLM I/O at once.
func NewEngine(gateway Gateway, cache *Cache, maxConcurrent int) *Engine {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Engine{
		gateway:       gateway,
		cache:         cache,
		maxConcurrent: int64(maxConcurrent),
		logger:        slog.With("component", "interview"),
	}
}

type interviewOutcome struct {
	persona   models.Persona
	interview *models.Interview
	err       error
}

// Run generates personas for every stakeholder and interviews each one.
// Failed interviews are counted and excluded; the stage succeeds as long as
// at least one interview completes. Cancellation stops scheduling and
// interrupts in-flight tasks at their next suspension point.
func (e *Engine) Run(ctx context.Context, q *models.Questionnaire, brief models.BusinessBrief, cfg models.SimulationConfig, progress ProgressFunc) (*Result, error) {
	cfg.Normalize()

	stakeholders := make([]models.Stakeholder, 0, q.StakeholderCount())
	byName := make(map[string]models.Stakeholder)
	for _, s := range q.AllStakeholders() {
		if len(s.Questions) == 0 {
			e.logger.Warn("stakeholder has no questions, skipping", "stakeholder", s.Name)
			continue
		}
		stakeholders = append(stakeholders, s)
		byName[s.Name] = s
	}
	if len(stakeholders) == 0 {
		return nil, errors.New("questionnaire has no stakeholders with questions")
	}

	personas := e.generatePersonas(ctx, stakeholders, brief, cfg)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("interview fanout cancelled: %w", err)
	}
	if len(personas) == 0 {
		return nil, errors.New("persona generation produced no interviewees")
	}

	total := len(personas)
	e.logger.Info("starting interview fanout",
		"personas", total,
		"max_concurrent", e.maxConcurrent)

	sem := semaphore.NewWeighted(e.maxConcurrent)
	results := make(chan interviewOutcome, total)
	var wg sync.WaitGroup
	for _, p := range personas {
		wg.Add(1)
		go func(persona models.Persona) {
			defer wg.Done()
			iv, err := e.runInterview(ctx, sem, persona, byName[persona.StakeholderType], brief, cfg)
			results <- interviewOutcome{persona: persona, interview: iv, err: err}
		}(p)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	interviews := make([]models.Interview, 0, total)
	completed, failed := 0, 0
	for outcome := range results {
		if outcome.err != nil {
			failed++
			if !llm.IsCancelled(outcome.err) {
				e.logger.Error("interview failed",
					"persona", outcome.persona.Name,
					"stakeholder", outcome.persona.StakeholderType,
					"error", outcome.err)
			}
			metrics.RecordInterview("failed")
			notify(progress, fmt.Sprintf("Interview with %s failed", outcome.persona.Name), completed, total, failed)
			continue
		}
		completed++
		interviews = append(interviews, *outcome.interview)
		metrics.RecordInterview("completed")
		notify(progress, fmt.Sprintf("Interviewed %s (%s)", outcome.persona.Name, outcome.persona.StakeholderType), completed, total, failed)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("interview fanout cancelled: %w", err)
	}
	if len(interviews) == 0 {
		return nil, fmt.Errorf("all %d interviews failed", total)
	}

	e.logger.Info("interview fanout finished",
		"completed", completed,
		"failed", failed)
	return &Result{Personas: personas, Interviews: interviews, Failed: failed}, nil
}

// runInterview executes the per-interview protocol: acquire the semaphore,
// consult the cache, on miss call the model with up to interviewAttempts
// tries, then stamp identity and duration and store the result.
func (e *Engine) runInterview(ctx context.Context, sem *semaphore.Weighted, persona models.Persona, stakeholder models.Stakeholder, brief models.BusinessBrief, cfg models.SimulationConfig) (*models.Interview, error) {
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("interview cancelled before start: %w", err)
	}
	defer sem.Release(1)

	key := CacheKey(persona.ID, stakeholder.ID, brief.BusinessIdea, cfg.Temperature, cfg.ResponseStyle)
	if iv, ok := e.cache.Get(key); ok {
		metrics.RecordInterview("cached")
		return iv, nil
	}

	temperature := cfg.Temperature
	var lastErr error
	for attempt := 1; attempt <= interviewAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepBackoff(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		doc, err := e.gateway.ConductInterview(ctx, llm.InterviewRequest{
			Brief:       brief,
			Stakeholder: stakeholder,
			Persona:     persona,
			Style:       cfg.ResponseStyle,
			Depth:       cfg.Depth,
			Temperature: temperature,
		})
		if err == nil {
			iv := buildInterview(persona, doc)
			e.cache.Put(key, iv)
			return iv, nil
		}
		lastErr = err

		if llm.IsCancelled(err) {
			return nil, err
		}
		if llm.IsMalformed(err) {
			// Deterministic output is more likely to satisfy the schema.
			temperature = 0.0
		} else if !llm.IsTransient(err) {
			break
		}
	}
	return nil, lastErr
}

// buildInterview stamps identity and derives the reading-time duration.
func buildInterview(persona models.Persona, doc *llm.InterviewDoc) *models.Interview {
	sentiment := doc.OverallSentiment
	if sentiment == "" {
		sentiment = "neutral"
	}
	return &models.Interview{
		PersonID:         persona.ID,
		StakeholderType:  persona.StakeholderType,
		Responses:        doc.Responses,
		DurationMinutes:  deriveDuration(doc.Responses),
		OverallSentiment: sentiment,
		KeyThemes:        doc.KeyThemes,
	}
}

// deriveDuration estimates interview minutes: two per exchange plus a length
// bucket per answer (>=200 chars 3, >=100 chars 2, else 1) plus uniform
// jitter in [-5,10], floored at 10.
func deriveDuration(responses []models.InterviewResponse) int {
	minutes := 2 * len(responses)
	for _, r := range responses {
		switch n := len(r.Response); {
		case n >= 200:
			minutes += 3
		case n >= 100:
			minutes += 2
		default:
			minutes++
		}
	}
	minutes += rand.IntN(16) - 5
	if minutes < 10 {
		minutes = 10
	}
	return minutes
}

func sleepBackoff(ctx context.Context, retry int) error {
	delay := backoffBase<<(retry-1) + time.Duration(rand.Float64()*float64(time.Second))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func notify(progress ProgressFunc, message string, completed, total, failed int) {
	if progress != nil {
		progress(message, completed, total, failed)
	}
}
