package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// fakeFanoutGateway scripts persona and interview behaviour per test and
// tracks in-flight interview calls to verify the concurrency bound.
type fakeFanoutGateway struct {
	mu             sync.Mutex
	personaFn      func(req llm.PersonaBatchRequest) ([]models.Persona, error)
	interviewFn    func(req llm.InterviewRequest) (*llm.InterviewDoc, error)
	personaCalls   []llm.PersonaBatchRequest
	interviewCalls []llm.InterviewRequest
	inFlight       int
	maxInFlight    int
	delay          time.Duration
}

func (f *fakeFanoutGateway) GeneratePersonas(_ context.Context, req llm.PersonaBatchRequest) ([]models.Persona, error) {
	f.mu.Lock()
	f.personaCalls = append(f.personaCalls, req)
	f.mu.Unlock()
	return f.personaFn(req)
}

func (f *fakeFanoutGateway) ConductInterview(ctx context.Context, req llm.InterviewRequest) (*llm.InterviewDoc, error) {
	f.mu.Lock()
	f.interviewCalls = append(f.interviewCalls, req)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			f.decInFlight()
			return nil, &llm.CallError{Kind: llm.KindCancelled, Task: llm.TaskInterview, Err: ctx.Err()}
		}
	}
	f.decInFlight()
	return f.interviewFn(req)
}

func (f *fakeFanoutGateway) decInFlight() {
	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
}

func (f *fakeFanoutGateway) interviewCallsFor(persona string) []llm.InterviewRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []llm.InterviewRequest
	for _, c := range f.interviewCalls {
		if c.Persona.Name == persona {
			out = append(out, c)
		}
	}
	return out
}

func scriptedPersonas(req llm.PersonaBatchRequest) ([]models.Persona, error) {
	out := make([]models.Persona, req.Count)
	for i := range out {
		out[i] = models.Persona{
			Name:       fmt.Sprintf("%s Persona %d", req.Stakeholder.Name, i+1),
			Age:        30 + i,
			Background: "fixture background",
		}
	}
	return out, nil
}

func okInterview(req llm.InterviewRequest) (*llm.InterviewDoc, error) {
	return &llm.InterviewDoc{
		Responses: []models.InterviewResponse{
			{Question: req.Stakeholder.Questions[0], Response: "An answer with some substance to it.", Sentiment: "neutral"},
		},
		OverallSentiment: "neutral",
		KeyThemes:        []string{"theme"},
	}, nil
}

func fanoutQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		Stakeholders: models.StakeholderGroups{
			Primary: []models.Stakeholder{
				{ID: "primary_1", Name: "Developers", Questions: []string{"How do you debug?"}},
			},
			Secondary: []models.Stakeholder{
				{ID: "secondary_1", Name: "Managers", Questions: []string{"How do you plan?"}},
			},
		},
		TimeEstimate: "~9m",
	}
}

func fanoutConfig(people int) models.SimulationConfig {
	return models.SimulationConfig{
		PeoplePerStakeholder: people,
		ResponseStyle:        models.ResponseStyleRealistic,
		Temperature:          0.7,
		Depth:                models.DepthDetailed,
	}
}

func TestRunProducesOneInterviewPerPersona(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas, interviewFn: okInterview}
	engine := NewEngine(gw, NewCache(), 4)

	result, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(2), nil)
	require.NoError(t, err)

	require.Len(t, result.Personas, 4, "two stakeholders, two people each")
	require.Len(t, result.Interviews, 4)
	assert.Zero(t, result.Failed)

	// Fresh unique ids, stakeholder_type carries the human name.
	ids := make(map[string]bool)
	for _, p := range result.Personas {
		assert.NotEmpty(t, p.ID)
		assert.False(t, ids[p.ID], "persona ids must be unique")
		ids[p.ID] = true
		assert.Contains(t, []string{"Developers", "Managers"}, p.StakeholderType)
	}

	// Every interview is stamped with an existing persona id and a floored duration.
	seen := make(map[string]bool)
	for _, iv := range result.Interviews {
		assert.True(t, ids[iv.PersonID], "interview must reference a generated persona")
		assert.False(t, seen[iv.PersonID], "exactly one interview per persona")
		seen[iv.PersonID] = true
		assert.GreaterOrEqual(t, iv.DurationMinutes, 10)
	}
}

func TestRunRespectsConcurrencyBound(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas, interviewFn: okInterview, delay: 40 * time.Millisecond}
	engine := NewEngine(gw, NewCache(), 2)

	_, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(4), nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, gw.maxInFlight, 2, "no more than max_concurrent interviews may be in flight")
}

func TestRunToleratesPartialFailures(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas}
	gw.interviewFn = func(req llm.InterviewRequest) (*llm.InterviewDoc, error) {
		if req.Persona.Name == "Developers Persona 1" {
			return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskInterview, Err: errors.New("boom")}
		}
		return okInterview(req)
	}
	engine := NewEngine(gw, NewCache(), 4)

	result, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(2), nil)
	require.NoError(t, err, "one failed interview must not fail the stage")
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Interviews, 3)
	for _, iv := range result.Interviews {
		assert.NotEmpty(t, iv.PersonID)
	}
}

func TestRunFailsWhenZeroInterviewsComplete(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas}
	gw.interviewFn = func(llm.InterviewRequest) (*llm.InterviewDoc, error) {
		return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskInterview, Err: errors.New("down")}
	}
	engine := NewEngine(gw, NewCache(), 4)

	_, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interviews failed")
}

func TestRunMalformedRetryDropsTemperature(t *testing.T) {
	var calls int
	var mu sync.Mutex
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas}
	gw.interviewFn = func(req llm.InterviewRequest) (*llm.InterviewDoc, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			return nil, &llm.CallError{Kind: llm.KindMalformedOutput, Task: llm.TaskInterview, Err: errors.New("bad json")}
		}
		return okInterview(req)
	}
	engine := NewEngine(gw, NewCache(), 1)

	q := &models.Questionnaire{Stakeholders: models.StakeholderGroups{
		Primary: []models.Stakeholder{{ID: "primary_1", Name: "Developers", Questions: []string{"Q"}}},
	}}
	result, err := engine.Run(context.Background(), q, testBrief(), fanoutConfig(1), nil)
	require.NoError(t, err)
	assert.Len(t, result.Interviews, 1)

	attempts := gw.interviewCallsFor("Developers Persona 1")
	require.Len(t, attempts, 2)
	assert.InDelta(t, 0.7, attempts[0].Temperature, 1e-9)
	assert.InDelta(t, 0.0, attempts[1].Temperature, 1e-9, "temperature must drop to zero after malformed output")
}

func TestRunInterviewCacheShortCircuits(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas, interviewFn: okInterview}
	cache := NewCache()
	engine := NewEngine(gw, cache, 1)

	persona := models.Persona{ID: "fixed-id", Name: "Ana", StakeholderType: "Developers"}
	stakeholder := models.Stakeholder{ID: "primary_1", Name: "Developers", Questions: []string{"Q"}}
	brief := testBrief()
	cfg := fanoutConfig(1)

	sem := semaphore.NewWeighted(1)
	first, err := engine.runInterview(context.Background(), sem, persona, stakeholder, brief, cfg)
	require.NoError(t, err)
	require.Len(t, gw.interviewCalls, 1)

	second, err := engine.runInterview(context.Background(), sem, persona, stakeholder, brief, cfg)
	require.NoError(t, err)
	assert.Len(t, gw.interviewCalls, 1, "cache hit must not call the model")
	assert.Equal(t, first, second)
}

func TestRunCancellation(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas, interviewFn: okInterview, delay: 200 * time.Millisecond}
	engine := NewEngine(gw, NewCache(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := engine.Run(ctx, fanoutQuestionnaire(), testBrief(), fanoutConfig(3), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestRunProgressReporting(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas}
	gw.interviewFn = func(req llm.InterviewRequest) (*llm.InterviewDoc, error) {
		if req.Persona.Name == "Managers Persona 1" {
			return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskInterview, Err: errors.New("boom")}
		}
		return okInterview(req)
	}
	engine := NewEngine(gw, NewCache(), 2)

	type tick struct {
		completed, total, failed int
	}
	var ticks []tick
	progress := func(_ string, completed, total, failed int) {
		ticks = append(ticks, tick{completed, total, failed})
	}

	result, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(1), progress)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)

	require.Len(t, ticks, 2, "one tick per terminal interview event")
	last := ticks[len(ticks)-1]
	assert.Equal(t, 2, last.completed+last.failed)
	for _, tk := range ticks {
		assert.Equal(t, 2, tk.total, "total stays constant across ticks")
	}
}

func TestGeneratePersonasDeduplicatesNames(t *testing.T) {
	gw := &fakeFanoutGateway{interviewFn: okInterview}
	gw.personaFn = func(req llm.PersonaBatchRequest) ([]models.Persona, error) {
		return []models.Persona{
			{Name: "Ana Flores"},
			{Name: "ana flores"},
			{Name: "Tom Becker"},
		}, nil
	}
	engine := NewEngine(gw, NewCache(), 1)

	personas := engine.generatePersonas(context.Background(),
		[]models.Stakeholder{{ID: "primary_1", Name: "Developers", Questions: []string{"Q"}}},
		testBrief(), fanoutConfig(2))

	require.Len(t, personas, 2)
	assert.Equal(t, "Ana Flores", personas[0].Name)
	assert.Equal(t, "Tom Becker", personas[1].Name)
	assert.Equal(t, "Developers", personas[0].StakeholderType)
	assert.NotEmpty(t, personas[0].ID)
}

func TestGeneratePersonasSimplifiedRetryOnMalformed(t *testing.T) {
	var calls int
	gw := &fakeFanoutGateway{interviewFn: okInterview}
	gw.personaFn = func(req llm.PersonaBatchRequest) ([]models.Persona, error) {
		calls++
		if calls == 1 {
			return nil, &llm.CallError{Kind: llm.KindMalformedOutput, Task: llm.TaskPersonaBatch, Err: errors.New("garbage")}
		}
		return scriptedPersonas(req)
	}
	engine := NewEngine(gw, NewCache(), 1)

	personas := engine.generatePersonas(context.Background(),
		[]models.Stakeholder{{ID: "primary_1", Name: "Developers", Questions: []string{"Q"}}},
		testBrief(), fanoutConfig(2))

	require.Len(t, personas, 2)
	require.Len(t, gw.personaCalls, 2)
	assert.False(t, gw.personaCalls[0].Simplified)
	assert.True(t, gw.personaCalls[1].Simplified, "the retry must use the simplified prompt")
}

func TestGeneratePersonasDropsFailedStakeholder(t *testing.T) {
	gw := &fakeFanoutGateway{interviewFn: okInterview}
	gw.personaFn = func(req llm.PersonaBatchRequest) ([]models.Persona, error) {
		if req.Stakeholder.Name == "Managers" {
			return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskPersonaBatch, Err: errors.New("down")}
		}
		return scriptedPersonas(req)
	}
	engine := NewEngine(gw, NewCache(), 2)

	result, err := engine.Run(context.Background(), fanoutQuestionnaire(), testBrief(), fanoutConfig(2), nil)
	require.NoError(t, err, "a dropped stakeholder must not fail the stage")
	assert.Len(t, result.Personas, 2)
	for _, p := range result.Personas {
		assert.Equal(t, "Developers", p.StakeholderType)
	}
}

func TestRunSkipsStakeholdersWithoutQuestions(t *testing.T) {
	gw := &fakeFanoutGateway{personaFn: scriptedPersonas, interviewFn: okInterview}
	engine := NewEngine(gw, NewCache(), 2)

	q := &models.Questionnaire{Stakeholders: models.StakeholderGroups{
		Primary: []models.Stakeholder{
			{ID: "primary_1", Name: "Developers", Questions: []string{"Q"}},
			{ID: "primary_2", Name: "Silent", Questions: nil},
		},
	}}
	result, err := engine.Run(context.Background(), q, testBrief(), fanoutConfig(1), nil)
	require.NoError(t, err)
	require.Len(t, result.Personas, 1)
	assert.Equal(t, "Developers", result.Personas[0].StakeholderType)
}

func TestDeriveDuration(t *testing.T) {
	long := strings.Repeat("a", 220)
	medium := strings.Repeat("b", 120)
	responses := []models.InterviewResponse{
		{Response: long},
		{Response: medium},
		{Response: "short"},
	}
	// Base is 2*3 + (3+2+1) = 12; jitter spans [-5,10]; floor is 10.
	for i := 0; i < 200; i++ {
		d := deriveDuration(responses)
		assert.GreaterOrEqual(t, d, 10)
		assert.LessOrEqual(t, d, 22)
	}

	// With no responses the floor always wins.
	for i := 0; i < 50; i++ {
		assert.Equal(t, 10, deriveDuration(nil))
	}
}

func testBrief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   "AI code review",
		TargetCustomer: "engineering teams",
		Problem:        "slow review cycles",
	}
}
