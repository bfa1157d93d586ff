package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/pipeline"
	"github.com/synthlab-ai/persim/pkg/services"
)

// stubRunStore is an in-memory pipeline.RunStore for handler tests.
type stubRunStore struct {
	mu    sync.Mutex
	rows  map[string]*models.PipelineRun
	order []string
}

func newStubRunStore() *stubRunStore {
	return &stubRunStore{rows: make(map[string]*models.PipelineRun)}
}

func (s *stubRunStore) Create(_ context.Context, jobID, userID string, brief models.BusinessBrief) (*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run := &models.PipelineRun{
		JobID:           jobID,
		UserID:          userID,
		Status:          models.RunStatusPending,
		BusinessContext: brief,
		CreatedAt:       time.Now(),
	}
	s.rows[jobID] = run
	s.order = append(s.order, jobID)
	cp := *run
	return &cp, nil
}

func (s *stubRunStore) UpdateStatus(_ context.Context, jobID string, status models.RunStatus, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return services.ErrNotFound
	}
	run.Status = status
	now := time.Now()
	if status == models.RunStatusRunning && run.StartedAt == nil {
		run.StartedAt = &now
	}
	if status.IsTerminal() {
		run.CompletedAt = &now
	}
	if cause != nil {
		run.Error = cause.Error()
	}
	return nil
}

func (s *stubRunStore) UpdateResults(_ context.Context, jobID string, results services.RunResults) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return services.ErrNotFound
	}
	run.ExecutionTrace = results.Trace
	run.Dataset = results.Dataset
	run.TotalDurationSeconds = results.TotalDurationSeconds
	run.PersonaCount = results.PersonaCount
	run.InterviewCount = results.InterviewCount
	return nil
}

func (s *stubRunStore) Get(_ context.Context, jobID string) (*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *run
	return &cp, nil
}

func (s *stubRunStore) List(_ context.Context, status models.RunStatus, _ string, limit, offset int) ([]*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []*models.PipelineRun{}
	for _, id := range s.order {
		run := s.rows[id]
		if status != "" && run.Status != status {
			continue
		}
		cp := *run
		matched = append(matched, &cp)
	}
	if offset >= len(matched) {
		return []*models.PipelineRun{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *stubRunStore) Count(_ context.Context, status models.RunStatus, _ string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, run := range s.rows {
		if status == "" || run.Status == status {
			n++
		}
	}
	return n, nil
}

// stubRunner implements pipeline.Runner.
type stubRunner struct {
	fn func(ctx context.Context) *pipeline.Outcome
}

func (r *stubRunner) Run(ctx context.Context, _ models.BusinessBrief, _ models.SimulationConfig, _ string) *pipeline.Outcome {
	if r.fn != nil {
		return r.fn(ctx)
	}
	return &pipeline.Outcome{
		Status: models.RunStatusCompleted,
		Trace: []models.StageTrace{
			{StageName: models.StageQuestionnaire, Status: models.StageStatusCompleted},
			{StageName: models.StageSimulation, Status: models.StageStatusCompleted},
			{StageName: models.StageAnalysis, Status: models.StageStatusCompleted},
			{StageName: models.StageExport, Status: models.StageStatusCompleted},
		},
		Dataset:        &models.Dataset{ScopeID: "scope-7", ScopeName: "Meal planner dataset"},
		PersonaCount:   6,
		InterviewCount: 5,
	}
}

func newPipelineTestServer(runner pipeline.Runner, store pipeline.RunStore) *Server {
	return NewServer(Deps{Registry: pipeline.NewRegistry(runner, store)})
}

func briefBody() string {
	return `{
		"business_idea": "AI meal planning app",
		"target_customer": "working parents",
		"problem": "weeknight dinners take too long to plan"
	}`
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestSubmitRunHandler(t *testing.T) {
	t.Run("valid brief returns pending job", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", briefBody())
		require.Equal(t, http.StatusOK, w.Code)

		var st models.JobStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
		assert.NotEmpty(t, st.JobID)
		assert.Equal(t, models.RunStatusPending, st.Status)
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async",
			`{"business_idea": "AI meal planning app"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "target_customer")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetJobHandler(t *testing.T) {
	t.Run("completed job carries result", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", briefBody())
		require.Equal(t, http.StatusOK, w.Code)
		var submitted models.JobStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

		var final models.JobStatus
		require.Eventually(t, func() bool {
			poll := doRequest(t, s, http.MethodGet, "/pipeline/jobs/"+submitted.JobID, "")
			if poll.Code != http.StatusOK {
				return false
			}
			if err := json.Unmarshal(poll.Body.Bytes(), &final); err != nil {
				return false
			}
			return final.Status.IsTerminal()
		}, 2*time.Second, 5*time.Millisecond)

		assert.Equal(t, models.RunStatusCompleted, final.Status)
		require.NotNil(t, final.Result)
		assert.Equal(t, "scope-7", final.Result.Dataset.ScopeID)
		assert.Equal(t, 6, final.Result.PersonaCount)
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodGet, "/pipeline/jobs/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCancelJobHandler(t *testing.T) {
	t.Run("running job accepts cancellation", func(t *testing.T) {
		runner := &stubRunner{fn: func(ctx context.Context) *pipeline.Outcome {
			<-ctx.Done()
			return &pipeline.Outcome{Status: models.RunStatusPartial}
		}}
		s := newPipelineTestServer(runner, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", briefBody())
		require.Equal(t, http.StatusOK, w.Code)
		var submitted models.JobStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

		cancelResp := doRequest(t, s, http.MethodPost, "/pipeline/jobs/"+submitted.JobID+"/cancel", "")
		require.Equal(t, http.StatusAccepted, cancelResp.Code)
		assert.Contains(t, cancelResp.Body.String(), submitted.JobID)

		var final models.JobStatus
		require.Eventually(t, func() bool {
			poll := doRequest(t, s, http.MethodGet, "/pipeline/jobs/"+submitted.JobID, "")
			if poll.Code != http.StatusOK {
				return false
			}
			if err := json.Unmarshal(poll.Body.Bytes(), &final); err != nil {
				return false
			}
			return final.Status.IsTerminal()
		}, 2*time.Second, 5*time.Millisecond)

		assert.Equal(t, models.RunStatusFailed, final.Status)
		assert.Equal(t, "cancelled", final.Error)
	})

	t.Run("terminal job returns 409", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", briefBody())
		require.Equal(t, http.StatusOK, w.Code)
		var submitted models.JobStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

		require.Eventually(t, func() bool {
			poll := doRequest(t, s, http.MethodGet, "/pipeline/jobs/"+submitted.JobID, "")
			var st models.JobStatus
			return poll.Code == http.StatusOK &&
				json.Unmarshal(poll.Body.Bytes(), &st) == nil &&
				st.Status.IsTerminal()
		}, 2*time.Second, 5*time.Millisecond)

		cancelResp := doRequest(t, s, http.MethodPost, "/pipeline/jobs/"+submitted.JobID+"/cancel", "")
		assert.Equal(t, http.StatusConflict, cancelResp.Code)
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodPost, "/pipeline/jobs/nope/cancel", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListRunsHandler(t *testing.T) {
	t.Run("invalid status filter returns 400", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodGet, "/pipeline/runs?status=bogus", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid status: bogus")
	})

	t.Run("returns paged summaries", func(t *testing.T) {
		store := newStubRunStore()
		_, err := store.Create(context.Background(), "job-1", "", models.BusinessBrief{
			BusinessIdea:   "AI meal planning app",
			TargetCustomer: "working parents",
			Problem:        "weeknight dinners take too long to plan",
		})
		require.NoError(t, err)
		s := newPipelineTestServer(&stubRunner{}, store)

		w := doRequest(t, s, http.MethodGet, "/pipeline/runs?limit=10", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.RunListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, 10, resp.Limit)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, "job-1", resp.Runs[0].JobID)
		assert.Equal(t, "AI meal planning app", resp.Runs[0].BusinessContext.BusinessIdea)
	})

	t.Run("unparsable pagination falls back to defaults", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodGet, "/pipeline/runs?limit=abc&offset=-4", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.RunListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 50, resp.Limit)
		assert.Equal(t, 0, resp.Offset)
	})
}

func TestGetRunHandler(t *testing.T) {
	t.Run("returns full persisted detail", func(t *testing.T) {
		store := newStubRunStore()
		_, err := store.Create(context.Background(), "job-detail", "", models.BusinessBrief{
			BusinessIdea:   "AI meal planning app",
			TargetCustomer: "working parents",
			Problem:        "weeknight dinners take too long to plan",
		})
		require.NoError(t, err)
		require.NoError(t, store.UpdateResults(context.Background(), "job-detail", services.RunResults{
			Trace: []models.StageTrace{
				{StageName: models.StageQuestionnaire, Status: models.StageStatusCompleted},
			},
			Dataset: &models.Dataset{ScopeID: "scope-9"},
		}))
		s := newPipelineTestServer(&stubRunner{}, store)

		w := doRequest(t, s, http.MethodGet, "/pipeline/runs/job-detail", "")
		require.Equal(t, http.StatusOK, w.Code)

		var run models.PipelineRun
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
		assert.Equal(t, "job-detail", run.JobID)
		require.Len(t, run.ExecutionTrace, 1)
		require.NotNil(t, run.Dataset)
		assert.Equal(t, "scope-9", run.Dataset.ScopeID)
	})

	t.Run("unknown run returns 404", func(t *testing.T) {
		s := newPipelineTestServer(&stubRunner{}, newStubRunStore())

		w := doRequest(t, s, http.MethodGet, "/pipeline/runs/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPipelineEndpointsWithoutRegistry(t *testing.T) {
	s := NewServer(Deps{})

	w := doRequest(t, s, http.MethodPost, "/pipeline/run-async", briefBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(t, s, http.MethodGet, "/pipeline/jobs/x", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
