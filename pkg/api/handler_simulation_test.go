package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synthlab-ai/persim/pkg/pipeline"
	"github.com/synthlab-ai/persim/pkg/services"
)

// simulationValidationServer carries just enough dependencies to reach the
// validation steps. Paths past validation are covered by the e2e suite,
// which has a real database and a mock model behind it.
func simulationValidationServer() *Server {
	return NewServer(Deps{
		Orchestrator: pipeline.NewOrchestrator(pipeline.Deps{}),
		Simulations:  services.NewSimulationService(nil),
	})
}

func TestRunSimulationHandler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing business idea",
			body:    `{"business_context": {"target_customer": "working parents", "problem": "planning takes too long"}}`,
			wantErr: "business_idea is required",
		},
		{
			name:    "missing problem",
			body:    `{"business_context": {"business_idea": "AI meal planning app", "target_customer": "working parents"}}`,
			wantErr: "problem is required",
		},
		{
			name: "invalid depth",
			body: `{
				"business_context": {"business_idea": "AI meal planning app", "target_customer": "working parents", "problem": "planning takes too long"},
				"config": {"depth": "exhaustive"},
				"questions_data": {"stakeholders": {"primary": [{"id": "primary_1", "name": "Working Parents", "questions": ["q"]}], "secondary": []}}
			}`,
			wantErr: "invalid depth",
		},
		{
			name: "people_per_stakeholder above cap",
			body: `{
				"business_context": {"business_idea": "AI meal planning app", "target_customer": "working parents", "problem": "planning takes too long"},
				"config": {"people_per_stakeholder": 99},
				"questions_data": {"stakeholders": {"primary": [{"id": "primary_1", "name": "Working Parents", "questions": ["q"]}], "secondary": []}}
			}`,
			wantErr: "invalid people_per_stakeholder",
		},
		{
			name: "temperature out of range",
			body: `{
				"business_context": {"business_idea": "AI meal planning app", "target_customer": "working parents", "problem": "planning takes too long"},
				"config": {"temperature": 1.5},
				"questions_data": {"stakeholders": {"primary": [{"id": "primary_1", "name": "Working Parents", "questions": ["q"]}], "secondary": []}}
			}`,
			wantErr: "invalid temperature",
		},
		{
			name: "questionnaire without stakeholders",
			body: `{
				"business_context": {"business_idea": "AI meal planning app", "target_customer": "working parents", "problem": "planning takes too long"},
				"questions_data": {"stakeholders": {"primary": [], "secondary": []}}
			}`,
			wantErr: "questions_data has no stakeholders",
		},
		{
			name:    "malformed body",
			body:    "{not json",
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := simulationValidationServer()

			w := doRequest(t, s, http.MethodPost, "/simulations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			if tt.wantErr != "" {
				assert.Contains(t, w.Body.String(), tt.wantErr)
			}
		})
	}
}

func TestSimulationEndpointsWithoutStore(t *testing.T) {
	s := NewServer(Deps{})

	w := doRequest(t, s, http.MethodGet, "/simulations", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(t, s, http.MethodGet, "/simulations/sim-1", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(t, s, http.MethodPost, "/simulations", briefBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
