package interview

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// generatePersonas fabricates the interviewee roster: one persona batch call
// per stakeholder, with one simplified-prompt retry on malformed output. A
// stakeholder whose batch fails twice is dropped from the roster; the fanout
// proceeds with whoever exists.
func (e *Engine) generatePersonas(ctx context.Context, stakeholders []models.Stakeholder, brief models.BusinessBrief, cfg models.SimulationConfig) []models.Persona {
	// Names must be unique per stakeholder key; reuse across different
	// stakeholders is allowed.
	usedNames := make(map[string][]string)
	personas := make([]models.Persona, 0, len(stakeholders)*cfg.PeoplePerStakeholder)

	for _, stakeholder := range stakeholders {
		if ctx.Err() != nil {
			break
		}
		batch, err := e.personaBatch(ctx, stakeholder, brief, cfg, usedNames[stakeholder.Name])
		if err != nil {
			e.logger.Error("persona batch failed, dropping stakeholder",
				"stakeholder", stakeholder.Name,
				"error", err)
			continue
		}

		accepted := 0
		for _, p := range batch {
			if accepted == cfg.PeoplePerStakeholder {
				break
			}
			name := strings.TrimSpace(p.Name)
			if name == "" || containsName(usedNames[stakeholder.Name], name) {
				e.logger.Warn("skipping duplicate or unnamed persona",
					"stakeholder", stakeholder.Name, "name", name)
				continue
			}
			p.ID = uuid.NewString()
			p.Name = name
			p.StakeholderType = stakeholder.Name
			personas = append(personas, p)
			usedNames[stakeholder.Name] = append(usedNames[stakeholder.Name], name)
			accepted++
		}
		if accepted < cfg.PeoplePerStakeholder {
			e.logger.Warn("persona batch came up short",
				"stakeholder", stakeholder.Name,
				"wanted", cfg.PeoplePerStakeholder,
				"got", accepted)
		}
	}
	return personas
}

// personaBatch issues the batch call, retrying once with a simplified prompt
// when the model's output is structurally unusable.
func (e *Engine) personaBatch(ctx context.Context, stakeholder models.Stakeholder, brief models.BusinessBrief, cfg models.SimulationConfig, usedNames []string) ([]models.Persona, error) {
	req := llm.PersonaBatchRequest{
		Brief:       brief,
		Stakeholder: stakeholder,
		Count:       cfg.PeoplePerStakeholder,
		UsedNames:   usedNames,
	}
	batch, err := e.gateway.GeneratePersonas(ctx, req)
	if err == nil {
		return batch, nil
	}
	if !llm.IsMalformed(err) {
		return nil, err
	}

	e.logger.Warn("persona batch malformed, retrying with simplified prompt",
		"stakeholder", stakeholder.Name)
	req.Simplified = true
	return e.gateway.GeneratePersonas(ctx, req)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
