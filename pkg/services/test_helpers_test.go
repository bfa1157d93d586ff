package services

import (
	"github.com/synthlab-ai/persim/pkg/models"
)

// Shared fixtures for the service integration tests.

func testBrief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   "An AI meal planner for busy families",
		TargetCustomer: "Working parents with young children",
		Problem:        "Weeknight dinners take too much planning",
		Industry:       "Consumer software",
		Location:       "Berlin",
	}
}

func testQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		Stakeholders: models.StakeholderGroups{
			Primary: []models.Stakeholder{
				{
					ID:          "working-parents",
					Name:        "Working Parents",
					Description: "Primary buyers who plan the household meals",
					Questions:   []string{"How do you plan dinners today?", "What derails the plan?"},
				},
			},
			Secondary: []models.Stakeholder{
				{
					ID:          "grocery-partners",
					Name:        "Grocery Partners",
					Description: "Stores that would fulfil generated shopping lists",
					Questions:   []string{"How do you integrate with meal apps?"},
				},
			},
		},
		TimeEstimate: "15-20 minutes",
	}
}

func testPersonas() []models.Persona {
	return []models.Persona{
		{
			ID:                 "working-parents-1",
			Name:               "Maya Lindgren",
			Age:                38,
			Background:         "Product manager with two kids under ten",
			Motivations:        []string{"Reclaim weekday evenings"},
			PainPoints:         []string{"Decision fatigue at 6pm"},
			CommunicationStyle: "direct",
			StakeholderType:    "Working Parents",
			DemographicDetails: "Berlin, dual-income household",
		},
	}
}

func testInterviews() []models.Interview {
	return []models.Interview{
		{
			PersonID:        "working-parents-1",
			StakeholderType: "Working Parents",
			Responses: []models.InterviewResponse{
				{
					Question:    "How do you plan dinners today?",
					Response:    "Sunday batch planning that collapses by Wednesday.",
					Sentiment:   "negative",
					KeyInsights: []string{"plans decay mid-week"},
				},
			},
			DurationMinutes:  12,
			OverallSentiment: "mixed",
			KeyThemes:        []string{"planning fatigue"},
		},
	}
}
