package llm

import (
	"fmt"
	"strings"

	"github.com/synthlab-ai/persim/pkg/models"
)

// Prompt construction. Each builder returns (system, user). The system prompt
// fixes the role and the output contract; the user prompt carries run data.
// All tasks demand a single JSON object so extraction stays uniform.

func questionnairePrompt(brief models.BusinessBrief) (string, string) {
	system := `You are a customer discovery strategist designing stakeholder interview guides.
Identify the stakeholder roles that matter for validating a business idea and write interview questions for each.
Return ONLY a JSON object with this exact shape:
{
  "primaryStakeholders": [
    {
      "index": 1,
      "name": "...",
      "description": "...",
      "problemDiscoveryQuestions": ["..."],
      "solutionValidationQuestions": ["..."],
      "followUpQuestions": ["..."]
    }
  ],
  "secondaryStakeholders": [ ...same shape... ]
}
Primary stakeholders are directly affected users or buyers; secondary stakeholders influence or depend on the decision.
Write 3-5 problem discovery questions, 3-5 solution validation questions, and 2-3 follow-up questions per stakeholder.
Questions must be open-ended and specific to this business, never generic.`

	user := briefBlock(brief) + "\nDesign the stakeholder interview guide for this business."
	return system, user
}

func personaBatchPrompt(req PersonaBatchRequest) (string, string) {
	system := `You fabricate realistic interview participants for synthetic customer research.
Return ONLY a JSON object: {"personas": [{"name": "...", "age": 34, "background": "...", "motivations": ["..."], "pain_points": ["..."], "communication_style": "...", "demographic_details": "..."}]}.
Each persona must be a distinct, plausible individual with a full name, a concrete professional background, and specific motivations and pain points tied to their role. Vary age, seniority, and outlook across the batch.`
	if req.Simplified {
		system = `You fabricate interview participants.
Return ONLY a JSON object: {"personas": [{"name": "...", "age": 34, "background": "...", "motivations": ["..."], "pain_points": ["..."], "communication_style": "...", "demographic_details": "..."}]}.
Keep each field short. Every persona needs a distinct full name.`
	}

	var b strings.Builder
	b.WriteString(briefBlock(req.Brief))
	fmt.Fprintf(&b, "\nStakeholder role: %s\n", req.Stakeholder.Name)
	if req.Stakeholder.Description != "" {
		fmt.Fprintf(&b, "Role description: %s\n", req.Stakeholder.Description)
	}
	fmt.Fprintf(&b, "\nCreate exactly %d personas for this role.\n", req.Count)
	if len(req.UsedNames) > 0 {
		fmt.Fprintf(&b, "Do not reuse any of these names: %s.\n", strings.Join(req.UsedNames, ", "))
	}
	return system, b.String()
}

func interviewPrompt(req InterviewRequest) (string, string) {
	var system strings.Builder
	fmt.Fprintf(&system, `You are %s, a %d-year-old %s.
Background: %s
Motivations: %s
Pain points: %s
Communication style: %s

You are being interviewed about a business idea. Stay fully in character and answer from this persona's lived experience.
%s
%s
Return ONLY a JSON object:
{"responses": [{"question": "...", "response": "...", "sentiment": "positive|neutral|negative", "key_insights": ["..."], "follow_up_questions": ["..."]}], "overall_sentiment": "...", "key_themes": ["..."]}
Answer every question in the order given, repeating the question text verbatim in the "question" field.`,
		req.Persona.Name,
		req.Persona.Age,
		req.Persona.StakeholderType,
		req.Persona.Background,
		strings.Join(req.Persona.Motivations, "; "),
		strings.Join(req.Persona.PainPoints, "; "),
		req.Persona.CommunicationStyle,
		styleInstruction(req.Style),
		depthInstruction(req.Depth),
	)

	var user strings.Builder
	user.WriteString(briefBlock(req.Brief))
	user.WriteString("\nInterview questions:\n")
	for i, q := range req.Stakeholder.Questions {
		fmt.Fprintf(&user, "%d. %s\n", i+1, q)
	}
	return system.String(), user.String()
}

func styleInstruction(style models.ResponseStyle) string {
	switch style {
	case models.ResponseStyleOptimistic:
		return "Lean positive: emphasise what excites you and where the idea could work for you."
	case models.ResponseStyleCritical:
		return "Be sceptical: probe weaknesses, raise objections, and talk about what would stop you from using this."
	case models.ResponseStyleMixed:
		return "Vary your tone across answers: genuinely enthusiastic about some points, openly doubtful about others."
	default:
		return "Answer honestly with a natural mix of interest and reservations, the way a real person would."
	}
}

func depthInstruction(depth models.Depth) string {
	switch depth {
	case models.DepthQuick:
		return "Keep each answer to one or two sentences."
	case models.DepthComprehensive:
		return "Give thorough answers of six or more sentences with concrete stories from your experience, and add follow-up questions you would ask the founder."
	default:
		return "Give three to five sentences per answer with at least one concrete example."
	}
}

func themePrompt(req ThemeRequest) (string, string) {
	var system string
	if req.Enhanced {
		system = `You are a qualitative research analyst extracting themes from interview transcripts.
Return ONLY a JSON object:
{"themes": [{"name": "...", "description": "...", "frequency": 3, "statements": ["verbatim quote", "..."]}],
 "enhanced_themes": [{"name": "...", "description": "...", "frequency": 3, "statements": ["..."], "sentiment": "positive|neutral|negative", "stakeholder_types": ["..."], "significance": "..."}]}
Frequency counts how many distinct interviewees voiced the theme. Statements must be verbatim quotes from the transcript.`
	} else {
		system = `You are a qualitative research analyst extracting themes from a window of interview transcripts.
Return ONLY a JSON object: {"themes": [{"name": "...", "description": "...", "frequency": 3, "statements": ["verbatim quote", "..."]}]}.
Reuse an existing theme name when the window contains more evidence for it, rather than inventing a near-duplicate.`
	}

	var user strings.Builder
	if len(req.KnownThemes) > 0 {
		fmt.Fprintf(&user, "Themes already identified in earlier windows: %s\n\n", strings.Join(req.KnownThemes, ", "))
	}
	user.WriteString("Transcript:\n")
	user.WriteString(req.Corpus)
	return system, user.String()
}

func patternPrompt(corpus string) (string, string) {
	system := `You are a research analyst detecting behavioural and cross-stakeholder patterns in interview transcripts.
Return ONLY a JSON object:
{"patterns": [{"name": "...", "description": "...", "evidence": ["verbatim quote"]}],
 "enhanced_patterns": [{"name": "...", "description": "...", "evidence": ["..."], "stakeholders_involved": ["..."], "strength": 0.8}]}
A pattern is a recurring relationship or behaviour, not a topic. Strength is in [0,1].`
	return system, "Transcript:\n" + corpus
}

func stakeholderPrompt(corpus string) (string, string) {
	system := `You are a research analyst mapping the stakeholder landscape from interview transcripts.
Return ONLY a JSON object:
{"detected_stakeholders": [{"name": "...", "demographic_profile": {"role": "...", "seniority": "..."}, "insights": ["..."], "influence_metrics": {"decision_power": 0.7, "technical_influence": 0.4, "budget_influence": 0.6}, "evidence_quotes": ["verbatim quote"]}],
 "cross_stakeholder_patterns": {"consensus_areas": ["..."], "conflict_zones": ["..."], "influence_networks": ["..."]},
 "multi_stakeholder_summary": "..."}
Influence metrics are each in [0,1]. Detect stakeholders from what interviewees actually say, including roles nobody interviewed directly.`
	return system, "Transcript:\n" + corpus
}

func sentimentPrompt(corpus string) (string, string) {
	system := `You are a research analyst scoring sentiment across interview transcripts.
Return ONLY a JSON object:
{"sentiment_overview": {"positive": 0.5, "neutral": 0.3, "negative": 0.2},
 "sentiment_details": [{"category": "...", "score": 0.4, "statements": ["verbatim quote"]}]}
The three overview shares must sum to 1.0. Detail scores range over [-1,1], negative meaning hostile sentiment.`
	return system, "Transcript:\n" + corpus
}

func personaSynthesisPrompt(corpus string) (string, string) {
	system := `You are a research analyst synthesising representative personas from interview transcripts.
Return ONLY a JSON object:
{"personas": [{"name": "...", "description": "...", "stakeholder_type": "...",
   "demographics": {"value": "...", "confidence": 0.8, "evidence": ["verbatim quote"]},
   "goals_and_motivations": {"value": "...", "confidence": 0.8, "evidence": ["..."]},
   "challenges_and_frustrations": {"value": "...", "confidence": 0.8, "evidence": ["..."]},
   "key_quotes": {"value": "...", "confidence": 0.9, "evidence": ["..."]}}],
 "enhanced_personas": [ ...same shape with richer values... ]}
Every trait needs verbatim supporting quotes of at least one full sentence. Omit a trait entirely rather than writing "unknown" or "not specified".`
	return system, "Transcript:\n" + corpus
}

func insightPrompt(req InsightRequest) (string, string) {
	system := `You are a strategy consultant turning research findings into actionable insights.
Return ONLY a JSON object:
{"insights": [{"title": "...", "description": "...", "category": "..."}],
 "enhanced_insights": [{"title": "...", "description": "...", "category": "...", "recommendations": ["..."], "impact": "high|medium|low"}]}
Each insight must be specific and decision-relevant, grounded in the findings below, never generic advice.`

	var user strings.Builder
	user.WriteString("Themes:\n")
	for _, t := range req.Themes {
		fmt.Fprintf(&user, "- %s (frequency %d): %s\n", t.Name, t.Frequency, t.Description)
	}
	user.WriteString("\nPatterns:\n")
	for _, p := range req.Patterns {
		fmt.Fprintf(&user, "- %s: %s\n", p.Name, p.Description)
	}
	if req.Intelligence != nil {
		user.WriteString("\nStakeholder landscape:\n")
		for _, ds := range req.Intelligence.DetectedStakeholders {
			fmt.Fprintf(&user, "- %s (decision power %.1f)\n", ds.Name, ds.InfluenceMetrics.DecisionPower)
		}
		if req.Intelligence.MultiStakeholderSummary != "" {
			fmt.Fprintf(&user, "Summary: %s\n", req.Intelligence.MultiStakeholderSummary)
		}
	}
	return system, user.String()
}

func singleResponsePrompt(req SingleResponseRequest) (string, string) {
	persona := req.PersonaDescription
	if persona == "" {
		persona = "a potential customer for the product being discussed"
	}
	system := fmt.Sprintf(`You are %s, answering one interview question in character.
%s
Return ONLY a JSON object: {"response": "..."}`, persona, styleInstruction(req.Style))
	return system, "Question: " + req.Question
}

func briefBlock(brief models.BusinessBrief) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business idea: %s\n", brief.BusinessIdea)
	fmt.Fprintf(&b, "Target customer: %s\n", brief.TargetCustomer)
	fmt.Fprintf(&b, "Problem being solved: %s\n", brief.Problem)
	if brief.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", brief.Industry)
	}
	if brief.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", brief.Location)
	}
	return b.String()
}
