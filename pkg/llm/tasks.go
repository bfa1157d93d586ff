package llm

import (
	"github.com/synthlab-ai/persim/pkg/models"
)

// TaskKind names one prompt task. Every gateway call carries exactly one
// kind; the kind selects the prompt pair, the response schema, and the
// metrics label. The set is closed.
type TaskKind string

const (
	TaskQuestionnaireBuild  TaskKind = "questionnaire_build"
	TaskPersonaBatch        TaskKind = "persona_batch"
	TaskInterview           TaskKind = "interview"
	TaskThemeExtraction     TaskKind = "theme_extraction"
	TaskPatternDetection    TaskKind = "pattern_detection"
	TaskStakeholderAnalysis TaskKind = "stakeholder_analysis"
	TaskSentimentAnalysis   TaskKind = "sentiment_analysis"
	TaskPersonaSynthesis    TaskKind = "persona_synthesis"
	TaskInsightSynthesis    TaskKind = "insight_synthesis"
	TaskSingleResponse      TaskKind = "single_response"
)

// QuestionnaireDoc is the raw model output for questionnaire_build. Question
// phases keep their identity here; the builder flattens them.
type QuestionnaireDoc struct {
	PrimaryStakeholders   []StakeholderDoc `json:"primaryStakeholders"`
	SecondaryStakeholders []StakeholderDoc `json:"secondaryStakeholders"`
}

// StakeholderDoc is one stakeholder as the model emits it. Index is an
// optional explicit position the model may assign; when absent the builder
// falls back to the 1-based slice position.
type StakeholderDoc struct {
	Index                       *int     `json:"index,omitempty"`
	Name                        string   `json:"name"`
	Description                 string   `json:"description"`
	ProblemDiscoveryQuestions   []string `json:"problemDiscoveryQuestions"`
	SolutionValidationQuestions []string `json:"solutionValidationQuestions"`
	FollowUpQuestions           []string `json:"followUpQuestions"`
}

// PersonaBatchRequest asks for Count personas for one stakeholder role.
// UsedNames lists names already taken in this simulation so the model does
// not reuse them. Simplified selects a stripped-down prompt used on retry.
type PersonaBatchRequest struct {
	Brief       models.BusinessBrief
	Stakeholder models.Stakeholder
	Count       int
	UsedNames   []string
	Simplified  bool
}

// InterviewRequest asks one persona to answer its stakeholder's questions.
type InterviewRequest struct {
	Brief       models.BusinessBrief
	Stakeholder models.Stakeholder
	Persona     models.Persona
	Style       models.ResponseStyle
	Depth       models.Depth
	Temperature float64
}

// InterviewDoc is the raw interview transcript. The engine stamps identity
// and derives the duration; the model never reports either.
type InterviewDoc struct {
	Responses        []models.InterviewResponse `json:"responses"`
	OverallSentiment string                     `json:"overall_sentiment"`
	KeyThemes        []string                   `json:"key_themes"`
}

// ThemeRequest covers both extraction modes: the single-pass call sets
// Enhanced and leaves KnownThemes empty, the streaming windows pass the
// names accumulated so far.
type ThemeRequest struct {
	Corpus      string
	KnownThemes []string
	Enhanced    bool
}

// ThemeResult carries plain themes and, in single-pass mode, enhanced ones.
type ThemeResult struct {
	Themes         []models.Theme         `json:"themes"`
	EnhancedThemes []models.EnhancedTheme `json:"enhanced_themes"`
}

// PatternResult is the pattern_detection output.
type PatternResult struct {
	Patterns         []models.Pattern         `json:"patterns"`
	EnhancedPatterns []models.EnhancedPattern `json:"enhanced_patterns"`
}

// SentimentResult is the sentiment_analysis output before normalisation.
type SentimentResult struct {
	Overview models.SentimentOverview `json:"sentiment_overview"`
	Details  []models.SentimentDetail `json:"sentiment_details"`
}

// PersonaSynthesisResult carries raw persona dictionaries. Field names and
// shapes vary between model replies; the analysis stage normalises them into
// the canonical persona schema and drops what fails validation.
type PersonaSynthesisResult struct {
	Personas         []map[string]any `json:"personas"`
	EnhancedPersonas []map[string]any `json:"enhanced_personas"`
}

// InsightRequest feeds the accumulated analysis artefacts back to the model.
type InsightRequest struct {
	Themes       []models.Theme
	Patterns     []models.Pattern
	Intelligence *models.StakeholderIntelligence
}

// InsightResult is the insight_synthesis output.
type InsightResult struct {
	Insights         []models.Insight         `json:"insights"`
	EnhancedInsights []models.EnhancedInsight `json:"enhanced_insights"`
}

// SingleResponseRequest asks for one standalone answer, used by the
// response-preview endpoint.
type SingleResponseRequest struct {
	Question           string
	PersonaDescription string
	Style              models.ResponseStyle
}
