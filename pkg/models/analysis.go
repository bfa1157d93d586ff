package models

import (
	"math"
	"time"
)

// Theme is one recurring topic extracted from the interview corpus.
type Theme struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Frequency   int      `json:"frequency"`
	Statements  []string `json:"statements"`
}

// EnhancedTheme extends a theme with stakeholder attribution and tone.
// Only the single-pass extraction mode produces enhanced themes.
type EnhancedTheme struct {
	Theme
	Sentiment        string   `json:"sentiment,omitempty"`
	StakeholderTypes []string `json:"stakeholder_types,omitempty"`
	Significance     string   `json:"significance,omitempty"`
}

// Pattern is a cross-stakeholder relationship surfaced by pattern detection.
type Pattern struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence"`
}

// EnhancedPattern adds the stakeholders involved and a strength score.
type EnhancedPattern struct {
	Pattern
	StakeholdersInvolved []string `json:"stakeholders_involved,omitempty"`
	Strength             float64  `json:"strength,omitempty"`
}

// SentimentOverview is the corpus-wide sentiment distribution. The three
// shares must sum to 1.0 within a 0.001 tolerance.
type SentimentOverview struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// DefaultSentimentOverview is used when the model reports nothing usable.
func DefaultSentimentOverview() SentimentOverview {
	return SentimentOverview{Positive: 0.33, Neutral: 0.34, Negative: 0.33}
}

// Normalize rescales the distribution to sum to 1.0. A zero-sum distribution
// is replaced with the default split.
func (s *SentimentOverview) Normalize() {
	sum := s.Positive + s.Neutral + s.Negative
	if sum <= 0 {
		*s = DefaultSentimentOverview()
		return
	}
	s.Positive /= sum
	s.Neutral /= sum
	s.Negative /= sum
}

// IsNormalized reports whether the distribution sums to 1.0 ± 0.001.
func (s SentimentOverview) IsNormalized() bool {
	return math.Abs(s.Positive+s.Neutral+s.Negative-1.0) <= 0.001
}

// SentimentDetail is a categorised sentiment finding with verbatim support.
// Score ranges over [-1, 1].
type SentimentDetail struct {
	Category   string   `json:"category"`
	Score      float64  `json:"score"`
	Statements []string `json:"statements"`
}

// Trait is an attributed persona field: a value, the model's confidence in
// [0, 1], and the verbatim quotes that support it.
type Trait struct {
	Value      string   `json:"value"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// Demographics is the decomposed demographic trait of an analysis persona.
// The sub-fields are filled by keyword-routing the trait's evidence items.
type Demographics struct {
	Value               string   `json:"value"`
	Confidence          float64  `json:"confidence"`
	ExperienceLevel     string   `json:"experience_level,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	Location            string   `json:"location,omitempty"`
	ProfessionalContext []string `json:"professional_context,omitempty"`
	Roles               []string `json:"roles,omitempty"`
	Evidence            []string `json:"evidence"`
}

// AnalysisPersona is a persona synthesised from the corpus (distinct from the
// simulation's fabricated interviewees). Every trait carries confidence and
// evidence; traits that failed validation are absent, not defaulted.
type AnalysisPersona struct {
	Name                      string        `json:"name"`
	Description               string        `json:"description,omitempty"`
	StakeholderType           string        `json:"stakeholder_type,omitempty"`
	Demographics              *Demographics `json:"demographics,omitempty"`
	GoalsAndMotivations       *Trait        `json:"goals_and_motivations,omitempty"`
	ChallengesAndFrustrations *Trait        `json:"challenges_and_frustrations,omitempty"`
	KeyQuotes                 *Trait        `json:"key_quotes,omitempty"`
	OverallConfidence         float64       `json:"overall_confidence"`
}

// InfluenceMetrics scores a detected stakeholder's sway over the buying
// decision. Each share is in [0, 1].
type InfluenceMetrics struct {
	DecisionPower      float64 `json:"decision_power"`
	TechnicalInfluence float64 `json:"technical_influence"`
	BudgetInfluence    float64 `json:"budget_influence"`
}

// DetectedStakeholder is a stakeholder-like entity the analysis identified in
// the corpus, distinct from the questionnaire's stakeholders.
type DetectedStakeholder struct {
	Name               string            `json:"name"`
	DemographicProfile map[string]string `json:"demographic_profile,omitempty"`
	Insights           []string          `json:"insights"`
	InfluenceMetrics   InfluenceMetrics  `json:"influence_metrics"`
	EvidenceQuotes     []string          `json:"evidence_quotes"`
}

// CrossStakeholderPatterns captures agreement and friction between the
// detected stakeholders.
type CrossStakeholderPatterns struct {
	ConsensusAreas    []string `json:"consensus_areas"`
	ConflictZones     []string `json:"conflict_zones"`
	InfluenceNetworks []string `json:"influence_networks"`
}

// StakeholderIntelligence is the stakeholder-analysis sub-stage output.
type StakeholderIntelligence struct {
	DetectedStakeholders     []DetectedStakeholder    `json:"detected_stakeholders"`
	CrossStakeholderPatterns CrossStakeholderPatterns `json:"cross_stakeholder_patterns"`
	MultiStakeholderSummary  string                   `json:"multi_stakeholder_summary"`
	ProcessingMetadata       map[string]any           `json:"processing_metadata,omitempty"`
}

// Insight is one actionable finding from insight synthesis.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// EnhancedInsight adds recommendations and an impact estimate.
type EnhancedInsight struct {
	Insight
	Recommendations []string `json:"recommendations,omitempty"`
	Impact          string   `json:"impact,omitempty"`
}

// DetailedAnalysis is the envelope persisted in the analysis_results row and
// consumed by the dataset assembler. Nested lists default to empty, never nil,
// so the serialised envelope always carries every key.
type DetailedAnalysis struct {
	Themes                  []Theme                  `json:"themes"`
	EnhancedThemes          []EnhancedTheme          `json:"enhanced_themes"`
	Patterns                []Pattern                `json:"patterns"`
	EnhancedPatterns        []EnhancedPattern        `json:"enhanced_patterns"`
	SentimentOverview       SentimentOverview        `json:"sentiment_overview"`
	SentimentDetails        []SentimentDetail        `json:"sentiment_details"`
	Personas                []AnalysisPersona        `json:"personas"`
	EnhancedPersonas        []AnalysisPersona        `json:"enhanced_personas"`
	Insights                []Insight                `json:"insights"`
	EnhancedInsights        []EnhancedInsight        `json:"enhanced_insights"`
	StakeholderIntelligence *StakeholderIntelligence `json:"stakeholder_intelligence,omitempty"`
	Status                  string                   `json:"status"`
	CreatedAt               time.Time                `json:"created_at"`
	FileName                string                   `json:"file_name,omitempty"`
	FileSize                int                      `json:"file_size,omitempty"`
	Error                   string                   `json:"error,omitempty"`
}

// NewDetailedAnalysis returns an envelope with every collection initialised
// and the default sentiment split.
func NewDetailedAnalysis() *DetailedAnalysis {
	return &DetailedAnalysis{
		Themes:            []Theme{},
		EnhancedThemes:    []EnhancedTheme{},
		Patterns:          []Pattern{},
		EnhancedPatterns:  []EnhancedPattern{},
		SentimentOverview: DefaultSentimentOverview(),
		SentimentDetails:  []SentimentDetail{},
		Personas:          []AnalysisPersona{},
		EnhancedPersonas:  []AnalysisPersona{},
		Insights:          []Insight{},
		EnhancedInsights:  []EnhancedInsight{},
		CreatedAt:         time.Now().UTC(),
	}
}

// AnalysisRecord mirrors one analysis_results row.
type AnalysisRecord struct {
	AnalysisID   int               `json:"analysis_id"`
	SimulationID *string           `json:"simulation_id,omitempty"`
	Status       string            `json:"status"`
	Results      *DetailedAnalysis `json:"results,omitempty"`
	LLMProvider  string            `json:"llm_provider"`
	LLMModel     string            `json:"llm_model"`
	CreatedAt    time.Time         `json:"created_at"`
	Error        string            `json:"error,omitempty"`
}
