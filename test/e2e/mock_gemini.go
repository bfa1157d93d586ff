package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// MockGemini impersonates the generateContent endpoint over real HTTP, so the
// production gateway runs unmodified against it: request marshalling, schema
// validation, error classification, retries, and call metrics all execute.
//
// Calls are routed to prompt tasks by distinctive system-prompt phrases. Every
// task has a default reply that satisfies both the task schema and the
// downstream acceptance rules, so an unscripted mock yields a fully completed
// pipeline; tests override individual tasks to inject failures or stalls.
type MockGemini struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	responders map[llm.TaskKind]Responder
	calls      map[llm.TaskKind]int
	nameSeq    int
}

// Responder overrides one task's behaviour. Returning http.StatusOK wraps doc
// in a STOP candidate envelope; any other status is sent as a provider error
// with doc as the body.
type Responder func(r *http.Request, userPrompt string) (status int, doc string)

// NewMockGemini starts the stand-in server. It is shut down via t.Cleanup.
func NewMockGemini(t *testing.T) *MockGemini {
	t.Helper()
	m := &MockGemini{
		t:          t,
		responders: make(map[llm.TaskKind]Responder),
		calls:      make(map[llm.TaskKind]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

// URL returns the base URL to put into LLMConfig.BaseURL.
func (m *MockGemini) URL() string { return m.server.URL }

// Script installs a responder for one task.
func (m *MockGemini) Script(task llm.TaskKind, fn Responder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responders[task] = fn
}

// RespondWith makes every call for task return the given JSON document.
func (m *MockGemini) RespondWith(task llm.TaskKind, doc string) {
	m.Script(task, func(*http.Request, string) (int, string) {
		return http.StatusOK, doc
	})
}

// FailWith makes every call for task fail with an HTTP status. Statuses in
// the 4xx range (except 429) are classified fatal by the gateway, so failure
// tests finish without sitting through retry backoff.
func (m *MockGemini) FailWith(task llm.TaskKind, status int, message string) {
	body := fmt.Sprintf(`{"error": {"code": %d, "message": %q}}`, status, message)
	m.Script(task, func(*http.Request, string) (int, string) {
		return status, body
	})
}

// Block parks every call for task until the caller abandons the request,
// which is what happens when the job context is cancelled. Pair with
// CallCount to wait until at least one call is inside the block.
func (m *MockGemini) Block(task llm.TaskKind) {
	m.Script(task, func(r *http.Request, _ string) (int, string) {
		<-r.Context().Done()
		return http.StatusServiceUnavailable, "request abandoned"
	})
}

// CallCount reports how many calls task has received so far.
func (m *MockGemini) CallCount(task llm.TaskKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[task]
}

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
}

func (m *MockGemini) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		m.t.Errorf("mock gemini: undecodable request: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	system := ""
	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			system += p.Text
		}
	}
	user := ""
	for _, c := range req.Contents {
		for _, p := range c.Parts {
			user += p.Text
		}
	}

	task, ok := classifyTask(system)
	if !ok {
		m.t.Errorf("mock gemini: unrecognised system prompt: %.120s", system)
		http.Error(w, "unrecognised prompt", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.calls[task]++
	responder := m.responders[task]
	m.mu.Unlock()

	if responder != nil {
		status, doc := responder(r, user)
		if status != http.StatusOK {
			http.Error(w, doc, status)
			return
		}
		writeCandidate(w, doc)
		return
	}
	writeCandidate(w, m.defaultDoc(task, user))
}

// taskMarkers pairs each prompt task with a phrase that appears in its system
// prompt and in no other.
var taskMarkers = []struct {
	marker string
	task   llm.TaskKind
}{
	{"customer discovery strategist", llm.TaskQuestionnaireBuild},
	{"You fabricate", llm.TaskPersonaBatch},
	{"being interviewed about a business idea", llm.TaskInterview},
	{"extracting themes", llm.TaskThemeExtraction},
	{"detecting behavioural and cross-stakeholder patterns", llm.TaskPatternDetection},
	{"mapping the stakeholder landscape", llm.TaskStakeholderAnalysis},
	{"scoring sentiment", llm.TaskSentimentAnalysis},
	{"synthesising representative personas", llm.TaskPersonaSynthesis},
	{"turning research findings into actionable insights", llm.TaskInsightSynthesis},
	{"answering one interview question in character", llm.TaskSingleResponse},
}

func classifyTask(systemPrompt string) (llm.TaskKind, bool) {
	for _, tm := range taskMarkers {
		if strings.Contains(systemPrompt, tm.marker) {
			return tm.task, true
		}
	}
	return "", false
}

func writeCandidate(w http.ResponseWriter, doc string) {
	resp := map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"parts": []map[string]any{{"text": doc}}},
			"finishReason": "STOP",
		}},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (m *MockGemini) defaultDoc(task llm.TaskKind, userPrompt string) string {
	switch task {
	case llm.TaskQuestionnaireBuild:
		return questionnaireDoc
	case llm.TaskPersonaBatch:
		return m.personaBatchDoc(userPrompt)
	case llm.TaskInterview:
		return interviewDoc(userPrompt)
	case llm.TaskThemeExtraction:
		return themeDoc
	case llm.TaskPatternDetection:
		return patternDoc
	case llm.TaskStakeholderAnalysis:
		return stakeholderDoc
	case llm.TaskSentimentAnalysis:
		return sentimentDoc
	case llm.TaskPersonaSynthesis:
		return personaSynthesisDoc
	case llm.TaskInsightSynthesis:
		return insightDoc
	case llm.TaskSingleResponse:
		return singleResponseDoc
	default:
		m.t.Errorf("mock gemini: no default document for task %q", task)
		return "{}"
	}
}

// personaCountRe extracts the requested batch size from the user prompt.
var personaCountRe = regexp.MustCompile(`Create exactly (\d+) personas`)

// personaBatchDoc fabricates the requested number of personas with globally
// unique names, so the engine's per-stakeholder dedup never rejects one.
func (m *MockGemini) personaBatchDoc(userPrompt string) string {
	count := 1
	if match := personaCountRe.FindStringSubmatch(userPrompt); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			count = n
		}
	}

	personas := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		personas = append(personas, map[string]any{
			"name":                m.nextName(),
			"age":                 29 + 3*i,
			"background":          "Coordinates the household's food shopping and cooking around a full-time job.",
			"motivations":         []string{"Spend less of the weekend on planning", "Stop wasting groceries"},
			"pain_points":         []string{"Decision fatigue by Thursday", "Half-used vegetables thrown out weekly"},
			"communication_style": "direct and practical",
			"demographic_details": "Suburban dual-income household with two children",
		})
	}
	doc, _ := json.Marshal(map[string]any{"personas": personas})
	return string(doc)
}

var (
	mockFirstNames = []string{"Maya", "Tomas", "Priya", "Jonas", "Elif", "Marcus", "Ingrid", "Felix"}
	mockLastNames  = []string{"Lindqvist", "Okafor", "Marchetti", "Novak", "Tanaka"}
)

func (m *MockGemini) nextName() string {
	m.mu.Lock()
	seq := m.nameSeq
	m.nameSeq++
	m.mu.Unlock()

	first := mockFirstNames[seq%len(mockFirstNames)]
	last := mockLastNames[(seq/len(mockFirstNames))%len(mockLastNames)]
	if cycle := seq / (len(mockFirstNames) * len(mockLastNames)); cycle > 0 {
		return fmt.Sprintf("%s %s %d", first, last, cycle+1)
	}
	return first + " " + last
}

// questionLineRe matches the numbered question lines of the interview prompt.
var questionLineRe = regexp.MustCompile(`(?m)^\d+\. (.+)$`)

var interviewAnswers = []string{
	"Honestly, deciding what to cook every single day wears me out more than the cooking itself. By Thursday I just give up and order in.",
	"We end up throwing away half the vegetables we buy because there was never a plan for them. That bothers me more than the money.",
	"If it does not happen on Sunday evening it does not happen at all. That is the only slot where I can think a week ahead.",
	"Anything that gives me my Sunday evening back is worth money to me, but another monthly subscription is a hard sell in this house.",
	"I am the one who decides what everyone eats, whether I like it or not, so the tool has to work for me first and the family second.",
}

// interviewDoc echoes every numbered question from the prompt, as the real
// model is instructed to, and cycles through canned in-character answers.
func interviewDoc(userPrompt string) string {
	matches := questionLineRe.FindAllStringSubmatch(userPrompt, -1)
	responses := make([]map[string]any, 0, len(matches))
	for i, match := range matches {
		responses = append(responses, map[string]any{
			"question":     match[1],
			"response":     interviewAnswers[i%len(interviewAnswers)],
			"sentiment":    []string{"positive", "neutral", "negative"}[i%3],
			"key_insights": []string{"Planning effort, not cooking skill, is the bottleneck"},
		})
	}
	if len(responses) == 0 {
		// Should not happen; the engine rejects stakeholders without questions.
		responses = append(responses, map[string]any{
			"question": "How do you plan meals today?",
			"response": interviewAnswers[0],
		})
	}
	doc, _ := json.Marshal(map[string]any{
		"responses":         responses,
		"overall_sentiment": "neutral",
		"key_themes":        []string{"planning fatigue", "food waste"},
	})
	return string(doc)
}

// Canned analysis documents. Contents are chosen to survive every downstream
// acceptance rule: trait values of at least 10 characters, evidence quotes of
// at least 20, insight titles and descriptions present.
const questionnaireDoc = `{
  "primaryStakeholders": [
    {
      "index": 1,
      "name": "Working Parents",
      "description": "Dual-income households that own the weekly meal plan",
      "problemDiscoveryQuestions": [
        "Walk me through how you decided what to cook last week.",
        "What happens in your kitchen on a weeknight when there is no plan?",
        "How much food would you say you throw away in a normal week?"
      ],
      "solutionValidationQuestions": [
        "If a service planned your week of meals automatically, what would it need to get right?",
        "What would make you stop using a meal planning service after a month?"
      ],
      "followUpQuestions": [
        "Who else in your household would need to be convinced?"
      ]
    }
  ],
  "secondaryStakeholders": [
    {
      "index": 1,
      "name": "Grocery Retailers",
      "description": "Stores whose order volumes shift when households plan ahead",
      "problemDiscoveryQuestions": [
        "How do weekly planning habits among your customers show up in your sales data?",
        "What do unplanned shoppers buy that planned shoppers do not?",
        "Where does food waste show up in your own operation?"
      ],
      "solutionValidationQuestions": [
        "What would a meal planning partner have to offer for you to integrate with it?",
        "How would smaller but more predictable baskets affect your margins?"
      ],
      "followUpQuestions": [
        "Which department would own a partnership like this?"
      ]
    }
  ]
}`

const themeDoc = `{
  "themes": [
    {
      "name": "Planning fatigue",
      "description": "Deciding what to cook every day wears people down more than cooking",
      "frequency": 4,
      "statements": ["Honestly, deciding what to cook every single day wears me out more than the cooking itself."]
    },
    {
      "name": "Grocery waste",
      "description": "Shopping without a plan produces food waste that bothers households",
      "frequency": 3,
      "statements": ["We end up throwing away half the vegetables we buy because there was never a plan for them."]
    }
  ],
  "enhanced_themes": [
    {
      "name": "Planning fatigue",
      "description": "Deciding what to cook every day wears people down more than cooking",
      "frequency": 4,
      "statements": ["Honestly, deciding what to cook every single day wears me out more than the cooking itself."],
      "sentiment": "negative",
      "stakeholder_types": ["Working Parents"],
      "significance": "Primary driver of willingness to pay"
    }
  ]
}`

const patternDoc = `{
  "patterns": [
    {
      "name": "Sunday batch planning",
      "description": "Households concentrate all planning into one weekend slot",
      "evidence": ["If it does not happen on Sunday evening it does not happen at all."]
    }
  ],
  "enhanced_patterns": [
    {
      "name": "Sunday batch planning",
      "description": "Households concentrate all planning into one weekend slot",
      "evidence": ["If it does not happen on Sunday evening it does not happen at all."],
      "stakeholders_involved": ["Working Parents"],
      "strength": 0.8
    }
  ]
}`

const stakeholderDoc = `{
  "detected_stakeholders": [
    {
      "name": "Household meal planner",
      "demographic_profile": {"role": "parent", "seniority": "n/a"},
      "insights": ["Owns the weekly plan and the grocery budget"],
      "influence_metrics": {"decision_power": 0.9, "technical_influence": 0.3, "budget_influence": 0.7},
      "evidence_quotes": ["I am the one who decides what everyone eats, whether I like it or not, so the tool has to work for me first and the family second."]
    }
  ],
  "cross_stakeholder_patterns": {
    "consensus_areas": ["Less waste benefits every party"],
    "conflict_zones": ["Retailers want bigger baskets, planners want smaller predictable ones"],
    "influence_networks": ["Planner decides, partner holds a veto"]
  },
  "multi_stakeholder_summary": "Planners hold the purchase decision; retailers follow volume."
}`

const sentimentDoc = `{
  "sentiment_overview": {"positive": 0.5, "neutral": 0.3, "negative": 0.2},
  "sentiment_details": [
    {
      "category": "time savings",
      "score": 0.8,
      "statements": ["Anything that gives me my Sunday evening back is worth money to me, but another monthly subscription is a hard sell in this house."]
    },
    {
      "category": "subscription pricing",
      "score": -0.4,
      "statements": ["Another monthly subscription is a hard sell in this house."]
    }
  ]
}`

const personaSynthesisDoc = `{
  "personas": [
    {
      "name": "The Overloaded Planner",
      "description": "Working parent who owns the family meal plan and resents the overhead",
      "stakeholder_type": "Working Parents",
      "demographics": {
        "value": "Mid-career working parent of two",
        "confidence": 0.8,
        "evidence": ["I have been a project manager for twelve years and still cannot plan dinner."]
      },
      "goals_and_motivations": {
        "value": "Reclaim evenings from repetitive planning work",
        "confidence": 0.85,
        "evidence": ["Anything that gives me my Sunday evening back is worth money to me."]
      },
      "challenges_and_frustrations": {
        "value": "Decision fatigue and food waste from unplanned shopping",
        "confidence": 0.8,
        "evidence": ["We end up throwing away half the vegetables we buy because there was never a plan for them."]
      },
      "key_quotes": {
        "value": "Deciding what to cook wears me out more than cooking",
        "confidence": 0.9,
        "evidence": ["Honestly, deciding what to cook every single day wears me out more than the cooking itself."]
      }
    }
  ],
  "enhanced_personas": [
    {
      "name": "The Overloaded Planner",
      "description": "Working parent who owns the family meal plan and resents the overhead",
      "stakeholder_type": "Working Parents",
      "demographics": {
        "value": "Mid-career working parent of two in a dual-income household",
        "confidence": 0.8,
        "evidence": ["I have been a project manager for twelve years and still cannot plan dinner."]
      },
      "goals_and_motivations": {
        "value": "Reclaim evenings from repetitive planning work without adding another chore",
        "confidence": 0.85,
        "evidence": ["Anything that gives me my Sunday evening back is worth money to me."]
      },
      "challenges_and_frustrations": {
        "value": "Decision fatigue by mid-week and food waste from unplanned shopping",
        "confidence": 0.8,
        "evidence": ["We end up throwing away half the vegetables we buy because there was never a plan for them."]
      },
      "key_quotes": {
        "value": "Deciding what to cook wears me out more than cooking",
        "confidence": 0.9,
        "evidence": ["Honestly, deciding what to cook every single day wears me out more than the cooking itself."]
      }
    }
  ]
}`

const insightDoc = `{
  "insights": [
    {
      "title": "Lead with time savings",
      "description": "Position the planner around reclaimed evenings, not recipe variety",
      "category": "positioning"
    }
  ],
  "enhanced_insights": [
    {
      "title": "Lead with time savings",
      "description": "Position the planner around reclaimed evenings, not recipe variety",
      "category": "positioning",
      "recommendations": ["Anchor onboarding on the hours saved per week"],
      "impact": "high"
    }
  ]
}`

const singleResponseDoc = `{"response": "I would absolutely try it, though the price would decide whether it sticks past the first month."}`
