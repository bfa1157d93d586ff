package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

const (
	// defaultMaxAttempts bounds the gateway's internal retry loop. The
	// interview fanout passes 1 and drives its own retries instead.
	defaultMaxAttempts = 3

	backoffBase  = time.Second
	maxBodyBytes = 1 << 20
)

type geminiRequest struct {
	Contents          []geminiContent  `json:"contents"`
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
	SafetySettings    []geminiSafety   `json:"safetySettings,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type geminiSafety struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Interview transcripts are fiction about business products; the default
// thresholds misfire on critical-style answers, so filtering is disabled.
var defaultSafetySettings = []geminiSafety{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

// callSpec is one prompt task ready for the wire.
type callSpec struct {
	task        TaskKind
	system      string
	user        string
	temperature float64
	maxAttempts int
}

// call runs the retry loop for one task: generate, extract JSON, validate
// against the task schema. Transient upstream failures and malformed output
// retry with exponential backoff plus jitter; the final attempt forces
// temperature 0.0 to maximise structural compliance.
func (c *Client) call(ctx context.Context, spec callSpec) (string, error) {
	attempts := spec.maxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := sleepBackoff(ctx, attempt-1); err != nil {
				return "", newCallError(spec.task, KindCancelled, err)
			}
		}

		temperature := spec.temperature
		if attempts > 1 && attempt == attempts {
			temperature = 0.0
		}

		doc, err := c.attempt(ctx, spec.task, spec.system, spec.user, temperature)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if IsCancelled(err) || IsFatal(err) || !IsTransient(err) {
			break
		}
		c.logger.Warn("LLM call failed, retrying",
			"task", string(spec.task),
			"attempt", attempt,
			"error", err)
	}
	return "", lastErr
}

// attempt performs a single generate call and returns the validated JSON doc.
func (c *Client) attempt(ctx context.Context, task TaskKind, system, user string, temperature float64) (string, error) {
	text, err := c.generateText(ctx, task, system, user, temperature)
	if err != nil {
		return "", err
	}
	doc, err := ExtractObject(text)
	if err != nil {
		return "", newCallError(task, KindMalformedOutput, err)
	}
	if err := validateTaskOutput(task, doc); err != nil {
		return "", newCallError(task, KindMalformedOutput, err)
	}
	return doc, nil
}

// generateText performs one generateContent request and joins the candidate
// text parts. Classification: 429/5xx transient, 400/401/403 fatal, safety
// blocks fatal, truncation malformed.
func (c *Client) generateText(ctx context.Context, task TaskKind, system, user string, temperature float64) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
		GenerationConfig: &geminiGenConfig{
			Temperature:      &temperature,
			MaxOutputTokens:  c.maxOutputTokens,
			ResponseMimeType: "application/json",
		},
		SafetySettings: defaultSafetySettings,
	}
	if system != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", newCallError(task, KindInvalidInput, fmt.Errorf("marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", newCallError(task, KindInvalidInput, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", newCallError(task, KindCancelled, ctx.Err())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", newCallError(task, KindUpstreamFailure, &transientError{fmt.Errorf("call timed out after %s", c.timeout)})
		}
		return "", newCallError(task, KindUpstreamFailure, &transientError{err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", newCallError(task, KindUpstreamFailure, &transientError{fmt.Errorf("read response: %w", err)})
	}

	if resp.StatusCode != http.StatusOK {
		return "", newCallError(task, KindUpstreamFailure, classifyHTTPError(resp.StatusCode, body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", newCallError(task, KindMalformedOutput, fmt.Errorf("parse provider response: %w", err))
	}

	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		return "", newCallError(task, KindUpstreamFailure,
			&fatalError{fmt.Errorf("prompt blocked: %s", parsed.PromptFeedback.BlockReason)})
	}
	if len(parsed.Candidates) == 0 {
		return "", newCallError(task, KindMalformedOutput, errors.New("no candidates in response"))
	}

	candidate := parsed.Candidates[0]
	switch candidate.FinishReason {
	case "", "STOP":
	case "MAX_TOKENS":
		return "", newCallError(task, KindMalformedOutput,
			fmt.Errorf("output truncated at %d tokens", c.maxOutputTokens))
	case "SAFETY", "RECITATION":
		return "", newCallError(task, KindUpstreamFailure,
			&fatalError{fmt.Errorf("generation stopped: %s", candidate.FinishReason)})
	default:
		return "", newCallError(task, KindMalformedOutput,
			fmt.Errorf("unexpected finish reason %q", candidate.FinishReason))
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", newCallError(task, KindMalformedOutput, errors.New("empty candidate text"))
	}
	return text.String(), nil
}

func classifyHTTPError(status int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	err := fmt.Errorf("provider returned HTTP %d: %s", status, snippet)
	switch {
	case status == http.StatusTooManyRequests || status >= 500:
		return &transientError{err}
	default:
		return &fatalError{err}
	}
}

// sleepBackoff waits 1s·2^(retry−1) plus jitter in [0,1)s, honouring ctx.
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
