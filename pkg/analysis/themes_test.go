package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

func TestExtractThemesSinglePassAtBoundary(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	p := NewPipeline(gw)
	corpus := strings.Repeat("a", windowSize)

	_, enhanced, err := p.extractThemes(context.Background(), corpus)
	require.NoError(t, err)

	require.Len(t, gw.themeCalls, 1, "corpus at the boundary stays single-pass")
	assert.True(t, gw.themeCalls[0].Enhanced)
	assert.Empty(t, gw.themeCalls[0].KnownThemes)
	assert.NotEmpty(t, enhanced)
}

func TestExtractThemesStreamsOverBoundary(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(req llm.ThemeRequest) (*llm.ThemeResult, error) {
		return &llm.ThemeResult{Themes: []models.Theme{{Name: "Latency", Frequency: 2}}}, nil
	}
	p := NewPipeline(gw)
	corpus := strings.Repeat("a", windowSize+1)

	themes, enhanced, err := p.extractThemes(context.Background(), corpus)
	require.NoError(t, err)

	require.Len(t, gw.themeCalls, 2, "one character over the boundary needs a second window")
	assert.Len(t, gw.themeCalls[0].Corpus, windowSize)
	assert.Len(t, gw.themeCalls[1].Corpus, windowOverlap+1, "second window covers the overlap plus the tail")

	assert.False(t, gw.themeCalls[0].Enhanced)
	assert.False(t, gw.themeCalls[1].Enhanced)
	assert.Nil(t, enhanced, "streaming mode produces no enhanced themes")

	assert.Empty(t, gw.themeCalls[0].KnownThemes)
	assert.Equal(t, []string{"Latency"}, gw.themeCalls[1].KnownThemes,
		"later windows receive the names accumulated so far")

	require.Len(t, themes, 1)
	assert.Equal(t, "Latency", themes[0].Name)
}

func TestStreamingMergeExtendsThemes(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	call := 0
	gw.themeFn = func(req llm.ThemeRequest) (*llm.ThemeResult, error) {
		call++
		if call == 1 {
			return &llm.ThemeResult{Themes: []models.Theme{
				{Name: "Cost", Frequency: 2, Statements: []string{"too expensive"}},
			}}, nil
		}
		return &llm.ThemeResult{Themes: []models.Theme{
			{Name: "Cost", Description: "pricing concerns", Frequency: 5, Statements: []string{"too expensive", "budget is tight"}},
			{Name: "Onboarding", Frequency: 1, Statements: []string{"setup took weeks"}},
		}}, nil
	}
	p := NewPipeline(gw)

	themes, err := p.extractStreaming(context.Background(), strings.Repeat("a", windowSize+1))
	require.NoError(t, err)

	require.Len(t, themes, 2)
	assert.Equal(t, "Cost", themes[0].Name, "first insertion order wins")
	assert.Equal(t, 5, themes[0].Frequency, "frequency keeps the max across windows")
	assert.Equal(t, []string{"too expensive", "budget is tight"}, themes[0].Statements, "statements extend without duplicates")
	assert.Equal(t, "pricing concerns", themes[0].Description, "later window fills an empty description")
	assert.Equal(t, "Onboarding", themes[1].Name)
}

func TestStreamingSkipsMalformedWindow(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	call := 0
	gw.themeFn = func(req llm.ThemeRequest) (*llm.ThemeResult, error) {
		call++
		if call == 1 {
			return nil, &llm.CallError{Kind: llm.KindMalformedOutput, Task: llm.TaskThemeExtraction, Err: errors.New("fence soup")}
		}
		return &llm.ThemeResult{Themes: []models.Theme{{Name: "Survivor", Frequency: 1}}}, nil
	}
	p := NewPipeline(gw)

	themes, err := p.extractStreaming(context.Background(), strings.Repeat("a", windowSize+1))
	require.NoError(t, err, "a garbled window is skipped, not fatal")
	require.Len(t, themes, 1)
	assert.Equal(t, "Survivor", themes[0].Name)
	assert.Equal(t, 2, call)
}

func TestStreamingPropagatesUpstreamFailure(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(llm.ThemeRequest) (*llm.ThemeResult, error) {
		return nil, &llm.CallError{Kind: llm.KindUpstreamFailure, Task: llm.TaskThemeExtraction, Err: errors.New("503")}
	}
	p := NewPipeline(gw)

	_, err := p.extractStreaming(context.Background(), strings.Repeat("a", windowSize+1))
	require.Error(t, err)
	assert.Len(t, gw.themeCalls, 1, "transport failures stop the window loop")
}

func TestStreamingStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(llm.ThemeRequest) (*llm.ThemeResult, error) {
		cancel()
		return &llm.ThemeResult{Themes: []models.Theme{{Name: "T", Frequency: 1}}}, nil
	}
	p := NewPipeline(gw)

	_, err := p.extractStreaming(ctx, strings.Repeat("a", 3*windowSize))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.Len(t, gw.themeCalls, 1)
}

func TestSinglePassPlaceholderWhenEnhancedMissing(t *testing.T) {
	gw := &fakeAnalysisGateway{}
	gw.themeFn = func(llm.ThemeRequest) (*llm.ThemeResult, error) {
		return &llm.ThemeResult{Themes: []models.Theme{
			{Name: "A", Frequency: 2, Statements: []string{"a1", "a2"}},
			{Name: "B", Frequency: 1, Statements: []string{"b1"}},
		}}, nil
	}
	p := NewPipeline(gw)

	themes, enhanced, err := p.extractSinglePass(context.Background(), "short corpus")
	require.NoError(t, err)
	assert.Len(t, themes, 2)

	require.Len(t, enhanced, 1)
	ph := enhanced[0]
	assert.Equal(t, "General Themes", ph.Name)
	assert.Equal(t, 2, ph.Frequency, "placeholder frequency is the plain theme count")
	assert.Equal(t, []string{"a1", "b1"}, ph.Statements, "first statement of each theme")
	assert.Equal(t, "neutral", ph.Sentiment)
}

func TestPlaceholderThemeFloorsFrequency(t *testing.T) {
	ph := placeholderTheme(nil)
	assert.Equal(t, 1, ph.Frequency)
	assert.Empty(t, ph.Statements)
}
