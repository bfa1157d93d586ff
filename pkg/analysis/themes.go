package analysis

import (
	"context"
	"fmt"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// Theme extraction mode boundary. Corpora up to windowSize characters go
// through in one call; larger ones stream through overlapping windows so no
// call exceeds the model's usable context.
const (
	windowSize    = 50000
	windowOverlap = 10000
)

// extractThemes selects the mode by corpus size. Streaming mode never
// produces enhanced themes.
func (p *Pipeline) extractThemes(ctx context.Context, corpus string) ([]models.Theme, []models.EnhancedTheme, error) {
	if len(corpus) <= windowSize {
		return p.extractSinglePass(ctx, corpus)
	}
	themes, err := p.extractStreaming(ctx, corpus)
	return themes, nil, err
}

func (p *Pipeline) extractSinglePass(ctx context.Context, corpus string) ([]models.Theme, []models.EnhancedTheme, error) {
	res, err := p.gateway.ExtractThemes(ctx, llm.ThemeRequest{Corpus: corpus, Enhanced: true})
	if err != nil {
		return nil, nil, err
	}

	enhanced := res.EnhancedThemes
	if len(enhanced) == 0 {
		enhanced = []models.EnhancedTheme{placeholderTheme(res.Themes)}
	}
	return res.Themes, enhanced, nil
}

// extractStreaming slides a window across the corpus, passing accumulated
// theme names into each call so the model extends known themes instead of
// inventing near-duplicates. A malformed window is skipped; any other
// gateway error aborts the sub-stage.
func (p *Pipeline) extractStreaming(ctx context.Context, corpus string) ([]models.Theme, error) {
	acc := newThemeAccumulator()
	step := windowSize - windowOverlap

	for start := 0; start < len(corpus); start += step {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("theme extraction cancelled: %w", err)
		}
		end := start + windowSize
		if end > len(corpus) {
			end = len(corpus)
		}

		res, err := p.gateway.ExtractThemes(ctx, llm.ThemeRequest{
			Corpus:      corpus[start:end],
			KnownThemes: acc.names(),
		})
		if err != nil {
			if llm.IsMalformed(err) {
				p.logger.Warn("skipping malformed theme window",
					"window_start", start, "window_end", end)
				continue
			}
			return nil, err
		}
		acc.merge(res.Themes)

		if end == len(corpus) {
			break
		}
	}
	return acc.themes(), nil
}

// themeAccumulator merges window outputs by theme name, preserving first
// insertion order.
type themeAccumulator struct {
	order  []string
	byName map[string]*models.Theme
}

func newThemeAccumulator() *themeAccumulator {
	return &themeAccumulator{byName: make(map[string]*models.Theme)}
}

func (a *themeAccumulator) names() []string {
	return append([]string(nil), a.order...)
}

// merge applies the accumulator rule: an existing name extends its
// statements with unseen items and keeps the elementwise max frequency; a
// new name inserts as-is.
func (a *themeAccumulator) merge(incoming []models.Theme) {
	for _, t := range incoming {
		if t.Name == "" {
			continue
		}
		existing, ok := a.byName[t.Name]
		if !ok {
			cp := t
			cp.Statements = append([]string(nil), t.Statements...)
			a.byName[t.Name] = &cp
			a.order = append(a.order, t.Name)
			continue
		}
		for _, s := range t.Statements {
			if !containsString(existing.Statements, s) {
				existing.Statements = append(existing.Statements, s)
			}
		}
		if t.Frequency > existing.Frequency {
			existing.Frequency = t.Frequency
		}
		if existing.Description == "" {
			existing.Description = t.Description
		}
	}
}

func (a *themeAccumulator) themes() []models.Theme {
	out := make([]models.Theme, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.byName[name])
	}
	return out
}

// placeholderTheme stands in when the model produced plain themes but no
// enhanced ones, so downstream consumers always have an enhanced view.
func placeholderTheme(themes []models.Theme) models.EnhancedTheme {
	statements := make([]string, 0, 3)
	for _, t := range themes {
		if len(t.Statements) > 0 && len(statements) < 3 {
			statements = append(statements, t.Statements[0])
		}
	}
	frequency := len(themes)
	if frequency == 0 {
		frequency = 1
	}
	return models.EnhancedTheme{
		Theme: models.Theme{
			Name:        "General Themes",
			Description: "General discussion topics aggregated from the interview corpus.",
			Frequency:   frequency,
			Statements:  statements,
		},
		Sentiment: "neutral",
	}
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
