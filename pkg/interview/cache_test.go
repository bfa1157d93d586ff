package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
)

func TestCacheKeyComponents(t *testing.T) {
	base := CacheKey("p1", "primary_1", "AI code review", 0.7, models.ResponseStyleRealistic)

	assert.Equal(t, base, CacheKey("p1", "primary_1", "AI code review", 0.7, models.ResponseStyleRealistic),
		"key must be deterministic")

	assert.NotEqual(t, base, CacheKey("p2", "primary_1", "AI code review", 0.7, models.ResponseStyleRealistic))
	assert.NotEqual(t, base, CacheKey("p1", "primary_2", "AI code review", 0.7, models.ResponseStyleRealistic))
	assert.NotEqual(t, base, CacheKey("p1", "primary_1", "something else", 0.7, models.ResponseStyleRealistic))
	assert.NotEqual(t, base, CacheKey("p1", "primary_1", "AI code review", 0.8, models.ResponseStyleRealistic))
	assert.NotEqual(t, base, CacheKey("p1", "primary_1", "AI code review", 0.7, models.ResponseStyleCritical))
}

func TestCacheRoundTrip(t *testing.T) {
	c := NewCache()
	key := CacheKey("p1", "primary_1", "idea", 0.7, models.ResponseStyleRealistic)

	_, ok := c.Get(key)
	assert.False(t, ok)

	iv := &models.Interview{
		PersonID:        "p1",
		StakeholderType: "Developers",
		Responses: []models.InterviewResponse{
			{Question: "Q", Response: "A", KeyInsights: []string{"i1"}},
		},
		DurationMinutes: 14,
		KeyThemes:       []string{"t1"},
	}
	c.Put(key, iv)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, iv, got)
}

func TestCacheIsolation(t *testing.T) {
	c := NewCache()
	key := CacheKey("p1", "primary_1", "idea", 0.7, models.ResponseStyleRealistic)
	iv := &models.Interview{
		PersonID:  "p1",
		Responses: []models.InterviewResponse{{Question: "Q", Response: "A"}},
	}
	c.Put(key, iv)

	// Mutating the stored source must not leak into the cache.
	iv.Responses[0].Response = "tampered"
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "A", got.Responses[0].Response)

	// Mutating a returned copy must not poison later reads.
	got.Responses[0].Response = "also tampered"
	again, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "A", again.Responses[0].Response)
}
