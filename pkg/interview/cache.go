package interview

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/models"
)

// Cache memoises finished interviews within the process. It is advisory:
// losing it costs recomputation, never correctness. Unbounded by design;
// one run holds at most stakeholders × people_per_stakeholder entries.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*models.Interview
}

// NewCache returns an empty interview cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*models.Interview)}
}

// CacheKey fingerprints the inputs that determine an interview's content.
// Question text is deliberately excluded: the stakeholder id already pins
// the questionnaire position, and hashing free-form text would defeat reuse
// across cosmetic rewordings. A hit may therefore return an answer the model
// would no longer produce; that staleness is the accepted trade-off.
func CacheKey(personaID, stakeholderID, businessIdea string, temperature float64, style models.ResponseStyle) string {
	parts := strings.Join([]string{
		personaID,
		stakeholderID,
		businessIdea,
		strconv.FormatFloat(temperature, 'f', -1, 64),
		string(style),
	}, "\x1f")
	sum := sha256.Sum256([]byte(parts))
	return hex.EncodeToString(sum[:])
}

// Get returns a deep copy of the cached interview for key, if present.
func (c *Cache) Get(key string) (*models.Interview, bool) {
	c.mu.RLock()
	iv, ok := c.entries[key]
	c.mu.RUnlock()
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil, false
	}
	return iv.Clone(), true
}

// Put stores a deep copy of the interview under key.
func (c *Cache) Put(key string, iv *models.Interview) {
	if iv == nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = iv.Clone()
	c.mu.Unlock()
}

// Len reports the number of cached interviews.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
