package analysis

import "sync"

// Progress is the shared introspection object for one analysis run. The
// pipeline updates it as sub-stages advance; callers may poll Snapshot from
// other goroutines.
type Progress struct {
	mu              sync.Mutex
	completedStages []string
	currentStage    string
	exchangeCount   int
}

// Snapshot is a point-in-time copy of the analysis progress.
type Snapshot struct {
	CompletedStages []string `json:"completed_stages"`
	CurrentStage    string   `json:"current_stage"`
	ExchangeCount   int      `json:"exchange_count"`
}

// NewProgress returns an empty progress tracker.
func NewProgress() *Progress {
	return &Progress{}
}

func (p *Progress) setExchanges(n int) {
	p.mu.Lock()
	p.exchangeCount = n
	p.mu.Unlock()
}

func (p *Progress) begin(stage string) {
	p.mu.Lock()
	p.currentStage = stage
	p.mu.Unlock()
}

func (p *Progress) complete(stage string) {
	p.mu.Lock()
	p.completedStages = append(p.completedStages, stage)
	p.currentStage = ""
	p.mu.Unlock()
}

// Snapshot returns a copy safe to read while the pipeline runs.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		CompletedStages: append([]string(nil), p.completedStages...),
		CurrentStage:    p.currentStage,
		ExchangeCount:   p.exchangeCount,
	}
}
