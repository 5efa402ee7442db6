package database

import (
	"sync"
	"time"
)

// CaseNumberGenerator issues CASE-<yyyyMMdd>-<HHmmss> identifiers.
// Generation is serialized and a second is never issued twice: if two cases
// arrive within the same wall-clock second, the later one gets the next
// second. That keeps the human-readable format while making collisions on
// the unique case_number column impossible.
type CaseNumberGenerator struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewCaseNumberGenerator returns a generator running on the system clock.
func NewCaseNumberGenerator() *CaseNumberGenerator {
	return &CaseNumberGenerator{now: time.Now}
}

// Next returns the next case number.
func (g *CaseNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now().Truncate(time.Second)
	if !t.After(g.last) {
		t = g.last.Add(time.Second)
	}
	g.last = t
	return "CASE-" + t.Format("20060102-150405")
}
