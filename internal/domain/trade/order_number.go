package trade

import (
	"fmt"
	"sync"
	"time"
)

const orderNumberDateLayout = "02012006"

// OrderNumberGenerator issues order numbers of the form ORD-<DDMMYYYY>-<NNN>
// where NNN is a 1-based, zero-padded counter scoped per calendar day across
// the whole process. The counter is in-memory only; it resets on process
// restart. The read-increment-format sequence is guarded so concurrent
// callers on the same date never receive the same number.
type OrderNumberGenerator struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewOrderNumberGenerator creates a generator with all daily counters at zero
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{counts: make(map[string]int)}
}

// Next returns the next order number for the given date
func (g *OrderNumberGenerator) Next(date time.Time) string {
	key := date.Format(orderNumberDateLayout)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.counts[key]++
	return fmt.Sprintf("ORD-%s-%03d", key, g.counts[key])
}
