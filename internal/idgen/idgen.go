package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/viant/council/internal/clock"
)

var sequence uint64

// NewFunc produces the next proposal identifier. It combines the submission
// timestamp with a process-wide monotonic counter so that two submissions in
// the same second never collide and identifiers sort by creation order.
// Override in tests for determinism.
var NewFunc = func() string {
	seq := atomic.AddUint64(&sequence, 1)
	return fmt.Sprintf("prop-%d-%06d", clock.Now().Unix(), seq)
}

// New returns a new identifier as an opaque string.
func New() string { return NewFunc() }
