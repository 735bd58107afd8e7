package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/council/internal/clock"
)

func TestNew(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return frozen }
	defer func() { clock.NowFunc = previous }()

	// identifiers generated within the same second never collide
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %v", id)
		seen[id] = true
	}
}
