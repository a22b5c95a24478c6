package idgen

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampGenerator_UsesMilliseconds(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	g := NewTimestampGeneratorWithClock(func() time.Time { return at })

	assert.Equal(t, "1700000000123", g.NewID())
}

func TestTimestampGenerator_SameMillisecondStaysUnique(t *testing.T) {
	at := time.UnixMilli(1000)
	g := NewTimestampGeneratorWithClock(func() time.Time { return at })

	assert.Equal(t, "1000", g.NewID())
	assert.Equal(t, "1001", g.NewID())
	assert.Equal(t, "1002", g.NewID())
}

func TestTimestampGenerator_ClockGoingBackwards(t *testing.T) {
	times := []int64{5000, 4000, 6000}
	i := 0
	g := NewTimestampGeneratorWithClock(func() time.Time {
		ts := time.UnixMilli(times[i])
		i++
		return ts
	})

	assert.Equal(t, "5000", g.NewID())
	assert.Equal(t, "5001", g.NewID())
	assert.Equal(t, "6000", g.NewID())
}

func TestTimestampGenerator_Concurrent(t *testing.T) {
	g := NewTimestampGenerator()

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.NewID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestNew(t *testing.T) {
	id := New(&cfg.AdminCfg{IDStrategy: cfg.IDStrategyUUID}).NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.IsType(t, &TimestampGenerator{}, New(&cfg.AdminCfg{IDStrategy: cfg.IDStrategyTimestamp}))
	assert.IsType(t, &TimestampGenerator{}, New(nil))
}
