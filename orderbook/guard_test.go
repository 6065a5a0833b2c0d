package orderbook

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineGuard_SerializesConcurrentExecute(t *testing.T) {
	g := NewEngineGuard(NewEngine(BackendBTree))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			g.Execute(Limit(id(n+1), Bid, 100, 1, GTC))
		}(uint64(i))
	}
	wg.Wait()

	var count int
	g.Query(func(e *Engine) {
		count = e.NumRestingOrders()
	})
	require.Equal(t, 100, count)
}

func TestEngineGuard_ExecuteBatch(t *testing.T) {
	g := NewEngineGuard(NewEngine(BackendBTree))
	events, err := g.ExecuteBatch([]Command{
		Limit(id(1), Ask, 100, 5, GTC),
		Limit(id(2), Bid, 100, 5, GTC),
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
}
