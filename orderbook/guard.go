package orderbook

import "sync"

// EngineGuard wraps an Engine with a mutex so multiple goroutines can share
// it safely. The core Engine itself provides no serialization
// (spec.md §5 is explicit that this is the caller's responsibility);
// EngineGuard is the "external mutex" spec.md describes, grounded in the
// teacher's OrderBookV2.Lock/Unlock and RWMutex-guarded query methods
// (x/orderbook/keeper/orderbook_v2.go).
type EngineGuard struct {
	mu     sync.Mutex
	engine *Engine
}

// NewEngineGuard wraps an existing Engine.
func NewEngineGuard(engine *Engine) *EngineGuard {
	return &EngineGuard{engine: engine}
}

// Execute serializes one command through the wrapped engine.
func (g *EngineGuard) Execute(cmd Command) Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.Execute(cmd)
}

// ExecuteBatch serializes a batch through the wrapped engine.
func (g *EngineGuard) ExecuteBatch(cmds []Command) ([]Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.ExecuteBatch(cmds)
}

// Query runs fn against the wrapped engine under the same lock used by
// Execute, so snapshot queries are never interleaved with a mutation
// (spec.md §5: "Snapshot queries are not safe to run concurrently with
// execute").
func (g *EngineGuard) Query(fn func(*Engine)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.engine)
}
