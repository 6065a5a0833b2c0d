// Package driver runs an orderbook.Engine as a long-lived in-process
// service: a buffered command channel feeding a single goroutine loop,
// Prometheus-instrumented, emitting events on a second channel for
// whatever external collaborator wants them (a CLI, a test harness, a
// future network transport). It is grounded in the teacher's
// offchain/matcher/matcher.go event loop (eventLoop/batchLoop goroutines
// reading off channels), stripped of the batched on-chain trade
// submission that package does through its TxSubmitter — this core has no
// persistence or networking layer to submit to (spec.md §1), so Driver
// only ever talks to an orderbook.Engine and whoever is reading its
// Events channel.
package driver

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/openalpha/lobcore/orderbook"
)

// Submission pairs a Command with the Event it produced, so a caller
// reading off Events can match responses to requests without extra
// bookkeeping.
type Submission struct {
	Command orderbook.Command
	Event   orderbook.Event
}

// Driver owns one Engine and processes commands from a single goroutine,
// satisfying spec.md §5's single-threaded cooperative model while still
// giving callers a concurrent-safe channel API.
type Driver struct {
	engine  *orderbook.Engine
	metrics *orderbook.Metrics
	logger  log.Logger

	commands chan orderbook.Command
	events   chan Submission

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Driver around a fresh Engine using backend, with a
// command queue of the given depth.
func New(backend orderbook.Backend, queueDepth int, logger log.Logger) *Driver {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Driver{
		engine:   orderbook.NewEngine(backend),
		metrics:  orderbook.NewMetrics(),
		logger:   logger.With("module", "offchain/driver"),
		commands: make(chan orderbook.Command, queueDepth),
		events:   make(chan Submission, queueDepth),
		stopCh:   make(chan struct{}),
	}
}

// Events returns the channel of processed Submissions. Callers should
// drain it; a full channel blocks the driver's processing loop.
func (d *Driver) Events() <-chan Submission { return d.events }

// Metrics returns the Prometheus collector bound to this Driver's Engine.
func (d *Driver) Metrics() *orderbook.Metrics { return d.metrics }

// Submit enqueues cmd for processing. It blocks if the command queue is
// full, applying backpressure to the caller rather than dropping input.
func (d *Driver) Submit(ctx context.Context, cmd orderbook.Command) error {
	select {
	case <-d.stopCh:
		return context.Canceled
	default:
	}
	select {
	case d.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopCh:
		return context.Canceled
	}
}

// Run starts the processing loop and blocks until ctx is canceled or Stop
// is called.
func (d *Driver) Run(ctx context.Context) {
	d.wg.Add(1)
	defer d.wg.Done()

	d.logger.Info("driver started")
	defer d.logger.Info("driver stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stopCh:
			return
		case cmd := <-d.commands:
			start := time.Now()
			evt := d.engine.Execute(cmd)
			d.metrics.Observe(cmd, evt, time.Since(start))

			select {
			case d.events <- Submission{Command: cmd, Event: evt}:
			case <-ctx.Done():
				return
			case <-d.stopCh:
				return
			}
		}
	}
}

// Stop signals Run to return and waits for it to do so.
func (d *Driver) Stop() {
	close(d.stopCh)
	d.wg.Wait()
}
