package orderbook

// Backend selects which sideBook implementation a new Engine uses. Both
// satisfy the identical contract (spec.md §4.3); the choice is purely a
// performance knob; see x/orderbook/keeper/benchmark_comparison_test.go in
// the teacher for the comparison this mirrors.
type Backend uint8

const (
	// BackendBTree is the default: cache-friendly, degree-32 B-tree.
	BackendBTree Backend = iota
	BackendSkipList
)

// Engine is the single-instrument matching engine: the core's one mutable
// entry point (spec.md §4.5, §5). It is not safe for concurrent use; wrap
// it in an EngineGuard (guard.go) to serialize callers.
type Engine struct {
	bids  sideBook
	asks  sideBook
	index *OrderIndex
}

// NewEngine creates an empty book using the given backend.
func NewEngine(backend Backend) *Engine {
	switch backend {
	case BackendSkipList:
		return &Engine{
			bids:  newSkipListSideBook(true),
			asks:  newSkipListSideBook(false),
			index: newOrderIndex(),
		}
	default:
		return &Engine{
			bids:  newBTreeSideBook(true),
			asks:  newBTreeSideBook(false),
			index: newOrderIndex(),
		}
	}
}

func (e *Engine) sideBookFor(side Side) sideBook {
	if side == Bid {
		return e.bids
	}
	return e.asks
}

// Execute processes one command end to end and returns the single event it
// produces (spec.md §4.5). Validation failures are atomic no-ops: no state
// is touched before a Rejected event is returned (spec.md §4.5.5, §7).
func (e *Engine) Execute(cmd Command) Event {
	if cmd.kind == KindCancel {
		return e.cancel(cmd.id)
	}

	if reason, ok := cmd.validate(); !ok {
		return Rejected{ID: cmd.id, Reason: reason}
	}

	if cmd.tif == FOK && !e.fokFillable(cmd) {
		return Rejected{ID: cmd.id, Reason: ReasonFOKUnfillable}
	}
	if cmd.tif == GTX {
		if rejected, ok := e.postOnlyRejected(cmd); ok {
			return rejected
		}
	}

	return e.match(cmd)
}

// fokFillable reports whether a would-be Fill-Or-Kill order's full
// quantity can be matched against the book as it stands right now, without
// mutating any state. Grounded in keeper/time_in_force.go: processFOK,
// generalized here to a pure read so the caller can pre-check before
// committing to a mutating match pass (spec.md §4.5.5's atomicity rule).
func (e *Engine) fokFillable(cmd Command) bool {
	opp := e.sideBookFor(cmd.side.Opposite())
	remaining := cmd.qty
	available := Qty(0)

	opp.topN(opp.len(), func(level *PriceLevel) bool {
		if cmd.kind == KindLimit && !crosses(cmd.side, level.Price(), cmd.price) {
			return false
		}
		available += level.TotalQty()
		return available < remaining
	})
	return available >= remaining
}

// postOnlyRejected reports whether a GTX (post-only) Limit order would
// cross the book at submission time, in which case it must be rejected
// rather than matched (spec.md SPEC_FULL §4.1; grounded in
// keeper/time_in_force.go: processGTX).
func (e *Engine) postOnlyRejected(cmd Command) (Event, bool) {
	opp := e.sideBookFor(cmd.side.Opposite())
	best := opp.best()
	if best != nil && crosses(cmd.side, best.Price(), cmd.price) {
		return Rejected{ID: cmd.id, Reason: ReasonPostOnlyWouldTake}, true
	}
	return nil, false
}

// match runs the matching loop of spec.md §4.5.1 for a validated, already
// time-in-force-checked Limit or Market command, then rests any surviving
// Limit remainder (spec.md §4.5.1 step 3) or drops a Market remainder
// (step 4). IOC additionally suppresses resting regardless of Kind.
func (e *Engine) match(cmd Command) Event {
	opp := e.sideBookFor(cmd.side.Opposite())
	own := e.sideBookFor(cmd.side)

	remaining := cmd.qty
	var fills []Fill

	for remaining > 0 {
		best := opp.best()
		if best == nil {
			break
		}
		if cmd.kind == KindLimit && !crosses(cmd.side, best.Price(), cmd.price) {
			break
		}

		head := best.headPeek()
		traded := remaining
		if head.qtyRemaining < traded {
			traded = head.qtyRemaining
		}

		fills = append(fills, Fill{OppositeOrderID: head.id, Price: best.Price(), Qty: traded})

		filledID, fullyConsumed := best.headConsume(traded)
		if fullyConsumed {
			e.index.delete(filledID)
		}
		if best.IsEmpty() {
			opp.deleteLevel(best.Price())
		}

		remaining -= traded
	}

	rests := remaining > 0 && cmd.kind == KindLimit && cmd.tif != IOC && cmd.tif != FOK

	if rests {
		level := own.getOrCreate(cmd.price)
		elem := level.append(cmd.id, remaining)
		e.index.insert(cmd.id, cmd.side, cmd.price, elem)
	}

	switch {
	case remaining == 0:
		return Filled{ID: cmd.id, Side: cmd.side, OrderKind: cmd.kind, Fills: fills}
	case rests && len(fills) == 0:
		// GTC Limit, no trades: spec.md §4.5.1 step 3 calls for Placed.
		return Placed{ID: cmd.id}
	default:
		// Resting GTC remainder with partial fills, or a dropped
		// Market/IOC remainder (spec.md §4.5.1 step 4 calls the latter
		// "Unfilled" when no trades occurred at all; this core reports it
		// as a PartiallyFilled with an empty Fills slice, since §6's
		// event union has no separate Unfilled type — see DESIGN.md).
		return PartiallyFilled{ID: cmd.id, Side: cmd.side, OrderKind: cmd.kind, Fills: fills, QtyRemaining: remaining}
	}
}

// cancel implements spec.md §4.5.4.
func (e *Engine) cancel(id OrderID) Event {
	entry, ok := e.index.lookup(id)
	if !ok {
		return Rejected{ID: id, Reason: ReasonUnknownID}
	}

	side := e.sideBookFor(entry.side)
	level := side.levelAt(entry.price)
	level.remove(entry.elem)
	if level.IsEmpty() {
		side.deleteLevel(entry.price)
	}
	e.index.delete(id)

	return Canceled{ID: id}
}

// MaxBatchSize bounds ExecuteBatch, mirroring the teacher's
// ErrBatchTooLarge (x/orderbook/types/msgs_batch.go).
const MaxBatchSize = 100

// ExecuteBatch applies each command in order, with the same
// atomicity-per-command guarantee as Execute (SPEC_FULL §4.5 [ADDED]). A
// batch over MaxBatchSize is rejected wholesale before any command runs.
func (e *Engine) ExecuteBatch(cmds []Command) ([]Event, error) {
	if len(cmds) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}
	events := make([]Event, 0, len(cmds))
	for _, cmd := range cmds {
		events = append(events, e.Execute(cmd))
	}
	return events, nil
}
