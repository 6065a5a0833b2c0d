package orderbook

// TWAPScheduler splits one large parent order into N child commands
// submitted to an Engine over time, approximating a time-weighted average
// execution price (SPEC_FULL §4.5 [ADDED], grounded in
// x/orderbook/keeper/twap.go). It is a caller sitting outside the core's
// hot path — it only ever calls Engine.Execute with ordinary commands, and
// has no special knowledge of matching.
type TWAPScheduler struct {
	side         Side
	orderType    Kind // KindLimit or KindMarket
	price        Price
	tif          TimeInForce
	remainingQty Qty // quantity not yet handed out in a child command
	remaining    int // slices left to submit
	nextID       func() OrderID
}

// NewTWAPScheduler divides totalQty into numSlices child commands.
// orderType must be KindLimit or KindMarket; price is ignored for
// KindMarket. nextID mints a fresh OrderID for each child — typically
// NewOrderID, overridable for deterministic tests.
func NewTWAPScheduler(side Side, orderType Kind, price Price, tif TimeInForce, totalQty Qty, numSlices int, nextID func() OrderID) *TWAPScheduler {
	if numSlices < 1 {
		numSlices = 1
	}
	return &TWAPScheduler{
		side:         side,
		orderType:    orderType,
		price:        price,
		tif:          tif,
		remainingQty: totalQty,
		remaining:    numSlices,
		nextID:       nextID,
	}
}

// Done reports whether every slice has been emitted.
func (s *TWAPScheduler) Done() bool { return s.remaining == 0 }

// Next returns the next child Command and decrements the remaining slice
// count. Each slice's quantity is remainingQty/remaining at the time it is
// emitted, not a value fixed up front, so a totalQty that does not divide
// evenly by numSlices is absorbed across the later slices instead of lost
// — grounded in x/orderbook/keeper/twap.go's GetTargetQuantityForInterval,
// which recomputes its per-interval quantity from the remainder the same
// way. Calling Next after Done panics, the same contract container/list
// and similar iterators in the standard library use for exhausted
// iteration.
func (s *TWAPScheduler) Next() Command {
	if s.Done() {
		panic("orderbook: TWAPScheduler exhausted")
	}
	qty := s.remainingQty / Qty(s.remaining)
	s.remainingQty -= qty
	s.remaining--
	id := s.nextID()
	if s.orderType == KindMarket {
		return Market(id, s.side, qty)
	}
	return Limit(id, s.side, s.price, qty, s.tif)
}

// RemainingSlices reports how many child commands are left to emit.
func (s *TWAPScheduler) RemainingSlices() int { return s.remaining }
