package orderbook

// StopOrder is a conditional order held outside the live book until the
// last trade price crosses its trigger, at which point it is submitted to
// the Engine as an ordinary Limit or Market command (SPEC_FULL §4.1
// [ADDED], grounded in x/orderbook/keeper/conditional.go).
//
// A stop Bid triggers when the trade price rises to or above Trigger (a
// buy-stop, used to chase a breakout or to stop out a short); a stop Ask
// triggers when the trade price falls to or below Trigger (a sell-stop,
// used to limit a long's downside).
type StopOrder struct {
	ID      OrderID
	Side    Side
	Trigger Price
	Wrapped Command // the Limit or Market command to submit once triggered
}

// validate mirrors command.validate for the wrapped order plus the trigger
// price itself (spec.md §7-style pre-validation, grounded in
// ErrInvalidTriggerPrice).
func (s StopOrder) validate() (RejectReason, bool) {
	if s.Trigger == 0 {
		return ReasonInvalidTriggerPrice, false
	}
	return s.Wrapped.validate()
}

func (s StopOrder) triggeredBy(lastTrade Price) bool {
	if s.Side == Bid {
		return lastTrade >= s.Trigger
	}
	return lastTrade <= s.Trigger
}

// ConditionalBook holds StopOrders that have not yet triggered. It is a
// collaborator, not part of the live SideBook: resting stop orders are
// invisible to BookQuery and never cross the spread (spec.md §3 invariant
// 2 only governs the live book).
type ConditionalBook struct {
	pending map[OrderID]StopOrder
}

// NewConditionalBook creates an empty conditional-order book.
func NewConditionalBook() *ConditionalBook {
	return &ConditionalBook{pending: make(map[OrderID]StopOrder)}
}

// Add stages a stop order. Returns Rejected if the order or its trigger is
// malformed; otherwise Placed.
func (cb *ConditionalBook) Add(stop StopOrder) Event {
	if reason, ok := stop.validate(); !ok {
		return Rejected{ID: stop.ID, Reason: reason}
	}
	cb.pending[stop.ID] = stop
	return Placed{ID: stop.ID}
}

// Cancel removes a staged stop order before it triggers.
func (cb *ConditionalBook) Cancel(id OrderID) Event {
	if _, ok := cb.pending[id]; !ok {
		return Rejected{ID: id, Reason: ReasonUnknownID}
	}
	delete(cb.pending, id)
	return Canceled{ID: id}
}

// Triggered returns — and removes from the pending set — every stop order
// whose condition is met by lastTrade, as the Commands to submit to an
// Engine. Callers typically invoke this once after every trade-producing
// Execute call.
func (cb *ConditionalBook) Triggered(lastTrade Price) []Command {
	var out []Command
	for id, stop := range cb.pending {
		if stop.triggeredBy(lastTrade) {
			out = append(out, stop.Wrapped)
			delete(cb.pending, id)
		}
	}
	return out
}

// Len reports how many stop orders are still pending.
func (cb *ConditionalBook) Len() int { return len(cb.pending) }

// TrailingStop is a stop-loss whose trigger price follows the market in
// the trader's favor by a fixed Distance, only ever tightening, never
// loosening — grounded in x/orderbook/keeper/trailing_stop.go.
type TrailingStop struct {
	Stop     StopOrder
	Distance Price // how far behind the favorable extreme the trigger sits
	extreme  Price // best price seen so far in the favorable direction
}

// NewTrailingStop creates a trailing stop anchored at the current market
// price.
func NewTrailingStop(id OrderID, side Side, wrapped Command, distance Price, currentPrice Price) *TrailingStop {
	ts := &TrailingStop{
		Stop:     StopOrder{ID: id, Side: side, Wrapped: wrapped},
		Distance: distance,
		extreme:  currentPrice,
	}
	ts.Stop.Trigger = ts.computeTrigger()
	return ts
}

// computeTrigger derives the trigger from the current extreme: a
// stop-Ask (protecting a long) trails below the high by Distance; a
// stop-Bid (protecting a short) trails above the low by Distance.
func (ts *TrailingStop) computeTrigger() Price {
	if ts.Stop.Side == Ask {
		if ts.extreme <= ts.Distance {
			return 0
		}
		return ts.extreme - ts.Distance
	}
	return ts.extreme + ts.Distance
}

// Update advances the trailing stop's anchor if price has moved further in
// the favorable direction, tightening Trigger accordingly. It never
// relaxes the trigger. Returns true if the trigger moved.
func (ts *TrailingStop) Update(price Price) bool {
	favorable := (ts.Stop.Side == Ask && price > ts.extreme) ||
		(ts.Stop.Side == Bid && price < ts.extreme)
	if !favorable {
		return false
	}
	ts.extreme = price
	next := ts.computeTrigger()
	if next == ts.Stop.Trigger {
		return false
	}
	ts.Stop.Trigger = next
	return true
}
