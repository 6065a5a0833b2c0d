package orderbook

// DepthLevel is one row of a depth snapshot: a price and the aggregate
// resting quantity at it, plus how many distinct orders make up that
// quantity (SPEC_FULL §4.6 [ADDED]). The Prometheus OrderbookDepth gauge in
// metrics.go does not read it; that gauge counts price levels.
type DepthLevel struct {
	Price     Price
	TotalQty  Qty
	NumOrders int
}

// BestBid returns the highest resting bid price and whether the bid side
// is non-empty (spec.md §4.6).
func (e *Engine) BestBid() (Price, bool) {
	level := e.bids.best()
	if level == nil {
		return 0, false
	}
	return level.Price(), true
}

// BestAsk returns the lowest resting ask price and whether the ask side is
// non-empty.
func (e *Engine) BestAsk() (Price, bool) {
	level := e.asks.best()
	if level == nil {
		return 0, false
	}
	return level.Price(), true
}

// Spread returns bestAsk - bestBid and true, or (0, false) if either side
// is empty.
func (e *Engine) Spread() (Price, bool) {
	bid, hasBid := e.BestBid()
	ask, hasAsk := e.BestAsk()
	if !hasBid || !hasAsk {
		return 0, false
	}
	return ask - bid, true
}

// MidPrice returns (bestAsk + bestBid) / 2 using integer division — ties
// round toward zero, i.e. Go's native integer division truncation
// (spec.md §4.6 requires this be documented). Returns (0, false) if either
// side is empty.
func (e *Engine) MidPrice() (Price, bool) {
	bid, hasBid := e.BestBid()
	ask, hasAsk := e.BestAsk()
	if !hasBid || !hasAsk {
		return 0, false
	}
	return (ask + bid) / 2, true
}

// Depth returns the top-k levels of the given side, in aggressiveness
// order (spec.md §4.6).
func (e *Engine) Depth(side Side, k int) []DepthLevel {
	book := e.sideBookFor(side)
	levels := make([]DepthLevel, 0, k)
	book.topN(k, func(pl *PriceLevel) bool {
		levels = append(levels, DepthLevel{Price: pl.Price(), TotalQty: pl.TotalQty(), NumOrders: pl.NumOrders()})
		return true
	})
	return levels
}

// NumBidLevels and NumAskLevels report the number of distinct resting
// price points on each side, used by invariant/property tests and the
// depth gauge.
func (e *Engine) NumBidLevels() int { return e.bids.len() }
func (e *Engine) NumAskLevels() int { return e.asks.len() }

// NumRestingOrders reports the size of the OrderIndex, i.e. the total
// number of resting orders across both sides.
func (e *Engine) NumRestingOrders() int { return e.index.len() }
