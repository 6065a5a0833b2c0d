package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func id(n uint64) OrderID { return OrderIDFromUint64(n) }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(BackendBTree)
}

// A GTC Limit order submitted to an empty book rests (spec.md §8 scenario 1).
func TestExecute_RestsOnEmptyBook(t *testing.T) {
	e := newTestEngine(t)

	evt := e.Execute(Limit(id(1), Bid, 100, 10, GTC))

	placed, ok := evt.(Placed)
	require.True(t, ok, "want Placed, got %T", evt)
	require.Equal(t, id(1), placed.ID)
	require.Equal(t, 1, e.NumBidLevels())
	require.Equal(t, 1, e.NumRestingOrders())
}

// A crossing aggressor fully consumes a resting order (spec.md §8 scenario 2).
func TestExecute_CrossingOrderFills(t *testing.T) {
	e := newTestEngine(t)

	require.IsType(t, Placed{}, e.Execute(Limit(id(1), Ask, 100, 10, GTC)))

	evt := e.Execute(Limit(id(2), Bid, 100, 10, GTC))
	filled, ok := evt.(Filled)
	require.True(t, ok, "want Filled, got %T", evt)
	require.Equal(t, id(2), filled.ID)
	require.Len(t, filled.Fills, 1)
	require.Equal(t, Fill{OppositeOrderID: id(1), Price: 100, Qty: 10}, filled.Fills[0])
	require.Equal(t, 0, e.NumRestingOrders())
}

// A Market order larger than the resting liquidity fills what it can and
// drops the remainder (spec.md §8 scenario 3; §4.5.1 step 4).
func TestExecute_MarketPartialFillDropsRemainder(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 5, GTC))

	evt := e.Execute(Market(id(2), Bid, 20))
	pf, ok := evt.(PartiallyFilled)
	require.True(t, ok, "want PartiallyFilled, got %T", evt)
	require.Len(t, pf.Fills, 1)
	require.Equal(t, Qty(5), pf.Fills[0].Qty)
	require.Equal(t, Qty(15), pf.QtyRemaining)
	require.Equal(t, 0, e.NumRestingOrders(), "market orders never rest")
}

// A Market order against an empty book has no trades and does not rest:
// this is spec.md §4.5.1 step 4's informal "Unfilled" case, represented as
// PartiallyFilled with no fills (see DESIGN.md).
func TestExecute_MarketAgainstEmptyBookIsPartiallyFilledWithNoFills(t *testing.T) {
	e := newTestEngine(t)

	evt := e.Execute(Market(id(1), Bid, 10))
	pf, ok := evt.(PartiallyFilled)
	require.True(t, ok, "want PartiallyFilled, got %T", evt)
	require.Nil(t, pf.Fills)
	require.Equal(t, Qty(10), pf.QtyRemaining)
}

// Orders at the same price level fill in FIFO arrival order, and multiple
// price levels are consumed best-price-first (spec.md §8 scenario 4, §3
// invariant "price-time priority").
func TestExecute_PriceTimePriorityAcrossLevelsAndFIFO(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 101, 5, GTC))
	e.Execute(Limit(id(2), Ask, 100, 3, GTC)) // better price, later arrival
	e.Execute(Limit(id(3), Ask, 100, 4, GTC)) // same price, later arrival than id(2)

	evt := e.Execute(Limit(id(4), Bid, 101, 9, GTC))
	filled, ok := evt.(Filled)
	require.True(t, ok, "want Filled, got %T", evt)
	require.Equal(t, []Fill{
		{OppositeOrderID: id(2), Price: 100, Qty: 3},
		{OppositeOrderID: id(3), Price: 100, Qty: 4},
		{OppositeOrderID: id(1), Price: 101, Qty: 2},
	}, filled.Fills)
}

// Cancel removes a resting order and a repeat cancel is rejected as
// unknown (spec.md §8 scenario 5).
func TestExecute_CancelRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Bid, 100, 10, GTC))

	evt := e.Execute(Cancel(id(1)))
	require.Equal(t, Canceled{ID: id(1)}, evt)
	require.Equal(t, 0, e.NumRestingOrders())

	evt = e.Execute(Cancel(id(1)))
	require.Equal(t, Rejected{ID: id(1), Reason: ReasonUnknownID}, evt)
}

// A zero quantity is rejected before any state is touched (spec.md §8
// scenario 6, §7).
func TestExecute_BadQuantityRejectedAtomically(t *testing.T) {
	e := newTestEngine(t)

	evt := e.Execute(Limit(id(1), Bid, 100, 0, GTC))
	require.Equal(t, Rejected{ID: id(1), Reason: ReasonBadQuantity}, evt)
	require.Equal(t, 0, e.NumRestingOrders())
	_, hasBid := e.BestBid()
	require.False(t, hasBid)
}

func TestExecute_BadPriceRejected(t *testing.T) {
	e := newTestEngine(t)
	evt := e.Execute(Limit(id(1), Bid, 0, 10, GTC))
	require.Equal(t, Rejected{ID: id(1), Reason: ReasonBadPrice}, evt)
}

func TestExecute_IOCNeverRests(t *testing.T) {
	e := newTestEngine(t)

	evt := e.Execute(Limit(id(1), Bid, 100, 10, IOC))
	pf, ok := evt.(PartiallyFilled)
	require.True(t, ok, "want PartiallyFilled, got %T", evt)
	require.Equal(t, Qty(10), pf.QtyRemaining)
	require.Equal(t, 0, e.NumRestingOrders())
}

func TestExecute_FOKRejectedWhenUnfillable(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 5, GTC))

	evt := e.Execute(Limit(id(2), Bid, 100, 10, FOK))
	require.Equal(t, Rejected{ID: id(2), Reason: ReasonFOKUnfillable}, evt)
	// the resting order id(1) must be untouched
	require.Equal(t, 1, e.NumRestingOrders())
}

func TestExecute_FOKFillsWhenFullyFillable(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 5, GTC))
	e.Execute(Limit(id(2), Ask, 101, 5, GTC))

	evt := e.Execute(Limit(id(3), Bid, 101, 10, FOK))
	filled, ok := evt.(Filled)
	require.True(t, ok, "want Filled, got %T", evt)
	require.Len(t, filled.Fills, 2)
}

func TestExecute_GTXRejectedWhenWouldCross(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 5, GTC))

	evt := e.Execute(Limit(id(2), Bid, 100, 5, GTX))
	require.Equal(t, Rejected{ID: id(2), Reason: ReasonPostOnlyWouldTake}, evt)
	require.Equal(t, 1, e.NumRestingOrders())
}

func TestExecute_GTXRestsWhenNonCrossing(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 5, GTC))

	evt := e.Execute(Limit(id(2), Bid, 99, 5, GTX))
	require.Equal(t, Placed{ID: id(2)}, evt)
}

func TestExecuteBatch_RejectsOverMaxSize(t *testing.T) {
	e := newTestEngine(t)
	cmds := make([]Command, MaxBatchSize+1)
	for i := range cmds {
		cmds[i] = Limit(id(uint64(i)+1), Bid, 100, 1, GTC)
	}

	_, err := e.ExecuteBatch(cmds)
	require.ErrorIs(t, err, ErrBatchTooLarge)
	require.Equal(t, 0, e.NumRestingOrders())
}

func TestExecuteBatch_AppliesInOrder(t *testing.T) {
	e := newTestEngine(t)
	cmds := []Command{
		Limit(id(1), Ask, 100, 5, GTC),
		Limit(id(2), Bid, 100, 5, GTC),
	}

	events, err := e.ExecuteBatch(cmds)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.IsType(t, Placed{}, events[0])
	require.IsType(t, Filled{}, events[1])
}

// total_qty of a level always equals the sum of its resting orders'
// remaining quantity (spec.md §3 invariant), checked after a sequence of
// partial fills and cancels.
func TestInvariant_LevelTotalQtyMatchesSumOfOrders(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Ask, 100, 10, GTC))
	e.Execute(Limit(id(2), Ask, 100, 10, GTC))
	e.Execute(Limit(id(3), Bid, 100, 12, GTC)) // fully consumes id(1), partially consumes id(2)

	depth := e.Depth(Ask, 1)
	require.Len(t, depth, 1)
	require.Equal(t, Qty(8), depth[0].TotalQty)
	require.Equal(t, 1, depth[0].NumOrders)
}

// The book never holds a crossed state after Execute returns: best bid is
// always strictly below best ask once matching has run to completion
// (spec.md §3 invariant "no cross").
func TestInvariant_NeverCrossed(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Bid, 100, 5, GTC))
	e.Execute(Limit(id(2), Ask, 105, 5, GTC))

	bid, _ := e.BestBid()
	ask, _ := e.BestAsk()
	require.Less(t, bid, ask)
}

func TestQuery_SpreadAndMidPrice(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(Limit(id(1), Bid, 100, 5, GTC))
	e.Execute(Limit(id(2), Ask, 110, 5, GTC))

	spread, ok := e.Spread()
	require.True(t, ok)
	require.Equal(t, Price(10), spread)

	mid, ok := e.MidPrice()
	require.True(t, ok)
	require.Equal(t, Price(105), mid)
}

func TestQuery_EmptyBookHasNoSpread(t *testing.T) {
	e := newTestEngine(t)
	_, ok := e.Spread()
	require.False(t, ok)
}
