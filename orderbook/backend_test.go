package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Both sideBook backends must produce identical observable behavior for
// the same command sequence (spec.md §4.3: the backend choice is a
// performance knob, not a semantic one).
func TestBackends_ProduceIdenticalEvents(t *testing.T) {
	cmds := []Command{
		Limit(id(1), Ask, 102, 5, GTC),
		Limit(id(2), Ask, 100, 3, GTC),
		Limit(id(3), Ask, 101, 4, GTC),
		Limit(id(4), Bid, 102, 9, GTC),
		Market(id(5), Bid, 10),
		Cancel(id(3)),
		Limit(id(6), Bid, 50, 1, GTC),
	}

	bt := NewEngine(BackendBTree)
	sl := NewEngine(BackendSkipList)

	for _, cmd := range cmds {
		btEvt := bt.Execute(cmd)
		slEvt := sl.Execute(cmd)
		require.Equal(t, btEvt, slEvt, "backends diverged on command %+v", cmd)
	}

	require.Equal(t, bt.NumRestingOrders(), sl.NumRestingOrders())
	require.Equal(t, bt.NumBidLevels(), sl.NumBidLevels())
	require.Equal(t, bt.NumAskLevels(), sl.NumAskLevels())
}

// FuzzMatching checks that the book never crosses (spec.md §3) and never
// holds resting orders with zero aggregate level quantity, after every
// command of an arbitrary sequence derived from fuzzer bytes.
func FuzzMatching(f *testing.F) {
	f.Add([]byte{0, 1, 100, 10, 1, 2, 100, 10})
	f.Add([]byte{1, 3, 50, 5, 0, 4, 60, 7, 2, 3})

	f.Fuzz(func(t *testing.T, data []byte) {
		e := NewEngine(BackendBTree)

		for i := 0; i+3 < len(data); i += 4 {
			kind := data[i] % 3
			oid := id(uint64(data[i+1]) + 1)
			price := Price(data[i+2]%200) + 1
			qty := Qty(data[i+3]%50) + 1

			switch kind {
			case 0:
				e.Execute(Limit(oid, Bid, price, qty, GTC))
			case 1:
				e.Execute(Limit(oid, Ask, price, qty, GTC))
			default:
				e.Execute(Cancel(oid))
			}

			bid, hasBid := e.BestBid()
			ask, hasAsk := e.BestAsk()
			if hasBid && hasAsk && bid >= ask {
				t.Fatalf("book crossed: bid=%d ask=%d", bid, ask)
			}

			var levelTotal Qty
			for _, lvl := range e.Depth(Bid, e.NumBidLevels()) {
				levelTotal += lvl.TotalQty
			}
			for _, lvl := range e.Depth(Ask, e.NumAskLevels()) {
				levelTotal += lvl.TotalQty
			}
			if levelTotal == 0 && e.NumRestingOrders() != 0 {
				t.Fatalf("resting orders present with zero aggregate quantity")
			}
		}
	})
}
